package models

// SecureUploadResponse is returned to the uploader after the ciphertext has
// been pinned and the record persisted. The key is base64-encoded; the
// caller must store it client-side until the finalize step completes and
// the on-chain access path takes over.
type SecureUploadResponse struct {
	// CID is the IPFS content identifier of the pinned ciphertext.
	CID string `json:"ipfs_cid"`

	// Key is the base64 transport form of the dataset encryption key.
	Key string `json:"encryption_key"`

	// Name echoes the display name the record was stored under.
	Name string `json:"name"`
}

// AccessResponse is the authorize-and-reveal result: everything an
// authorized wallet needs to fetch and decrypt the dataset.
type AccessResponse struct {
	// Key is the base64 transport form of the dataset encryption key.
	Key string `json:"encryption_key"`

	// CID locates the encrypted payload on the pinning gateway.
	CID string `json:"ipfs_cid"`

	// Name is the display name of the dataset.
	Name string `json:"name"`
}

// ChainDataset is the on-chain view of a marketplace dataset as returned by
// the contract's detail getters.
type ChainDataset struct {
	// TokenID is the on-chain token identifier.
	TokenID int64 `json:"token_id"`

	// Name is the dataset name recorded on chain.
	Name string `json:"name"`

	// Description is the dataset description recorded on chain.
	Description string `json:"description"`

	// Price is the listed price in wei, decimal string form.
	Price string `json:"price"`

	// Owner is the current owner wallet in EIP-55 checksum form.
	Owner string `json:"owner"`

	// ForSale reports whether the dataset is currently listed.
	ForSale bool `json:"for_sale"`
}

// HoldingsResponse aggregates every dataset a wallet can reach: tokens it
// owns, tokens it purchased, and tokens it currently rents. The three
// categories are disjoint; a token appears in the first category that
// matched.
type HoldingsResponse struct {
	Owned     []ChainDataset `json:"owned"`
	Purchased []ChainDataset `json:"purchased"`
	Rented    []ChainDataset `json:"rented"`

	// TotalCount is the combined number of entries across all categories.
	TotalCount int `json:"total_count"`
}
