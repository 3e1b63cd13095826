package models

// FinalizeRequest reconciles a backend record with the result of a
// client-side mint transaction: it attaches the on-chain token ID to the
// EncryptedDataset identified by CID.
type FinalizeRequest struct {
	// CID identifies the record to finalize. The lookup is by CID because
	// the token ID is, by definition, not yet set at this point.
	CID string `json:"ipfs_cid"`

	// TokenID is the token identifier assigned by the smart contract.
	TokenID int64 `json:"token_id"`

	// OwnerAddress is the wallet the caller claims to own the record.
	// When present it must match the stored owner wallet
	// (case-insensitive); it is mandatory when overwriting an already-set
	// token ID with a different value.
	OwnerAddress string `json:"owner_address,omitempty"`
}

// CreateDatasetRequest carries the metadata for a plain catalog submission.
type CreateDatasetRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	DataFormat  string `json:"data_format"`
	CID         string `json:"ipfs_cid"`
}
