package models

import "time"

// EncryptedDataset stores the server-side record of an encrypted dataset:
// the pinned ciphertext location, the symmetric key that unlocks it, and the
// link to the on-chain NFT once minting has been confirmed.
//
// Invariants:
//   - CID is immutable once created (it binds the row to the ciphertext).
//   - EncryptionKey is generated exactly once at upload time and never
//     rotated; repeated authorized reveals always return the same key.
//   - TokenID transitions from null to a concrete value exactly once, at
//     finalize time. Overwriting it with a different value requires the
//     caller to re-present the stored owner wallet.
type EncryptedDataset struct {
	// ID is the internal unique identifier of the record.
	ID int64 `json:"-"`

	// Name is the display name of the dataset.
	Name string `json:"name"`

	// CID is the IPFS content identifier of the encrypted payload.
	CID string `json:"ipfs_cid"`

	// EncryptionKey is the raw AES-256 key protecting the payload.
	// Never serialized; handed out only through the access verifier in
	// its base64 transport form.
	EncryptionKey []byte `json:"-"`

	// TokenID is the on-chain token identifier minted for this dataset.
	// Nil until the client-side mint transaction has been confirmed and
	// reconciled via the finalize step.
	TokenID *int64 `json:"token_id,omitempty"`

	// OwnerAddress is the Ethereum wallet of the uploader in 0x-prefixed
	// hex form. Used as an authorization assist during finalize; the
	// on-chain contract remains the security boundary for key release.
	OwnerAddress string `json:"owner_address"`

	// UserID references the owning marketplace account.
	// AnonymousUserID for unauthenticated uploads.
	UserID int64 `json:"-"`

	// CreatedAt is the upload timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the EncryptedDataset model.
func (e EncryptedDataset) TableName() string {
	return "encrypted_datasets"
}
