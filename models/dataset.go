package models

import "time"

// Dataset represents plain dataset metadata in the marketplace catalog.
// It is created on submission and never mutated or deleted afterwards.
type Dataset struct {
	// ID is the internal unique identifier of the dataset row.
	ID int64 `json:"id"`

	// UserID references the owning account.
	// Not exposed via JSON; the owner login is exposed instead.
	UserID int64 `json:"-"`

	// OwnerLogin is the login of the owning account, resolved on read.
	OwnerLogin string `json:"owner"`

	// Title is the human-readable dataset title.
	Title string `json:"title"`

	// Description is the free-text dataset description.
	Description string `json:"description"`

	// Category is the marketplace category label (e.g. "finance").
	Category string `json:"category"`

	// DataFormat is the declared payload format (e.g. "csv", "json").
	DataFormat string `json:"data_format"`

	// CID is the IPFS content identifier of the dataset payload.
	// Unique and immutable once created: it is the cryptographic binding
	// between the catalog row and the pinned content.
	CID string `json:"ipfs_cid"`

	// CreatedAt is the submission timestamp.
	CreatedAt time.Time `json:"upload_timestamp"`
}

// TableName returns the name of the database table
// associated with the Dataset model.
func (d Dataset) TableName() string {
	return "datasets"
}
