package store

import (
	"context"

	"github.com/MKhiriev/go-data-market/models"
)

// UserRepository persists and retrieves marketplace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// DatasetRepository persists and retrieves plain catalog metadata rows.
type DatasetRepository interface {
	CreateDataset(ctx context.Context, dataset models.Dataset) (models.Dataset, error)
	ListDatasets(ctx context.Context, filter DatasetFilter) ([]models.Dataset, error)
}

// DatasetFilter narrows a catalog listing. Zero-value fields are ignored.
type DatasetFilter struct {
	// Category restricts results to one marketplace category.
	Category string

	// OwnerLogin restricts results to datasets submitted by one account.
	OwnerLogin string
}

// EncryptedDatasetRepository persists and retrieves encrypted-dataset
// records, including the one-shot token-id attachment performed by the
// finalize step.
type EncryptedDatasetRepository interface {
	CreateEncryptedDataset(ctx context.Context, record models.EncryptedDataset) (models.EncryptedDataset, error)
	FindByTokenID(ctx context.Context, tokenID int64) (models.EncryptedDataset, error)
	FindByCID(ctx context.Context, cid string) (models.EncryptedDataset, error)
	AttachTokenID(ctx context.Context, cid string, tokenID int64) error
	ListUnfinalized(ctx context.Context) ([]models.EncryptedDataset, error)
}
