package service

import (
	"context"

	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

type DatasetService interface {
	CreateDataset(ctx context.Context, userID int64, request models.CreateDatasetRequest) (models.Dataset, error)
	ListDatasets(ctx context.Context, filter store.DatasetFilter) ([]models.Dataset, error)
}

// SecureDatasetService owns the encrypted-dataset lifecycle: encrypt-and-pin
// on upload, token attachment after the client-side mint, and ciphertext
// retrieval through the gateway.
type SecureDatasetService interface {
	SecureUpload(ctx context.Context, userID int64, ownerAddress, name string, plaintext []byte) (models.SecureUploadResponse, error)
	Finalize(ctx context.Context, request models.FinalizeRequest) (models.EncryptedDataset, error)
	FetchCiphertext(ctx context.Context, cid string) ([]byte, error)
}

// AccessService decides whether a wallet may receive the decryption key for
// a token and, when authorized, reveals the key material.
type AccessService interface {
	Authorize(ctx context.Context, tokenID int64, walletAddress string) (models.AccessResponse, error)
}

// HoldingsService aggregates everything a wallet can reach on chain: owned,
// purchased, and rented datasets.
type HoldingsService interface {
	UserHoldings(ctx context.Context, walletAddress string) (models.HoldingsResponse, error)
}
