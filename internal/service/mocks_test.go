package service

import (
	"context"

	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
	listUsersFn       func(ctx context.Context) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.listUsersFn != nil {
		return m.listUsersFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.DatasetRepository
// ─────────────────────────────────────────────

type mockDatasetRepository struct {
	createDatasetFn func(ctx context.Context, dataset models.Dataset) (models.Dataset, error)
	listDatasetsFn  func(ctx context.Context, filter store.DatasetFilter) ([]models.Dataset, error)
}

func (m *mockDatasetRepository) CreateDataset(ctx context.Context, dataset models.Dataset) (models.Dataset, error) {
	if m.createDatasetFn != nil {
		return m.createDatasetFn(ctx, dataset)
	}
	return dataset, nil
}

func (m *mockDatasetRepository) ListDatasets(ctx context.Context, filter store.DatasetFilter) ([]models.Dataset, error) {
	if m.listDatasetsFn != nil {
		return m.listDatasetsFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: store.EncryptedDatasetRepository
// ─────────────────────────────────────────────

type mockEncryptedRepository struct {
	createFn          func(ctx context.Context, record models.EncryptedDataset) (models.EncryptedDataset, error)
	findByTokenIDFn   func(ctx context.Context, tokenID int64) (models.EncryptedDataset, error)
	findByCIDFn       func(ctx context.Context, cid string) (models.EncryptedDataset, error)
	attachTokenIDFn   func(ctx context.Context, cid string, tokenID int64) error
	listUnfinalizedFn func(ctx context.Context) ([]models.EncryptedDataset, error)
}

func (m *mockEncryptedRepository) CreateEncryptedDataset(ctx context.Context, record models.EncryptedDataset) (models.EncryptedDataset, error) {
	if m.createFn != nil {
		return m.createFn(ctx, record)
	}
	return record, nil
}

func (m *mockEncryptedRepository) FindByTokenID(ctx context.Context, tokenID int64) (models.EncryptedDataset, error) {
	if m.findByTokenIDFn != nil {
		return m.findByTokenIDFn(ctx, tokenID)
	}
	return models.EncryptedDataset{}, nil
}

func (m *mockEncryptedRepository) FindByCID(ctx context.Context, cid string) (models.EncryptedDataset, error) {
	if m.findByCIDFn != nil {
		return m.findByCIDFn(ctx, cid)
	}
	return models.EncryptedDataset{}, nil
}

func (m *mockEncryptedRepository) AttachTokenID(ctx context.Context, cid string, tokenID int64) error {
	if m.attachTokenIDFn != nil {
		return m.attachTokenIDFn(ctx, cid, tokenID)
	}
	return nil
}

func (m *mockEncryptedRepository) ListUnfinalized(ctx context.Context) ([]models.EncryptedDataset, error) {
	if m.listUnfinalizedFn != nil {
		return m.listUnfinalizedFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.PinningClient
// ─────────────────────────────────────────────

type mockPinningClient struct {
	pinFileFn   func(ctx context.Context, filename string, data []byte) (string, error)
	fetchFileFn func(ctx context.Context, cid string) ([]byte, error)
}

func (m *mockPinningClient) PinFile(ctx context.Context, filename string, data []byte) (string, error) {
	if m.pinFileFn != nil {
		return m.pinFileFn(ctx, filename, data)
	}
	return "QmMock", nil
}

func (m *mockPinningClient) FetchFile(ctx context.Context, cid string) ([]byte, error) {
	if m.fetchFileFn != nil {
		return m.fetchFileFn(ctx, cid)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: adapter.ChainReader
// ─────────────────────────────────────────────

type mockChainReader struct {
	ownerOfFn           func(ctx context.Context, tokenID int64) (common.Address, error)
	hasAccessFn         func(ctx context.Context, tokenID int64, wallet common.Address) (bool, error)
	datasetsByOwnerFn   func(ctx context.Context, wallet common.Address) ([]int64, error)
	purchasedDatasetsFn func(ctx context.Context, wallet common.Address) ([]int64, error)
	datasetByIDFn       func(ctx context.Context, tokenID int64) (models.ChainDataset, error)
	allDatasetsFn       func(ctx context.Context) ([]models.ChainDataset, error)

	ownerOfCalls   int
	hasAccessCalls int
}

func (m *mockChainReader) OwnerOf(ctx context.Context, tokenID int64) (common.Address, error) {
	m.ownerOfCalls++
	if m.ownerOfFn != nil {
		return m.ownerOfFn(ctx, tokenID)
	}
	return common.Address{}, nil
}

func (m *mockChainReader) HasAccess(ctx context.Context, tokenID int64, wallet common.Address) (bool, error) {
	m.hasAccessCalls++
	if m.hasAccessFn != nil {
		return m.hasAccessFn(ctx, tokenID, wallet)
	}
	return false, nil
}

func (m *mockChainReader) DatasetsByOwner(ctx context.Context, wallet common.Address) ([]int64, error) {
	if m.datasetsByOwnerFn != nil {
		return m.datasetsByOwnerFn(ctx, wallet)
	}
	return nil, nil
}

func (m *mockChainReader) PurchasedDatasets(ctx context.Context, wallet common.Address) ([]int64, error) {
	if m.purchasedDatasetsFn != nil {
		return m.purchasedDatasetsFn(ctx, wallet)
	}
	return nil, nil
}

func (m *mockChainReader) DatasetByID(ctx context.Context, tokenID int64) (models.ChainDataset, error) {
	if m.datasetByIDFn != nil {
		return m.datasetByIDFn(ctx, tokenID)
	}
	return models.ChainDataset{TokenID: tokenID}, nil
}

func (m *mockChainReader) AllDatasets(ctx context.Context) ([]models.ChainDataset, error) {
	if m.allDatasetsFn != nil {
		return m.allDatasetsFn(ctx)
	}
	return nil, nil
}
