package store

import (
	"context"

	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/logger"
)

// Storages bundles every repository backed by the relational store.
type Storages struct {
	UserRepository             UserRepository
	DatasetRepository          DatasetRepository
	EncryptedDatasetRepository EncryptedDatasetRepository

	db *DB
}

// NewStorages connects to PostgreSQL and constructs all repositories over
// the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:             NewUserRepository(db, log),
		DatasetRepository:          NewDatasetRepository(db, log),
		EncryptedDatasetRepository: NewEncryptedDatasetRepository(db, log),
		db:                         db,
	}, nil
}

// DB exposes the underlying connection pool, e.g. for running migrations.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
