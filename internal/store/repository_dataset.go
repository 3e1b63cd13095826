package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/jackc/pgerrcode"
)

// datasetRepository is the PostgreSQL-backed implementation of
// [DatasetRepository] covering the plain catalog path: rows are inserted on
// submission and never mutated afterwards.
type datasetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDatasetRepository constructs a [DatasetRepository] backed by the
// provided database connection and logger.
func NewDatasetRepository(db *DB, logger *logger.Logger) DatasetRepository {
	logger.Debug().Msg("creating dataset repository")
	return &datasetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDataset persists a new catalog row and returns it with
// server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique_violation (23505) on ipfs_cid → [ErrCIDAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *datasetRepository) CreateDataset(ctx context.Context, dataset models.Dataset) (models.Dataset, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createDataset,
		dataset.UserID, dataset.Title, dataset.Description,
		dataset.Category, dataset.DataFormat, dataset.CID)

	if err := row.Scan(&dataset.ID, &dataset.CreatedAt); err != nil {
		log.Err(err).Str("func", "*datasetRepository.CreateDataset").Msg("error creating dataset")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Dataset{}, ErrCIDAlreadyExists
		case "":
			return models.Dataset{}, err
		default:
			return models.Dataset{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return dataset, nil
}

// ListDatasets retrieves catalog rows matching the filter, joined with the
// owner login. The query is built dynamically with squirrel.
func (r *datasetRepository) ListDatasets(ctx context.Context, filter DatasetFilter) ([]models.Dataset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListDatasetsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.ListDatasets").Msg("error building list query")
		return nil, fmt.Errorf("error building sql query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*datasetRepository.ListDatasets").Msg("error listing datasets")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	datasets := make([]models.Dataset, 0)
	for rows.Next() {
		var d models.Dataset
		if err := rows.Scan(&d.ID, &d.UserID, &d.OwnerLogin, &d.Title, &d.Description, &d.Category, &d.DataFormat, &d.CID, &d.CreatedAt); err != nil {
			log.Err(err).Str("func", "*datasetRepository.ListDatasets").Msg("error: scanning error")
			return nil, err
		}
		datasets = append(datasets, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return datasets, nil
}
