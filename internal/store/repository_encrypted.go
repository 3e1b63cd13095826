package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/jackc/pgerrcode"
)

// encryptedDatasetRepository is the PostgreSQL-backed implementation of
// [EncryptedDatasetRepository]. It owns the table holding encryption keys,
// so its rows are never exposed wholesale: callers receive single records
// looked up by token ID or CID.
type encryptedDatasetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEncryptedDatasetRepository constructs an [EncryptedDatasetRepository]
// backed by the provided database connection and logger.
func NewEncryptedDatasetRepository(db *DB, logger *logger.Logger) EncryptedDatasetRepository {
	logger.Debug().Msg("creating encrypted dataset repository")
	return &encryptedDatasetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEncryptedDataset persists a new record with a null token_id and
// returns it with server-assigned fields (ID, CreatedAt).
//
// Error handling:
//   - unique_violation (23505) on ipfs_cid → [ErrCIDAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *encryptedDatasetRepository) CreateEncryptedDataset(ctx context.Context, record models.EncryptedDataset) (models.EncryptedDataset, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createEncryptedDataset,
		record.Name, record.CID, record.EncryptionKey, record.OwnerAddress, record.UserID)

	created, err := scanEncryptedDataset(row)
	if err != nil {
		log.Err(err).Str("func", "*encryptedDatasetRepository.CreateEncryptedDataset").Msg("error creating encrypted dataset")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.EncryptedDataset{}, ErrCIDAlreadyExists
		case "":
			return models.EncryptedDataset{}, err
		default:
			return models.EncryptedDataset{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindByTokenID retrieves the record linked to the given on-chain token.
// Returns [ErrRecordNotFound] for an empty result set.
func (r *encryptedDatasetRepository) FindByTokenID(ctx context.Context, tokenID int64) (models.EncryptedDataset, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findEncryptedByTokenID, tokenID)

	found, err := scanEncryptedDataset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedDataset{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*encryptedDatasetRepository.FindByTokenID").Msg("error finding record by token id")
		return models.EncryptedDataset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindByCID retrieves the record for the given content identifier.
// Returns [ErrRecordNotFound] for an empty result set.
func (r *encryptedDatasetRepository) FindByCID(ctx context.Context, cid string) (models.EncryptedDataset, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findEncryptedByCID, cid)

	found, err := scanEncryptedDataset(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EncryptedDataset{}, ErrRecordNotFound
		}

		log.Err(err).Str("func", "*encryptedDatasetRepository.FindByCID").Msg("error finding record by cid")
		return models.EncryptedDataset{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// AttachTokenID sets the token_id on the record identified by CID. The
// ownership checks guarding this write live in the service layer; the
// repository only enforces the token uniqueness constraint.
//
// Error handling:
//   - unique_violation (23505) on token_id → [ErrTokenIDTaken].
//   - Zero affected rows → [ErrRecordNotFound].
func (r *encryptedDatasetRepository) AttachTokenID(ctx context.Context, cid string, tokenID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, attachTokenID, cid, tokenID)
	if err != nil {
		log.Err(err).Str("func", "*encryptedDatasetRepository.AttachTokenID").Msg("error attaching token id")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrTokenIDTaken
		case "":
			return err
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// ListUnfinalized returns every record whose token_id is still null, oldest
// first. Used by the reconciliation worker to surface uploads whose mint
// transaction was never confirmed.
func (r *encryptedDatasetRepository) ListUnfinalized(ctx context.Context) ([]models.EncryptedDataset, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUnfinalized)
	if err != nil {
		log.Err(err).Str("func", "*encryptedDatasetRepository.ListUnfinalized").Msg("error listing unfinalized records")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var records []models.EncryptedDataset
	for rows.Next() {
		var record models.EncryptedDataset
		var tokenID sql.NullInt64

		if err := rows.Scan(&record.ID, &record.Name, &record.CID, &record.EncryptionKey, &tokenID, &record.OwnerAddress, &record.UserID, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		if tokenID.Valid {
			record.TokenID = &tokenID.Int64
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return records, nil
}

// scanEncryptedDataset scans one encrypted_datasets row in canonical column
// order, converting the nullable token_id column.
func scanEncryptedDataset(row *sql.Row) (models.EncryptedDataset, error) {
	var record models.EncryptedDataset
	var tokenID sql.NullInt64

	if err := row.Scan(&record.ID, &record.Name, &record.CID, &record.EncryptionKey, &tokenID, &record.OwnerAddress, &record.UserID, &record.CreatedAt); err != nil {
		return models.EncryptedDataset{}, err
	}

	if tokenID.Valid {
		record.TokenID = &tokenID.Int64
	}

	return record, nil
}
