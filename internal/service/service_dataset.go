package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/validators"
	"github.com/MKhiriev/go-data-market/models"
)

type datasetService struct {
	datasetRepository store.DatasetRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewDatasetService(datasetRepository store.DatasetRepository, validator validators.Validator, logger *logger.Logger) DatasetService {
	return &datasetService{
		datasetRepository: datasetRepository,
		validator:         validator,
		logger:            logger,
	}
}

// CreateDataset persists one catalog entry on behalf of userID.
// Title and CID are mandatory; everything else is free-form metadata.
func (d *datasetService) CreateDataset(ctx context.Context, userID int64, request models.CreateDatasetRequest) (models.Dataset, error) {
	log := logger.FromContext(ctx)

	if err := d.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("title", request.Title).Str("cid", request.CID).Msg("invalid dataset data provided")
		return models.Dataset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	dataset := models.Dataset{
		UserID:      userID,
		Title:       request.Title,
		Description: request.Description,
		Category:    request.Category,
		DataFormat:  request.DataFormat,
		CID:         request.CID,
	}

	created, err := d.datasetRepository.CreateDataset(ctx, dataset)
	if err != nil {
		log.Err(err).Str("cid", request.CID).Msg("dataset creation ended with error")
		return models.Dataset{}, fmt.Errorf("dataset creation ended with error: %w", err)
	}

	return created, nil
}

func (d *datasetService) ListDatasets(ctx context.Context, filter store.DatasetFilter) ([]models.Dataset, error) {
	return d.datasetRepository.ListDatasets(ctx, filter)
}
