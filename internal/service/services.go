package service

import (
	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/config"
	"github.com/MKhiriev/go-data-market/internal/crypto"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/validators"
)

type Services struct {
	AuthService          AuthService
	DatasetService       DatasetService
	SecureDatasetService SecureDatasetService
	AccessService        AccessService
	HoldingsService      HoldingsService
}

func NewServices(storages store.Storages, pinning adapter.PinningClient, chain adapter.ChainReader, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	cipher := crypto.NewDatasetCipher()
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		DatasetService:       NewDatasetService(storages.DatasetRepository, validator, logger),
		SecureDatasetService: NewSecureDatasetService(storages.EncryptedDatasetRepository, pinning, cipher, validator, logger),
		AccessService:        NewAccessService(storages.EncryptedDatasetRepository, chain, logger),
		HoldingsService:      NewHoldingsService(chain, logger),
	}
}
