package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/crypto"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/validators"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// secureDatasetService implements SecureDatasetService: it encrypts payloads
// before they reach the public pinning network, reconciles records with the
// on-chain mint afterwards, and proxies ciphertext back out by CID.
type secureDatasetService struct {
	records   store.EncryptedDatasetRepository
	pinning   adapter.PinningClient
	cipher    crypto.DatasetCipher
	validator validators.Validator

	logger *logger.Logger
}

func NewSecureDatasetService(records store.EncryptedDatasetRepository, pinning adapter.PinningClient, cipher crypto.DatasetCipher, validator validators.Validator, logger *logger.Logger) SecureDatasetService {
	return &secureDatasetService{
		records:   records,
		pinning:   pinning,
		cipher:    cipher,
		validator: validator,
		logger:    logger,
	}
}

// SecureUpload runs the encrypt-and-pin pipeline for one dataset payload:
// generate a fresh key, seal the whole plaintext with it, pin the ciphertext,
// and persist the record linking CID, key, and owner.
//
// The key is generated exactly once here and never rotated; the base64 form
// returned to the uploader is the same key the access verifier will reveal
// to authorized wallets later.
//
// Returns ErrInvalidDataProvided if name, plaintext, or ownerAddress is
// empty, ErrInvalidAddress if ownerAddress is malformed, or a wrapped
// pinning/storage error. The wallet is required even for anonymous uploads:
// the anonymous account covers the owning user, not the wallet the finalize
// and access steps verify against. The record is persisted only after the
// pin succeeded, so a pinning failure leaves no orphan row behind.
func (s *secureDatasetService) SecureUpload(ctx context.Context, userID int64, ownerAddress, name string, plaintext []byte) (models.SecureUploadResponse, error) {
	log := logger.FromContext(ctx)

	if name == "" || len(plaintext) == 0 || ownerAddress == "" {
		log.Error().Str("name", name).Str("wallet", ownerAddress).Int("size", len(plaintext)).Msg("invalid upload data provided")
		return models.SecureUploadResponse{}, ErrInvalidDataProvided
	}

	if !common.IsHexAddress(ownerAddress) {
		log.Error().Str("wallet", ownerAddress).Msg("malformed owner address")
		return models.SecureUploadResponse{}, ErrInvalidAddress
	}

	key, err := s.cipher.GenerateKey()
	if err != nil {
		log.Err(err).Msg("key generation failed")
		return models.SecureUploadResponse{}, fmt.Errorf("key generation failed: %w", err)
	}

	blob, err := s.cipher.Encrypt(plaintext, key)
	if err != nil {
		log.Err(err).Str("name", name).Msg("payload encryption failed")
		return models.SecureUploadResponse{}, fmt.Errorf("payload encryption failed: %w", err)
	}

	// Randomised pin name: the plaintext filename never reaches the
	// pinning service verbatim.
	pinName := uuid.NewString() + "_" + name + ".enc"

	cid, err := s.pinning.PinFile(ctx, pinName, blob)
	if err != nil {
		log.Err(err).Str("name", name).Msg("pinning ciphertext failed")
		return models.SecureUploadResponse{}, fmt.Errorf("pinning ciphertext failed: %w", err)
	}

	record := models.EncryptedDataset{
		Name:          name,
		CID:           cid,
		EncryptionKey: key,
		OwnerAddress:  ownerAddress,
		UserID:        userID,
	}

	created, err := s.records.CreateEncryptedDataset(ctx, record)
	if err != nil {
		log.Err(err).Str("cid", cid).Msg("encrypted dataset record creation failed")
		return models.SecureUploadResponse{}, fmt.Errorf("encrypted dataset record creation failed: %w", err)
	}

	log.Info().Str("cid", created.CID).Str("name", created.Name).Msg("dataset encrypted and pinned")

	return models.SecureUploadResponse{
		CID:  created.CID,
		Key:  crypto.EncodeKey(key),
		Name: created.Name,
	}, nil
}

// Finalize attaches the on-chain token ID to the record identified by CID
// after the client-side mint transaction has been confirmed.
//
// A claimed owner wallet, when present, must case-insensitively match the
// wallet stored on the record; otherwise ErrOwnershipMismatch, whether or
// not a token is already attached. The operation is idempotent:
// re-submitting the same CID/token pair is a no-op returning the current
// record. Overwriting an already-attached token ID with a different value
// additionally requires the claimed wallet to be present.
//
// Returns store.ErrRecordNotFound if no record holds the CID and
// store.ErrTokenIDTaken if another record already owns the token ID.
func (s *secureDatasetService) Finalize(ctx context.Context, request models.FinalizeRequest) (models.EncryptedDataset, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("cid", request.CID).Int64("token_id", request.TokenID).Msg("invalid finalize data provided")
		return models.EncryptedDataset{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	record, err := s.records.FindByCID(ctx, request.CID)
	if err != nil {
		log.Err(err).Str("cid", request.CID).Msg("record lookup by cid failed")
		return models.EncryptedDataset{}, fmt.Errorf("record lookup by cid failed: %w", err)
	}

	if request.OwnerAddress != "" && !strings.EqualFold(request.OwnerAddress, record.OwnerAddress) {
		log.Error().
			Str("cid", request.CID).
			Str("claimed_owner", request.OwnerAddress).
			Msg("claimed owner does not match record")
		return models.EncryptedDataset{}, ErrOwnershipMismatch
	}

	if record.TokenID != nil {
		if *record.TokenID == request.TokenID {
			return record, nil
		}

		if request.OwnerAddress == "" {
			log.Error().
				Str("cid", request.CID).
				Int64("stored_token_id", *record.TokenID).
				Int64("token_id", request.TokenID).
				Msg("token id overwrite refused")
			return models.EncryptedDataset{}, ErrOwnershipMismatch
		}

		log.Warn().
			Str("cid", request.CID).
			Int64("stored_token_id", *record.TokenID).
			Int64("token_id", request.TokenID).
			Msg("overwriting attached token id")
	}

	if err := s.records.AttachTokenID(ctx, request.CID, request.TokenID); err != nil {
		log.Err(err).Str("cid", request.CID).Int64("token_id", request.TokenID).Msg("token id attachment failed")
		return models.EncryptedDataset{}, fmt.Errorf("token id attachment failed: %w", err)
	}

	record.TokenID = &request.TokenID
	log.Info().Str("cid", record.CID).Int64("token_id", request.TokenID).Msg("record finalized")

	return record, nil
}

// FetchCiphertext retrieves the pinned encrypted payload by CID through the
// public gateway. The bytes are returned as-is; decryption happens
// client-side with the key revealed by the access verifier.
func (s *secureDatasetService) FetchCiphertext(ctx context.Context, cid string) ([]byte, error) {
	if cid == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.pinning.FetchFile(ctx, cid)
}
