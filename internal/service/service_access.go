// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/crypto"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
)

// accessService implements AccessService. Authorization is decided purely on
// chain: the wallet must either own the token or hold an active rental
// grant. The local record only supplies the key material to reveal.
type accessService struct {
	records store.EncryptedDatasetRepository
	chain   adapter.ChainReader

	logger *logger.Logger
}

func NewAccessService(records store.EncryptedDatasetRepository, chain adapter.ChainReader, logger *logger.Logger) AccessService {
	return &accessService{
		records: records,
		chain:   chain,
		logger:  logger,
	}
}

// predicateOutcome is the tri-state result of one authorization predicate:
// a definitive yes, a definitive no, or a transport failure that answered
// nothing.
type predicateOutcome struct {
	authorized bool
	transport  bool
}

// Authorize decides whether walletAddress may receive the decryption key for
// tokenID and, if so, reveals it.
//
// The decision combines two independent chain predicates with OR semantics:
//   - ownership: ownerOf(tokenID) equals the wallet;
//   - rental:    hasAccess(tokenID, wallet) is true.
//
// Ownership is evaluated first and short-circuits: an owner is authorized
// without the rental predicate ever running. A predicate whose contract call
// reverts counts as "not applicable", not as an error — a revoked or
// never-minted grant must not mask a valid answer from the other predicate.
//
// Returns:
//   - ErrInvalidAddress if the wallet fails hex validation. No contract
//     call is attempted in this case.
//   - store.ErrRecordNotFound (wrapped) if no record holds the token ID.
//   - ErrChainUnavailable if every evaluated predicate failed at the
//     transport level, so no definitive answer exists.
//   - ErrAccessDenied if the chain answered and the wallet holds neither
//     ownership nor a rental grant.
func (a *accessService) Authorize(ctx context.Context, tokenID int64, walletAddress string) (models.AccessResponse, error) {
	log := logger.FromContext(ctx)

	if tokenID <= 0 {
		return models.AccessResponse{}, ErrInvalidDataProvided
	}

	if !common.IsHexAddress(walletAddress) {
		log.Error().Str("wallet", walletAddress).Msg("malformed wallet address")
		return models.AccessResponse{}, ErrInvalidAddress
	}
	wallet := common.HexToAddress(walletAddress)

	record, err := a.records.FindByTokenID(ctx, tokenID)
	if err != nil {
		log.Err(err).Int64("token_id", tokenID).Msg("record lookup by token id failed")
		return models.AccessResponse{}, fmt.Errorf("record lookup by token id failed: %w", err)
	}

	ownership := a.checkOwnership(ctx, tokenID, wallet)
	if ownership.authorized {
		log.Info().Int64("token_id", tokenID).Str("wallet", wallet.Hex()).Msg("access granted: owner")
		return reveal(record), nil
	}

	rental := a.checkRental(ctx, tokenID, wallet)
	if rental.authorized {
		log.Info().Int64("token_id", tokenID).Str("wallet", wallet.Hex()).Msg("access granted: rental")
		return reveal(record), nil
	}

	if ownership.transport && rental.transport {
		log.Error().Int64("token_id", tokenID).Msg("both authorization predicates failed at transport level")
		return models.AccessResponse{}, ErrChainUnavailable
	}

	log.Info().Int64("token_id", tokenID).Str("wallet", wallet.Hex()).Msg("access denied")
	return models.AccessResponse{}, ErrAccessDenied
}

// checkOwnership evaluates the ownership predicate. A reverted call means
// the token does not exist on chain, which is a definitive "not owner".
func (a *accessService) checkOwnership(ctx context.Context, tokenID int64, wallet common.Address) predicateOutcome {
	log := logger.FromContext(ctx)

	owner, err := a.chain.OwnerOf(ctx, tokenID)
	if err != nil {
		if errors.Is(err, adapter.ErrChainTransport) {
			log.Err(err).Int64("token_id", tokenID).Msg("ownership check failed at transport level")
			return predicateOutcome{transport: true}
		}

		log.Debug().Err(err).Int64("token_id", tokenID).Msg("ownership check not applicable")
		return predicateOutcome{}
	}

	return predicateOutcome{authorized: owner == wallet}
}

// checkRental evaluates the rental predicate via the contract's access
// getter.
func (a *accessService) checkRental(ctx context.Context, tokenID int64, wallet common.Address) predicateOutcome {
	log := logger.FromContext(ctx)

	granted, err := a.chain.HasAccess(ctx, tokenID, wallet)
	if err != nil {
		if errors.Is(err, adapter.ErrChainTransport) {
			log.Err(err).Int64("token_id", tokenID).Msg("rental check failed at transport level")
			return predicateOutcome{transport: true}
		}

		log.Debug().Err(err).Int64("token_id", tokenID).Msg("rental check not applicable")
		return predicateOutcome{}
	}

	return predicateOutcome{authorized: granted}
}

// reveal packages the key material for an authorized wallet. The same
// record always reveals the same key.
func reveal(record models.EncryptedDataset) models.AccessResponse {
	return models.AccessResponse{
		Key:  crypto.EncodeKey(record.EncryptionKey),
		CID:  record.CID,
		Name: record.Name,
	}
}
