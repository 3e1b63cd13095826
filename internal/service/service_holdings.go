package service

import (
	"context"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
)

// holdingsService implements HoldingsService on top of the chain reader
// alone; holdings are an on-chain fact and need no local state.
type holdingsService struct {
	chain adapter.ChainReader

	logger *logger.Logger
}

func NewHoldingsService(chain adapter.ChainReader, logger *logger.Logger) HoldingsService {
	return &holdingsService{
		chain:  chain,
		logger: logger,
	}
}

// UserHoldings aggregates the three on-chain enumerations for one wallet:
// owned tokens, purchased tokens, and rented tokens.
//
// Categories are de-duplicated first-match-wins in that order, so a token
// the wallet owns never reappears under purchased or rented. Each
// enumeration degrades independently: a failing getter contributes an empty
// category instead of failing the whole aggregate, and a token whose detail
// lookup fails is skipped. Only when all three enumerations fail does the
// call return ErrChainUnavailable.
//
// Returns ErrInvalidAddress if the wallet fails hex validation; no contract
// call is attempted in that case.
func (h *holdingsService) UserHoldings(ctx context.Context, walletAddress string) (models.HoldingsResponse, error) {
	log := logger.FromContext(ctx)

	if !common.IsHexAddress(walletAddress) {
		log.Error().Str("wallet", walletAddress).Msg("malformed wallet address")
		return models.HoldingsResponse{}, ErrInvalidAddress
	}
	wallet := common.HexToAddress(walletAddress)

	seen := make(map[int64]bool)
	failures := 0

	ownedIDs, err := h.chain.DatasetsByOwner(ctx, wallet)
	if err != nil {
		log.Err(err).Str("wallet", wallet.Hex()).Msg("owned datasets enumeration failed")
		failures++
	}
	owned := h.resolveTokens(ctx, ownedIDs, seen)

	purchasedIDs, err := h.chain.PurchasedDatasets(ctx, wallet)
	if err != nil {
		log.Err(err).Str("wallet", wallet.Hex()).Msg("purchased datasets enumeration failed")
		failures++
	}
	purchased := h.resolveTokens(ctx, purchasedIDs, seen)

	rented, err := h.rentedDatasets(ctx, wallet, seen)
	if err != nil {
		log.Err(err).Str("wallet", wallet.Hex()).Msg("rented datasets enumeration failed")
		failures++
	}

	if failures == 3 {
		return models.HoldingsResponse{}, ErrChainUnavailable
	}

	return models.HoldingsResponse{
		Owned:      owned,
		Purchased:  purchased,
		Rented:     rented,
		TotalCount: len(owned) + len(purchased) + len(rented),
	}, nil
}

// resolveTokens fetches the detail record for each unseen token ID and
// marks it seen. Tokens whose detail lookup fails are skipped.
func (h *holdingsService) resolveTokens(ctx context.Context, ids []int64, seen map[int64]bool) []models.ChainDataset {
	log := logger.FromContext(ctx)

	datasets := make([]models.ChainDataset, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		dataset, err := h.chain.DatasetByID(ctx, id)
		if err != nil {
			log.Err(err).Int64("token_id", id).Msg("dataset detail lookup failed, skipping")
			continue
		}

		datasets = append(datasets, dataset)
	}

	return datasets
}

// rentedDatasets walks the full on-chain catalog and keeps every unseen
// token the wallet holds an access grant for. Grants on owned or purchased
// tokens were already consumed by the earlier categories.
func (h *holdingsService) rentedDatasets(ctx context.Context, wallet common.Address, seen map[int64]bool) ([]models.ChainDataset, error) {
	log := logger.FromContext(ctx)

	catalog, err := h.chain.AllDatasets(ctx)
	if err != nil {
		return nil, err
	}

	rented := make([]models.ChainDataset, 0)
	for _, dataset := range catalog {
		if seen[dataset.TokenID] {
			continue
		}

		granted, err := h.chain.HasAccess(ctx, dataset.TokenID, wallet)
		if err != nil {
			log.Err(err).Int64("token_id", dataset.TokenID).Msg("rental grant check failed, skipping")
			continue
		}

		if granted {
			seen[dataset.TokenID] = true
			rented = append(rented, dataset)
		}
	}

	return rented, nil
}
