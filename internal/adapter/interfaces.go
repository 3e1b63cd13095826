// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the outbound clients of the marketplace
// backend: the content-addressed pinning service hosting encrypted payloads
// and the read-only smart-contract endpoint answering ownership and rental
// queries.
//
// Both clients are constructed explicitly and injected into the services
// that use them, so tests can substitute doubles.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
)

// PinningClient talks to the content-addressed pinning service.
type PinningClient interface {
	// PinFile uploads opaque bytes under the given filename and returns
	// the content identifier assigned by the service.
	PinFile(ctx context.Context, filename string, data []byte) (string, error)

	// FetchFile retrieves pinned bytes back by content identifier through
	// the public gateway.
	FetchFile(ctx context.Context, cid string) ([]byte, error)
}

// ChainReader performs read-only queries against the deployed marketplace
// contract.
//
// Errors from individual calls are classified into two families the caller
// can distinguish with [errors.Is]: [ErrCallReverted] for contract-level
// failures (token not minted, revert) and [ErrChainTransport] for transport
// failures (endpoint unreachable, HTTP error from the node).
type ChainReader interface {
	// OwnerOf returns the current owner of the token.
	OwnerOf(ctx context.Context, tokenID int64) (common.Address, error)

	// HasAccess reports whether the wallet holds an active rental or
	// purchase grant for the token.
	HasAccess(ctx context.Context, tokenID int64, wallet common.Address) (bool, error)

	// DatasetsByOwner enumerates token IDs currently owned by the wallet.
	DatasetsByOwner(ctx context.Context, wallet common.Address) ([]int64, error)

	// PurchasedDatasets enumerates token IDs the wallet has purchased.
	// The call is executed with the wallet as the sender, matching the
	// contract's msg.sender-based getter.
	PurchasedDatasets(ctx context.Context, wallet common.Address) ([]int64, error)

	// DatasetByID fetches the on-chain detail record for one token.
	DatasetByID(ctx context.Context, tokenID int64) (models.ChainDataset, error)

	// AllDatasets fetches the full on-chain catalog.
	AllDatasets(ctx context.Context) ([]models.ChainDataset, error)
}
