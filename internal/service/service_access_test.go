// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerWallet    = "0x1111111111111111111111111111111111111111"
	renterWallet   = "0x2222222222222222222222222222222222222222"
	strangerWallet = "0x3333333333333333333333333333333333333333"
)

func newTestAccessService(records *mockEncryptedRepository, chain *mockChainReader) AccessService {
	return NewAccessService(records, chain, logger.Nop())
}

func helloRecord() models.EncryptedDataset {
	tokenID := int64(14)
	return models.EncryptedDataset{
		ID:            3,
		Name:          "hello.txt",
		CID:           "QmHello",
		EncryptionKey: []byte("0123456789abcdef0123456789abcdef"),
		TokenID:       &tokenID,
		OwnerAddress:  ownerWallet,
	}
}

func recordsWithHello() *mockEncryptedRepository {
	return &mockEncryptedRepository{
		findByTokenIDFn: func(_ context.Context, tokenID int64) (models.EncryptedDataset, error) {
			if tokenID == 14 {
				return helloRecord(), nil
			}
			return models.EncryptedDataset{}, store.ErrRecordNotFound
		},
	}
}

func TestAuthorize_OwnerGetsKey(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.HexToAddress(ownerWallet), nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	response, err := svc.Authorize(context.Background(), 14, ownerWallet)
	require.NoError(t, err)

	assert.Equal(t, "QmHello", response.CID)
	assert.Equal(t, "hello.txt", response.Name)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")), response.Key)
}

func TestAuthorize_OwnershipShortCircuitsRental(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.HexToAddress(ownerWallet), nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 14, ownerWallet)
	require.NoError(t, err)

	assert.Equal(t, 1, chain.ownerOfCalls)
	assert.Zero(t, chain.hasAccessCalls, "rental predicate must not run for an owner")
}

func TestAuthorize_RenterGetsKey(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.HexToAddress(ownerWallet), nil
		},
		hasAccessFn: func(_ context.Context, _ int64, wallet common.Address) (bool, error) {
			return wallet == common.HexToAddress(renterWallet), nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	response, err := svc.Authorize(context.Background(), 14, renterWallet)
	require.NoError(t, err)
	assert.Equal(t, "QmHello", response.CID)
}

func TestAuthorize_StrangerDenied(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.HexToAddress(ownerWallet), nil
		},
		hasAccessFn: func(_ context.Context, _ int64, _ common.Address) (bool, error) {
			return false, nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 14, strangerWallet)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAuthorize_InvalidAddress_NoChainCall(t *testing.T) {
	chain := &mockChainReader{}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 14, "not-a-wallet")
	assert.ErrorIs(t, err, ErrInvalidAddress)

	assert.Zero(t, chain.ownerOfCalls)
	assert.Zero(t, chain.hasAccessCalls)
}

func TestAuthorize_UnknownToken_RecordNotFound(t *testing.T) {
	chain := &mockChainReader{}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 999, ownerWallet)
	assert.ErrorIs(t, err, store.ErrRecordNotFound)
	assert.Zero(t, chain.ownerOfCalls, "no chain call without a local record")
}

func TestAuthorize_RevertedOwnershipFallsThroughToRental(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.Address{}, fmt.Errorf("%w: ownerOf: execution reverted", adapter.ErrCallReverted)
		},
		hasAccessFn: func(_ context.Context, _ int64, _ common.Address) (bool, error) {
			return true, nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	response, err := svc.Authorize(context.Background(), 14, renterWallet)
	require.NoError(t, err, "a reverted ownership call must not mask a valid rental grant")
	assert.Equal(t, "QmHello", response.CID)
}

func TestAuthorize_BothPredicatesTransportFail(t *testing.T) {
	transportErr := fmt.Errorf("%w: connection refused", adapter.ErrChainTransport)
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.Address{}, transportErr
		},
		hasAccessFn: func(_ context.Context, _ int64, _ common.Address) (bool, error) {
			return false, transportErr
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 14, ownerWallet)
	assert.ErrorIs(t, err, ErrChainUnavailable)
}

func TestAuthorize_OneTransportOneDefinitiveDenial(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.Address{}, fmt.Errorf("%w: connection refused", adapter.ErrChainTransport)
		},
		hasAccessFn: func(_ context.Context, _ int64, _ common.Address) (bool, error) {
			return false, nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	_, err := svc.Authorize(context.Background(), 14, strangerWallet)
	assert.ErrorIs(t, err, ErrAccessDenied, "one definitive answer is enough to decide")
}

func TestAuthorize_RepeatedRevealsReturnSameKey(t *testing.T) {
	chain := &mockChainReader{
		ownerOfFn: func(_ context.Context, _ int64) (common.Address, error) {
			return common.HexToAddress(ownerWallet), nil
		},
	}
	svc := newTestAccessService(recordsWithHello(), chain)

	first, err := svc.Authorize(context.Background(), 14, ownerWallet)
	require.NoError(t, err)
	second, err := svc.Authorize(context.Background(), 14, ownerWallet)
	require.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
}

func TestAuthorize_InvalidTokenID(t *testing.T) {
	svc := newTestAccessService(recordsWithHello(), &mockChainReader{})

	_, err := svc.Authorize(context.Background(), 0, ownerWallet)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthorize_RepositoryFailurePropagates(t *testing.T) {
	records := &mockEncryptedRepository{
		findByTokenIDFn: func(_ context.Context, _ int64) (models.EncryptedDataset, error) {
			return models.EncryptedDataset{}, errors.New("db down")
		},
	}
	svc := newTestAccessService(records, &mockChainReader{})

	_, err := svc.Authorize(context.Background(), 14, ownerWallet)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessDenied)
}
