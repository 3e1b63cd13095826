package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/service"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrInvalidAddress, http.StatusBadRequest},
		{service.ErrWrongPassword, http.StatusUnauthorized},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{service.ErrAccessDenied, http.StatusForbidden},
		{service.ErrOwnershipMismatch, http.StatusForbidden},
		{service.ErrChainUnavailable, http.StatusServiceUnavailable},
		{store.ErrLoginAlreadyExists, http.StatusConflict},
		{store.ErrWalletAlreadyExists, http.StatusConflict},
		{store.ErrCIDAlreadyExists, http.StatusConflict},
		{store.ErrTokenIDTaken, http.StatusConflict},
		{store.ErrNoUserWasFound, http.StatusNotFound},
		{store.ErrDatasetNotFound, http.StatusNotFound},
		{store.ErrRecordNotFound, http.StatusNotFound},
		{adapter.ErrStorageUpstream, http.StatusBadGateway},
		{adapter.ErrStorageUnavailable, http.StatusServiceUnavailable},
		{adapter.ErrChainTransport, http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.status, statusFromError(tt.err))
		})
	}
}

// TestStatusFromError_Wrapped verifies that wrapped sentinels are still
// recognised through errors.Is.
func TestStatusFromError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("access check failed: %w", service.ErrAccessDenied)
	assert.Equal(t, http.StatusForbidden, statusFromError(wrapped))

	doubleWrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", store.ErrRecordNotFound))
	assert.Equal(t, http.StatusNotFound, statusFromError(doubleWrapped))
}
