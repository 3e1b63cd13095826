package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-data-market/internal/adapter"
	"github.com/MKhiriev/go-data-market/internal/service"
	"github.com/MKhiriev/go-data-market/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidAddress:          http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccessDenied:            http.StatusForbidden,
	service.ErrOwnershipMismatch:       http.StatusForbidden,
	service.ErrChainUnavailable:        http.StatusServiceUnavailable,

	store.ErrLoginAlreadyExists:  http.StatusConflict,
	store.ErrWalletAlreadyExists: http.StatusConflict,
	store.ErrCIDAlreadyExists:    http.StatusConflict,
	store.ErrTokenIDTaken:        http.StatusConflict,
	store.ErrNoUserWasFound:      http.StatusNotFound,
	store.ErrDatasetNotFound:     http.StatusNotFound,
	store.ErrRecordNotFound:      http.StatusNotFound,

	adapter.ErrStorageUpstream:    http.StatusBadGateway,
	adapter.ErrStorageUnavailable: http.StatusServiceUnavailable,
	adapter.ErrChainTransport:     http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
