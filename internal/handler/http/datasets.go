package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/utils"
	"github.com/MKhiriev/go-data-market/models"
)

// listDatasets returns the plain catalog. Supports optional narrowing via
// the "category" and "owner" query parameters.
func (h *Handler) listDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := store.DatasetFilter{
		Category:   r.URL.Query().Get("category"),
		OwnerLogin: r.URL.Query().Get("owner"),
	}

	datasets, err := h.services.DatasetService.ListDatasets(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing datasets failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, datasets, http.StatusOK)
}

// createDataset stores one catalog entry for the authenticated account.
func (h *Handler) createDataset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.CreateDatasetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	dataset, err := h.services.DatasetService.CreateDataset(ctx, userID, request)
	if err != nil {
		log.Err(err).Msg("dataset creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, dataset, http.StatusCreated)
}
