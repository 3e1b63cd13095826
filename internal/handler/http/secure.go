package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/utils"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/go-chi/chi/v5"
)

// maxUploadBytes caps the multipart payload accepted by secureUpload.
const maxUploadBytes = 100 << 20 // 100 MiB

// secureUpload accepts a multipart payload under the "file" field, encrypts
// it, pins the ciphertext, and returns the CID together with the base64 key.
// The "owner_address" field links the record to the wallet that finalize and
// access checks verify against; uploads without it are rejected. Anonymous
// callers upload under the shared anonymous account.
func (h *Handler) secureUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		userID = models.AnonymousUserID
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Err(err).Msg("parsing multipart form failed")
		http.Error(w, "invalid multipart payload", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no file in multipart payload")
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	plaintext, err := io.ReadAll(file)
	if err != nil {
		log.Err(err).Msg("reading uploaded file failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	ownerAddress := r.FormValue("owner_address")

	response, err := h.services.SecureDatasetService.SecureUpload(ctx, userID, ownerAddress, name, plaintext)
	if err != nil {
		log.Err(err).Str("name", name).Msg("secure upload failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

// access authorizes the wallet given in the "wallet_address" query parameter
// against the token from the URL and, on success, reveals the key material.
func (h *Handler) access(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenID, err := strconv.ParseInt(chi.URLParam(r, "tokenID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("malformed token id")
		http.Error(w, "malformed token id", http.StatusBadRequest)
		return
	}

	walletAddress := r.URL.Query().Get("wallet_address")

	response, err := h.services.AccessService.Authorize(ctx, tokenID, walletAddress)
	if err != nil {
		log.Err(err).Int64("token_id", tokenID).Msg("access check failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// finalize attaches the minted token ID to the record identified by CID.
func (h *Handler) finalize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.FinalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	record, err := h.services.SecureDatasetService.Finalize(ctx, request)
	if err != nil {
		log.Err(err).Str("cid", request.CID).Msg("finalize failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, record, http.StatusOK)
}

// downloadEncrypted proxies the pinned ciphertext back by CID. The bytes are
// served as an opaque attachment; decryption happens client-side.
func (h *Handler) downloadEncrypted(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cid := chi.URLParam(r, "cid")

	blob, err := h.services.SecureDatasetService.FetchCiphertext(ctx, cid)
	if err != nil {
		log.Err(err).Str("cid", cid).Msg("fetching ciphertext failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cid+".enc"))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

// userDatasets aggregates everything the wallet from the URL can reach on
// chain: owned, purchased, and rented datasets.
func (h *Handler) userDatasets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	walletAddress := chi.URLParam(r, "walletAddress")

	holdings, err := h.services.HoldingsService.UserHoldings(ctx, walletAddress)
	if err != nil {
		log.Err(err).Str("wallet", walletAddress).Msg("holdings aggregation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, holdings, http.StatusOK)
}
