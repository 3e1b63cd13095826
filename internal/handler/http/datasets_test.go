package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-data-market/internal/logger"
	"github.com/MKhiriev/go-data-market/internal/service"
	"github.com/MKhiriev/go-data-market/internal/store"
	"github.com/MKhiriev/go-data-market/internal/utils"
	"github.com/MKhiriev/go-data-market/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerWithDatasets builds a Handler with the given DatasetService mock.
func newHandlerWithDatasets(t *testing.T, datasets service.DatasetService) *Handler {
	t.Helper()
	svcs := &service.Services{
		DatasetService: datasets,
	}
	return NewHandler(svcs, logger.Nop())
}

// ─────────────────────────────────────────────
// listDatasets
// ─────────────────────────────────────────────

func TestListDatasets_Success(t *testing.T) {
	datasets := &mockDatasetService{
		listDatasetsFn: func(_ context.Context, _ store.DatasetFilter) ([]models.Dataset, error) {
			return []models.Dataset{
				{ID: 1, Title: "City traffic", OwnerLogin: "alice", CID: "QmTraffic"},
				{ID: 2, Title: "Air quality", OwnerLogin: "bob", CID: "QmAir"},
			}, nil
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	req := httptest.NewRequest(http.MethodGet, "/api/datasets/", nil)
	rec := httptest.NewRecorder()

	h.listDatasets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []models.Dataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "alice", body[0].OwnerLogin)
}

// TestListDatasets_FilterFromQuery verifies that the category and owner query
// parameters are forwarded to the service as a filter.
func TestListDatasets_FilterFromQuery(t *testing.T) {
	var gotFilter store.DatasetFilter
	datasets := &mockDatasetService{
		listDatasetsFn: func(_ context.Context, filter store.DatasetFilter) ([]models.Dataset, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	req := httptest.NewRequest(http.MethodGet, "/api/datasets/?category=finance&owner=alice", nil)
	rec := httptest.NewRecorder()

	h.listDatasets(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "finance", gotFilter.Category)
	assert.Equal(t, "alice", gotFilter.OwnerLogin)
}

func TestListDatasets_ServiceError(t *testing.T) {
	datasets := &mockDatasetService{
		listDatasetsFn: func(_ context.Context, _ store.DatasetFilter) ([]models.Dataset, error) {
			return nil, assert.AnError
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	req := httptest.NewRequest(http.MethodGet, "/api/datasets/", nil)
	rec := httptest.NewRecorder()

	h.listDatasets(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// createDataset
// ─────────────────────────────────────────────

// withUserID attaches an authenticated account ID to a request, the way the
// auth middleware does.
func withUserID(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, userID)
	return req.WithContext(ctx)
}

func TestCreateDataset_Success(t *testing.T) {
	var gotUserID int64
	datasets := &mockDatasetService{
		createDatasetFn: func(_ context.Context, userID int64, request models.CreateDatasetRequest) (models.Dataset, error) {
			gotUserID = userID
			return models.Dataset{ID: 7, Title: request.Title, CID: request.CID}, nil
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	body := `{"title":"City traffic","ipfs_cid":"QmTraffic"}`
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/datasets/", strings.NewReader(body)), 42)
	rec := httptest.NewRecorder()

	h.createDataset(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(42), gotUserID)

	var created models.Dataset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.ID)
}

// TestCreateDataset_NoUserInContext verifies the guard against requests that
// somehow bypassed the auth middleware.
func TestCreateDataset_NoUserInContext(t *testing.T) {
	h := newHandlerWithDatasets(t, &mockDatasetService{})

	req := httptest.NewRequest(http.MethodPost, "/api/datasets/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.createDataset(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateDataset_InvalidJSON(t *testing.T) {
	h := newHandlerWithDatasets(t, &mockDatasetService{})

	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/datasets/", strings.NewReader("nope")), 42)
	rec := httptest.NewRecorder()

	h.createDataset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDataset_ValidationError(t *testing.T) {
	datasets := &mockDatasetService{
		createDatasetFn: func(_ context.Context, _ int64, _ models.CreateDatasetRequest) (models.Dataset, error) {
			return models.Dataset{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/datasets/", strings.NewReader(`{"title":""}`)), 42)
	rec := httptest.NewRecorder()

	h.createDataset(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateDataset_DuplicateCID(t *testing.T) {
	datasets := &mockDatasetService{
		createDatasetFn: func(_ context.Context, _ int64, _ models.CreateDatasetRequest) (models.Dataset, error) {
			return models.Dataset{}, store.ErrCIDAlreadyExists
		},
	}

	h := newHandlerWithDatasets(t, datasets)
	req := withUserID(httptest.NewRequest(http.MethodPost, "/api/datasets/", strings.NewReader(`{"title":"t","ipfs_cid":"QmDup"}`)), 42)
	rec := httptest.NewRecorder()

	h.createDataset(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
