package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/api"
	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/arr/mocks"
	"github.com/vmunix/arrhub/internal/history"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMovieMock(t *testing.T) *mocks.MockService {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockService(ctrl)
	svc.EXPECT().Catalog().Return(arr.CatalogMovie).AnyTimes()
	return svc
}

func newServer(t *testing.T, movies arr.Service, store *history.Store) http.Handler {
	t.Helper()
	return api.New(api.Config{
		Movies:        movies,
		MovieDefaults: acquire.Defaults{RootFolderPath: "/movies", QualityProfileID: 4},
		History:       store,
		Logger:        testLogger(),
	}).Handler()
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSearch(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Lookup(gomock.Any(), "matrix").Return([]arr.Record{
		{ID: 1, Title: "The Matrix", Year: 1999, TmdbID: 603, SizeOnDisk: 1000},
		{ID: 2, Title: "The Matrix Reloaded", Year: 2003, TmdbID: 604},
	}, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/search?catalog=movie&term=matrix", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["total"])
	results := body["results"].([]any)
	first := results[0].(map[string]any)
	assert.Equal(t, "The Matrix", first["title"])
	assert.Equal(t, true, first["onDisk"])
}

func TestSearch_YearFilter(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, Title: "The Matrix", Year: 1999},
		{ID: 2, Title: "The Matrix Reloaded", Year: 2003},
	}, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/search?catalog=movie&year=2003", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}

func TestSearch_UnknownCatalog(t *testing.T) {
	rec := doRequest(t, newServer(t, newMovieMock(t), nil), http.MethodGet, "/api/v1/search?catalog=books", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeBody(t, rec)["code"])
}

func TestSearch_UnconfiguredBackend(t *testing.T) {
	rec := doRequest(t, newServer(t, newMovieMock(t), nil), http.MethodGet, "/api/v1/search?catalog=series", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not configured")
}

func TestStatus_OnDisk(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&arr.Record{
		ID: 7, Title: "The Matrix", Year: 1999, SizeOnDisk: 4_500_000_000,
	}, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/status?catalog=movie&id=7", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["onDisk"])
	assert.Equal(t, false, body["inQueue"])
}

func TestStatus_NoIdentity(t *testing.T) {
	rec := doRequest(t, newServer(t, newMovieMock(t), nil), http.MethodGet, "/api/v1/status?catalog=movie", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_request", decodeBody(t, rec)["code"])
}

func TestStatus_TitleMissIncludesSuggestions(t *testing.T) {
	svc := newMovieMock(t)
	// Lookup-only candidates (no internal id) resolve to nothing; the same
	// lookup then feeds the suggestion list.
	svc.EXPECT().Lookup(gomock.Any(), "matrx").Return([]arr.Record{
		{ID: 0, Title: "The Matrix", Year: 1999},
	}, nil).Times(2)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/status?catalog=movie&title=matrx", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "not_found", body["code"])
	suggestions := body["suggestions"].([]any)
	require.NotEmpty(t, suggestions)
	assert.Equal(t, "The Matrix", suggestions[0].(map[string]any)["title"])
}

func TestStatus_BackendDown(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().GetByID(gomock.Any(), int64(7)).
		Return(nil, &arr.UnavailableError{Backend: "movie", Status: 503})

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/status?catalog=movie&id=7", nil)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "backend_unavailable", decodeBody(t, rec)["code"])
}

func TestAdd_Creates(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req arr.AddRequest) (*arr.Record, error) {
			assert.Equal(t, int64(603), req.ExternalID)
			assert.Equal(t, "/movies", req.RootFolderPath)
			return &arr.Record{ID: 50, Title: "The Matrix", TmdbID: 603}, nil
		})

	store, err := history.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	rec := doRequest(t, newServer(t, svc, store), http.MethodPost, "/api/v1/add",
		map[string]any{"catalog": "movie", "externalId": 603})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["created"])
	assert.Equal(t, false, body["alreadyPresent"])

	entries, err := store.List(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "created", entries[0].Outcome)
	assert.Equal(t, "603", entries[0].Query)
}

func TestAdd_AlreadyOnDisk(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().ListAll(gomock.Any()).Return([]arr.Record{
		{ID: 1, TmdbID: 603, SizeOnDisk: 1000},
	}, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodPost, "/api/v1/add",
		map[string]any{"catalog": "movie", "externalId": 603})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["alreadyPresent"])
	assert.Equal(t, true, body["hasFile"])
	assert.Equal(t, false, body["created"])
}

func TestAdd_MissingExternalID(t *testing.T) {
	rec := doRequest(t, newServer(t, newMovieMock(t), nil), http.MethodPost, "/api/v1/add",
		map[string]any{"catalog": "movie"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "externalId")
}

func TestWanted(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().Wanted(gomock.Any(), 1, 100).Return(&arr.WantedPage{
		Page: 1, PageSize: 100, TotalRecords: 1,
		Records: []arr.WantedItem{{ID: 3, Title: "Heat", Year: 1995}},
	}, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/wanted?catalog=movie", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["totalRecords"])
}

func TestSystem_SingleBackend(t *testing.T) {
	svc := newMovieMock(t)
	svc.EXPECT().SystemStatus(gomock.Any()).Return(&arr.SystemStatus{AppName: "Radarr"}, nil)
	svc.EXPECT().DiskSpace(gomock.Any()).Return(nil, nil)
	svc.EXPECT().Health(gomock.Any()).Return(nil, nil)

	rec := doRequest(t, newServer(t, svc, nil), http.MethodGet, "/api/v1/system/movie", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "movie", body["backend"])
}

func TestHistory_Disabled(t *testing.T) {
	rec := doRequest(t, newServer(t, newMovieMock(t), nil), http.MethodGet, "/api/v1/history", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not enabled")
}

func TestHistory_List(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	require.NoError(t, store.Record(history.Entry{
		Operation: "add", Catalog: "movie", Query: "603", Outcome: "created",
	}))

	rec := doRequest(t, newServer(t, newMovieMock(t), store), http.MethodGet, "/api/v1/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
}
