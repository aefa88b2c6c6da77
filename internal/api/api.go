// Package api implements the JSON HTTP surface over the core operations.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/history"
	"github.com/vmunix/arrhub/internal/media"
	"github.com/vmunix/arrhub/internal/queue"
	"github.com/vmunix/arrhub/internal/resolver"
	"github.com/vmunix/arrhub/internal/status"
)

// backend bundles the per-catalog core components.
type backend struct {
	svc         arr.Service
	resolver    *resolver.Resolver
	reporter    *status.Reporter
	coordinator *acquire.Coordinator
}

// Server is the API server. Backends left nil are reported as unconfigured.
type Server struct {
	movies  *backend
	series  *backend
	history *history.Store
	logger  *slog.Logger
}

// Config wires the server. History may be nil to disable journaling.
type Config struct {
	Movies        arr.Service
	Series        arr.Service
	MovieDefaults acquire.Defaults
	SeriesDefault acquire.Defaults
	History       *history.Store
	Logger        *slog.Logger
}

// New creates an API server from configured backends.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{history: cfg.History, logger: logger}
	if cfg.Movies != nil {
		s.movies = newBackend(cfg.Movies, cfg.MovieDefaults, logger)
	}
	if cfg.Series != nil {
		s.series = newBackend(cfg.Series, cfg.SeriesDefault, logger)
	}
	return s
}

func newBackend(svc arr.Service, defaults acquire.Defaults, logger *slog.Logger) *backend {
	res := resolver.New(svc, logger)
	cor := queue.New(svc, logger)
	return &backend{
		svc:         svc,
		resolver:    res,
		reporter:    status.NewReporter(res, cor),
		coordinator: acquire.New(svc, defaults, logger),
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/search", s.search)
	mux.HandleFunc("GET /api/v1/status", s.mediaStatus)
	mux.HandleFunc("POST /api/v1/add", s.add)
	mux.HandleFunc("GET /api/v1/wanted", s.wanted)
	mux.HandleFunc("GET /api/v1/system/{catalog}", s.system)
	mux.HandleFunc("GET /api/v1/history", s.listHistory)
}

// Handler returns the full handler with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return requestLogger(s.logger, mux)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// writeTaggedError maps core errors onto the wire taxonomy. Raw errors never
// escape unclassified.
func writeTaggedError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, arr.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "no matching record found")
	case errors.Is(err, resolver.ErrAmbiguous):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case arr.IsUnavailable(err):
		writeError(w, http.StatusBadGateway, "backend_unavailable", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// catalogBackend resolves the catalog query parameter to a configured
// backend.
func (s *Server) catalogBackend(r *http.Request) (*backend, error) {
	name := r.URL.Query().Get("catalog")
	if name == "" {
		name = r.PathValue("catalog")
	}
	catalog, ok := arr.ParseCatalog(name)
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q", name)
	}

	b := s.movies
	if catalog == arr.CatalogSeries {
		b = s.series
	}
	if b == nil {
		return nil, fmt.Errorf("%s backend not configured", catalog)
	}
	return b, nil
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	b, err := s.catalogBackend(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	filters := media.Filters{}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "year must be an integer")
			return
		}
		filters.Year = &year
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer")
			return
		}
		filters.Limit = limit
	}

	ctx := r.Context()
	var recs []arr.Record
	if term := r.URL.Query().Get("term"); term != "" {
		recs, err = b.svc.Lookup(ctx, term)
	} else {
		recs, err = b.svc.ListAll(ctx)
	}
	if err != nil {
		writeTaggedError(w, err)
		return
	}

	results := filters.Apply(media.ReduceAll(b.svc.Catalog(), recs))
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"total":   len(results),
	})
}

// parseIdentity builds the tagged identity from query parameters.
func parseIdentity(r *http.Request) (resolver.Identity, error) {
	var id resolver.Identity
	q := r.URL.Query()

	if v := q.Get("id"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return id, fmt.Errorf("id must be an integer")
		}
		id.ID = &n
	}
	if v := q.Get("externalId"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return id, fmt.Errorf("externalId must be an integer")
		}
		id.ExternalID = &n
	}
	id.Title = q.Get("title")
	if v := q.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return id, fmt.Errorf("year must be an integer")
		}
		id.Year = &n
	}
	return id, nil
}

func (s *Server) mediaStatus(w http.ResponseWriter, r *http.Request) {
	b, err := s.catalogBackend(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	identity, err := parseIdentity(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	snap, err := b.reporter.Report(r.Context(), identity)
	if err != nil {
		// Title misses get nearest-title suggestions alongside the 404.
		if errors.Is(err, arr.ErrNotFound) && identity.Title != "" {
			suggestions, serr := b.resolver.Suggest(r.Context(), identity.Title, 5)
			if serr == nil && len(suggestions) > 0 {
				writeJSON(w, http.StatusNotFound, map[string]any{
					"error":       "no matching record found",
					"code":        "not_found",
					"suggestions": suggestions,
				})
				return
			}
		}
		writeTaggedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type addRequest struct {
	Catalog    string `json:"catalog"`
	ExternalID int64  `json:"externalId"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ExternalID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "externalId is required")
		return
	}

	catalog, ok := arr.ParseCatalog(req.Catalog)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("unknown catalog %q", req.Catalog))
		return
	}
	b := s.movies
	if catalog == arr.CatalogSeries {
		b = s.series
	}
	if b == nil {
		writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("%s backend not configured", catalog))
		return
	}

	result, err := b.coordinator.Request(r.Context(), req.ExternalID)
	s.journalAdd(catalog, req.ExternalID, result, err)
	if err != nil {
		writeTaggedError(w, err)
		return
	}

	code := http.StatusOK
	if result.Created {
		code = http.StatusCreated
	}
	writeJSON(w, code, result)
}

// journalAdd records the acquisition outcome; journaling failures only log.
func (s *Server) journalAdd(catalog arr.Catalog, externalID int64, result *acquire.Result, err error) {
	if s.history == nil {
		return
	}
	outcome := "created"
	switch {
	case err != nil:
		outcome = "error: " + err.Error()
	case result.AlreadyPresent && result.HasFile:
		outcome = "already_on_disk"
	case result.AlreadyPresent:
		outcome = "already_queued"
	}
	entry := history.Entry{
		Operation: "add",
		Catalog:   catalog.String(),
		Query:     strconv.FormatInt(externalID, 10),
		Outcome:   outcome,
	}
	if herr := s.history.Record(entry); herr != nil {
		s.logger.Error("failed to journal add request", "error", herr)
	}
}

func (s *Server) wanted(w http.ResponseWriter, r *http.Request) {
	b, err := s.catalogBackend(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if page, err = strconv.Atoi(v); err != nil || page < 1 {
			writeError(w, http.StatusBadRequest, "invalid_request", "page must be a positive integer")
			return
		}
	}

	wanted, err := b.svc.Wanted(r.Context(), page, queue.DefaultPageSize)
	if err != nil {
		writeTaggedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, wanted)
}

func (s *Server) system(w http.ResponseWriter, r *http.Request) {
	which := r.PathValue("catalog")
	if which == "both" || which == "all" {
		var services []arr.Service
		if s.movies != nil {
			services = append(services, s.movies.svc)
		}
		if s.series != nil {
			services = append(services, s.series.svc)
		}
		writeJSON(w, http.StatusOK, status.FetchSystems(r.Context(), services))
		return
	}

	b, err := s.catalogBackend(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	report, err := status.FetchSystem(r.Context(), b.svc)
	if err != nil {
		writeTaggedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "not_found", "history is not enabled")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_request", "limit must be a positive integer")
			return
		}
		limit = n
	}
	entries, err := s.history.List(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": entries, "total": len(entries)})
}
