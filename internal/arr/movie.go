package arr

import (
	"context"
	"fmt"
	"net/url"
)

// MovieService fronts a Radarr-compatible backend.
type MovieService struct {
	rest *restClient
}

// NewMovieService creates a client for the movie backend.
func NewMovieService(baseURL, apiKey string, opts ...Option) *MovieService {
	return &MovieService{
		rest: newRestClient(baseURL, apiKey, CatalogMovie.String(), opts...),
	}
}

func (s *MovieService) Catalog() Catalog {
	return CatalogMovie
}

func (s *MovieService) GetByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	if err := s.rest.get(ctx, fmt.Sprintf("/movie/%d", id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MovieService) ListAll(ctx context.Context) ([]Record, error) {
	var recs []Record
	if err := s.rest.get(ctx, "/movie", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *MovieService) Lookup(ctx context.Context, term string) ([]Record, error) {
	var recs []Record
	if err := s.rest.get(ctx, "/movie/lookup?term="+url.QueryEscape(term), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *MovieService) QueuePage(ctx context.Context, page, pageSize int) (*QueuePage, error) {
	return s.rest.queuePage(ctx, page, pageSize, CatalogMovie)
}

func (s *MovieService) Wanted(ctx context.Context, page, pageSize int) (*WantedPage, error) {
	var wanted WantedPage
	path := fmt.Sprintf("/wanted/missing?page=%d&pageSize=%d", page, pageSize)
	if err := s.rest.get(ctx, path, &wanted); err != nil {
		return nil, err
	}
	return &wanted, nil
}

// movieAddPayload is the Radarr create body.
type movieAddPayload struct {
	Title            string          `json:"title"`
	Year             int             `json:"year,omitempty"`
	TmdbID           int64           `json:"tmdbId"`
	QualityProfileID int64           `json:"qualityProfileId"`
	RootFolderPath   string          `json:"rootFolderPath"`
	Monitored        bool            `json:"monitored"`
	AddOptions       movieAddOptions `json:"addOptions"`
}

type movieAddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

func (s *MovieService) Create(ctx context.Context, req AddRequest) (*Record, error) {
	payload := movieAddPayload{
		Title:            req.Title,
		Year:             req.Year,
		TmdbID:           req.ExternalID,
		QualityProfileID: req.QualityProfileID,
		RootFolderPath:   req.RootFolderPath,
		Monitored:        req.Monitored,
		AddOptions:       movieAddOptions{SearchForMovie: req.SearchOnAdd},
	}
	var rec Record
	if err := s.rest.post(ctx, "/movie", payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *MovieService) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := s.rest.get(ctx, "/system/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *MovieService) DiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := s.rest.get(ctx, "/diskspace", &disks); err != nil {
		return nil, err
	}
	return disks, nil
}

func (s *MovieService) Health(ctx context.Context) ([]HealthCheck, error) {
	var checks []HealthCheck
	if err := s.rest.get(ctx, "/health", &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
