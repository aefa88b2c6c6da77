package arr

import (
	"context"
	"fmt"
	"net/url"
)

// SeriesService fronts a Sonarr-compatible backend.
type SeriesService struct {
	rest *restClient
}

// NewSeriesService creates a client for the series backend.
func NewSeriesService(baseURL, apiKey string, opts ...Option) *SeriesService {
	return &SeriesService{
		rest: newRestClient(baseURL, apiKey, CatalogSeries.String(), opts...),
	}
}

func (s *SeriesService) Catalog() Catalog {
	return CatalogSeries
}

func (s *SeriesService) GetByID(ctx context.Context, id int64) (*Record, error) {
	var rec Record
	if err := s.rest.get(ctx, fmt.Sprintf("/series/%d", id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SeriesService) ListAll(ctx context.Context) ([]Record, error) {
	var recs []Record
	if err := s.rest.get(ctx, "/series", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *SeriesService) Lookup(ctx context.Context, term string) ([]Record, error) {
	var recs []Record
	if err := s.rest.get(ctx, "/series/lookup?term="+url.QueryEscape(term), &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *SeriesService) QueuePage(ctx context.Context, page, pageSize int) (*QueuePage, error) {
	return s.rest.queuePage(ctx, page, pageSize, CatalogSeries)
}

// wantedEpisodePayload is Sonarr's wanted/missing shape: records are
// episodes with a nested series.
type wantedEpisodePayload struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []struct {
		ID            int64  `json:"id"`
		Title         string `json:"title"`
		SeasonNumber  int    `json:"seasonNumber"`
		EpisodeNumber int    `json:"episodeNumber"`
		Series        struct {
			Title string `json:"title"`
		} `json:"series"`
	} `json:"records"`
}

func (s *SeriesService) Wanted(ctx context.Context, page, pageSize int) (*WantedPage, error) {
	var payload wantedEpisodePayload
	path := fmt.Sprintf("/wanted/missing?page=%d&pageSize=%d", page, pageSize)
	if err := s.rest.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	wanted := &WantedPage{
		Page:         payload.Page,
		PageSize:     payload.PageSize,
		TotalRecords: payload.TotalRecords,
		Records:      make([]WantedItem, 0, len(payload.Records)),
	}
	for _, rec := range payload.Records {
		wanted.Records = append(wanted.Records, WantedItem{
			ID:            rec.ID,
			Title:         rec.Title,
			SeriesTitle:   rec.Series.Title,
			SeasonNumber:  rec.SeasonNumber,
			EpisodeNumber: rec.EpisodeNumber,
		})
	}
	return wanted, nil
}

// seriesAddPayload is the Sonarr create body.
type seriesAddPayload struct {
	Title            string           `json:"title"`
	TvdbID           int64            `json:"tvdbId"`
	QualityProfileID int64            `json:"qualityProfileId"`
	RootFolderPath   string           `json:"rootFolderPath"`
	Monitored        bool             `json:"monitored"`
	AddOptions       seriesAddOptions `json:"addOptions"`
}

type seriesAddOptions struct {
	SearchForMissingEpisodes bool `json:"searchForMissingEpisodes"`
}

func (s *SeriesService) Create(ctx context.Context, req AddRequest) (*Record, error) {
	payload := seriesAddPayload{
		Title:            req.Title,
		TvdbID:           req.ExternalID,
		QualityProfileID: req.QualityProfileID,
		RootFolderPath:   req.RootFolderPath,
		Monitored:        req.Monitored,
		AddOptions:       seriesAddOptions{SearchForMissingEpisodes: req.SearchOnAdd},
	}
	var rec Record
	if err := s.rest.post(ctx, "/series", payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SeriesService) SystemStatus(ctx context.Context) (*SystemStatus, error) {
	var status SystemStatus
	if err := s.rest.get(ctx, "/system/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *SeriesService) DiskSpace(ctx context.Context) ([]DiskSpace, error) {
	var disks []DiskSpace
	if err := s.rest.get(ctx, "/diskspace", &disks); err != nil {
		return nil, err
	}
	return disks, nil
}

func (s *SeriesService) Health(ctx context.Context) ([]HealthCheck, error) {
	var checks []HealthCheck
	if err := s.rest.get(ctx, "/health", &checks); err != nil {
		return nil, err
	}
	return checks, nil
}
