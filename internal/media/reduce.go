// Package media reduces raw backend records to a stable field set and
// applies search filters. Everything here is pure: no state, no I/O.
package media

import (
	"time"

	"github.com/vmunix/arrhub/internal/arr"
)

// ReducedRecord is the normalized view of a library item consumed by the
// resolver, the status composer and both front ends.
type ReducedRecord struct {
	ID            int64           `json:"id"`
	Title         string          `json:"title"`
	OriginalTitle string          `json:"originalTitle,omitempty"`
	Year          int             `json:"year"`
	Status        string          `json:"status"`
	Monitored     bool            `json:"monitored"`
	OnDisk        bool            `json:"onDisk"`
	SizeBytes     int64           `json:"sizeBytes"`
	Genres        []string        `json:"genres,omitempty"`
	Overview      string          `json:"overview,omitempty"`
	ExternalID    int64           `json:"externalId"`
	Added         time.Time       `json:"added,omitzero"`
	Rating        float64         `json:"rating,omitempty"`
	Seasons       []SeasonSummary `json:"seasons,omitempty"`
}

// SeasonSummary is the per-season breakdown carried for series only.
type SeasonSummary struct {
	SeasonNumber     int   `json:"seasonNumber"`
	Monitored        bool  `json:"monitored"`
	EpisodeFileCount int   `json:"episodeFileCount"`
	EpisodeCount     int   `json:"episodeCount"`
	SizeOnDisk       int64 `json:"sizeOnDisk"`
}

// Reduce strips a raw backend record down to the stable field set.
// OnDisk derives from stored size: anything with bytes on disk counts.
func Reduce(catalog arr.Catalog, rec *arr.Record) ReducedRecord {
	size := rec.SizeOnDisk
	if rec.Statistics != nil {
		size = rec.Statistics.SizeOnDisk
	}

	reduced := ReducedRecord{
		ID:            rec.ID,
		Title:         rec.Title,
		OriginalTitle: rec.OriginalTitle,
		Year:          rec.Year,
		Status:        rec.Status,
		Monitored:     rec.Monitored,
		OnDisk:        size > 0,
		SizeBytes:     size,
		Genres:        rec.Genres,
		Overview:      rec.Overview,
		ExternalID:    arr.ExternalID(catalog, rec),
		Added:         rec.Added,
		Rating:        rec.Ratings.Value,
	}

	if catalog == arr.CatalogSeries && len(rec.Seasons) > 0 {
		reduced.Seasons = make([]SeasonSummary, 0, len(rec.Seasons))
		for _, season := range rec.Seasons {
			summary := SeasonSummary{
				SeasonNumber: season.SeasonNumber,
				Monitored:    season.Monitored,
			}
			if season.Statistics != nil {
				summary.EpisodeFileCount = season.Statistics.EpisodeFileCount
				summary.EpisodeCount = season.Statistics.EpisodeCount
				summary.SizeOnDisk = season.Statistics.SizeOnDisk
			}
			reduced.Seasons = append(reduced.Seasons, summary)
		}
	}

	return reduced
}

// ReduceAll reduces a listing in input order.
func ReduceAll(catalog arr.Catalog, recs []arr.Record) []ReducedRecord {
	out := make([]ReducedRecord, 0, len(recs))
	for i := range recs {
		out = append(out, Reduce(catalog, &recs[i]))
	}
	return out
}
