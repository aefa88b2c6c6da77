// Package status assembles resolver and queue-correlator outcomes into one
// consistent snapshot, and gathers per-backend system reports.
package status

import (
	"context"
	"time"

	"github.com/vmunix/arrhub/internal/media"
	"github.com/vmunix/arrhub/internal/queue"
	"github.com/vmunix/arrhub/internal/resolver"
)

// QueueStatus describes the in-flight transfer for a snapshot with
// InQueue=true.
type QueueStatus struct {
	Title            string  `json:"title"`
	Status           string  `json:"status"`
	TimeLeft         string  `json:"timeLeft,omitempty"`
	SizeLeft         float64 `json:"sizeLeft"`
	DownloadProgress string  `json:"downloadProgress"`
}

// Snapshot is the single consistent status view of one media item. InQueue
// and on-disk metadata are mutually exclusive: disk presence short-circuits
// queue correlation entirely.
type Snapshot struct {
	Title     string       `json:"title"`
	Year      int          `json:"year"`
	Status    string       `json:"status"`
	Monitored bool         `json:"monitored"`
	OnDisk    bool         `json:"onDisk"`
	InQueue   bool         `json:"inQueue"`
	Queue     *QueueStatus `json:"queue,omitempty"`

	// On-disk metadata, populated only when the file already exists.
	SizeBytes int64                 `json:"sizeBytes,omitempty"`
	Added     time.Time             `json:"added,omitzero"`
	Rating    float64               `json:"rating,omitempty"`
	Seasons   []media.SeasonSummary `json:"seasons,omitempty"`
}

// Reporter composes status snapshots for one backend.
type Reporter struct {
	resolver   *resolver.Resolver
	correlator *queue.Correlator
}

// NewReporter wires a resolver and correlator for the same backend.
func NewReporter(res *resolver.Resolver, cor *queue.Correlator) *Reporter {
	return &Reporter{resolver: res, correlator: cor}
}

// Report resolves the identity and, only when the item lacks a file on disk,
// correlates it against the transfer queue. Resolver NotFound and backend
// failures propagate untouched for the boundary to classify.
func (r *Reporter) Report(ctx context.Context, id resolver.Identity) (*Snapshot, error) {
	rec, err := r.resolver.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Title:     rec.Title,
		Year:      rec.Year,
		Status:    rec.Status,
		Monitored: rec.Monitored,
		OnDisk:    rec.OnDisk,
	}

	if rec.OnDisk {
		// An on-disk item is never searched for in the queue.
		snap.SizeBytes = rec.SizeBytes
		snap.Added = rec.Added
		snap.Rating = rec.Rating
		snap.Seasons = rec.Seasons
		return snap, nil
	}

	entry, err := r.correlator.Correlate(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		snap.InQueue = true
		snap.Queue = &QueueStatus{
			Title:            entry.Title,
			Status:           entry.Status,
			TimeLeft:         entry.TimeLeft,
			SizeLeft:         entry.SizeLeft,
			DownloadProgress: queue.Progress(entry),
		}
	}
	return snap, nil
}
