// Package queue correlates a library record against the backend's live
// transfer queue. The queue is paged fresh from the backend and may change
// between page fetches, so matching is by internal media id alone and the
// state observed on the matching page is taken as-is.
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vmunix/arrhub/internal/arr"
)

// DefaultPageSize is the fixed page size for queue walks.
const DefaultPageSize = 100

// Correlator walks one backend's transfer queue.
type Correlator struct {
	svc      arr.Service
	pageSize int
	logger   *slog.Logger
}

// New creates a correlator over the given backend service.
func New(svc arr.Service, logger *slog.Logger) *Correlator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Correlator{
		svc:      svc,
		pageSize: DefaultPageSize,
		logger:   logger.With("component", "queue", "catalog", svc.Catalog().String()),
	}
}

// Correlate scans the queue page by page for an entry owned by mediaID.
// It returns the entry from the first page that contains it, or (nil, nil)
// once the records seen reach the total reported by the page just fetched.
// The total is always read from the current page response; a stale total
// from an earlier page is never reused.
func (c *Correlator) Correlate(ctx context.Context, mediaID int64) (*arr.QueueEntry, error) {
	seen := 0
	for page := 1; ; page++ {
		p, err := c.svc.QueuePage(ctx, page, c.pageSize)
		if err != nil {
			return nil, err
		}

		for i := range p.Records {
			if p.Records[i].MediaID == mediaID {
				return &p.Records[i], nil
			}
		}

		seen += len(p.Records)
		if seen >= p.TotalRecords || len(p.Records) == 0 {
			c.logger.Debug("media not in queue", "media_id", mediaID, "records_seen", seen)
			return nil, nil
		}
	}
}

// Progress formats an entry's completion percentage. A zero total size means
// the backend has not sized the transfer yet; report the fixed 0% sentinel
// rather than dividing by zero.
func Progress(e *arr.QueueEntry) string {
	if e.Size > 0 {
		return fmt.Sprintf("%.1f%%", (e.Size-e.SizeLeft)/e.Size*100)
	}
	return "0%"
}
