// Package acquire decides whether an acquisition command should be issued
// for a media item identified by its external catalog id.
package acquire

import (
	"context"
	"log/slog"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/media"
)

// Defaults are the fixed create parameters for one catalog.
type Defaults struct {
	RootFolderPath   string
	QualityProfileID int64
}

// Result reports the acquisition outcome. Exactly one of AlreadyPresent and
// Created is true on success.
type Result struct {
	AlreadyPresent bool                 `json:"alreadyPresent"`
	HasFile        bool                 `json:"hasFile"`
	Created        bool                 `json:"created"`
	Record         *media.ReducedRecord `json:"record,omitempty"`
}

// Coordinator guards acquisition requests against duplicates.
type Coordinator struct {
	svc      arr.Service
	defaults Defaults
	logger   *slog.Logger
}

// New creates a coordinator over the given backend service.
func New(svc arr.Service, defaults Defaults, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		svc:      svc,
		defaults: defaults,
		logger:   logger.With("component", "acquire", "catalog", svc.Catalog().String()),
	}
}

// Request acquires the item with the given external id, unless it already
// exists locally. The guard scans the full listing by external id, the only
// id space available before the item exists, so calling twice never issues
// two create commands: the second call observes the first's listing entry.
// A present-without-file record is assumed already enqueued and left alone.
func (c *Coordinator) Request(ctx context.Context, externalID int64) (*Result, error) {
	recs, err := c.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := c.svc.Catalog()
	for i := range recs {
		if arr.ExternalID(catalog, &recs[i]) != externalID {
			continue
		}
		reduced := media.Reduce(catalog, &recs[i])
		c.logger.Info("already present, no command issued",
			"external_id", externalID,
			"has_file", reduced.OnDisk)
		return &Result{
			AlreadyPresent: true,
			HasFile:        reduced.OnDisk,
			Record:         &reduced,
		}, nil
	}

	created, err := c.svc.Create(ctx, arr.AddRequest{
		ExternalID:       externalID,
		QualityProfileID: c.defaults.QualityProfileID,
		RootFolderPath:   c.defaults.RootFolderPath,
		Monitored:        true,
		SearchOnAdd:      true,
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-confirm: the backend accepted the create, nothing more.
	reduced := media.Reduce(catalog, created)
	c.logger.Info("acquisition requested", "external_id", externalID, "title", created.Title)
	return &Result{
		Created: true,
		Record:  &reduced,
	}, nil
}
