// Package resolver turns partial media identification (internal id,
// external catalog id, or a fuzzy title) into exactly one backend record.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/media"
)

// ErrAmbiguous is returned when an Identity carries no identifying field at
// all. It is rejected before any backend call.
var ErrAmbiguous = errors.New("no identifying fields supplied: need id, external id, or title")

// maxCandidates caps how many lookup results the title branch scores.
const maxCandidates = 20

// Scoring weights for the title branch. Exact and substring are mutually
// exclusive; the year bonus stacks on either.
const (
	scoreExact     = 100
	scoreSubstring = 50
	scoreYear      = 20
)

// Identity is the tagged identification variant. Strongest specificity wins:
// internal id, then external id, then title (+ optional year). Fields are
// never combined with AND semantics.
type Identity struct {
	ID         *int64
	ExternalID *int64
	Title      string
	Year       *int
}

// Validate rejects an identity with no usable field.
func (id Identity) Validate() error {
	if id.ID == nil && id.ExternalID == nil && id.Title == "" {
		return ErrAmbiguous
	}
	return nil
}

// Resolver locates library records for one backend.
type Resolver struct {
	svc    arr.Service
	logger *slog.Logger
}

// New creates a resolver over the given backend service.
func New(svc arr.Service, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		svc:    svc,
		logger: logger.With("component", "resolver", "catalog", svc.Catalog().String()),
	}
}

// Resolve returns the single record matching the identity, arr.ErrNotFound
// when resolution completes without a match, or an UnavailableError when a
// backend call fails. The two outcomes are never conflated.
func (r *Resolver) Resolve(ctx context.Context, id Identity) (*media.ReducedRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	switch {
	case id.ID != nil:
		return r.byID(ctx, *id.ID)
	case id.ExternalID != nil:
		return r.byExternalID(ctx, *id.ExternalID)
	default:
		return r.byTitle(ctx, id.Title, id.Year)
	}
}

func (r *Resolver) byID(ctx context.Context, id int64) (*media.ReducedRecord, error) {
	rec, err := r.svc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reduced := media.Reduce(r.svc.Catalog(), rec)
	return &reduced, nil
}

// byExternalID scans the full local listing for a matching external id. The
// listing is a single fetch; the linear scan is fine at library scale.
func (r *Resolver) byExternalID(ctx context.Context, externalID int64) (*media.ReducedRecord, error) {
	recs, err := r.svc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	catalog := r.svc.Catalog()
	for i := range recs {
		if arr.ExternalID(catalog, &recs[i]) == externalID {
			reduced := media.Reduce(catalog, &recs[i])
			return &reduced, nil
		}
	}
	return nil, arr.ErrNotFound
}

// byTitle scores lookup candidates against the normalized input. Only
// candidates that already carry an internal id are resolvable; the rest are
// lookup-only suggestions. Ties keep the first candidate in input order, so
// repeated resolution over the same candidate list is deterministic.
func (r *Resolver) byTitle(ctx context.Context, title string, year *int) (*media.ReducedRecord, error) {
	recs, err := r.svc.Lookup(ctx, title)
	if err != nil {
		return nil, err
	}

	catalog := r.svc.Catalog()
	candidates := media.Filters{Limit: maxCandidates}.Apply(media.ReduceAll(catalog, recs))

	var best *media.ReducedRecord
	bestScore := -1
	normalized := media.Normalize(title)
	for i := range candidates {
		if candidates[i].ID == 0 {
			continue
		}
		score := scoreCandidate(normalized, year, &candidates[i])
		if score > bestScore {
			best = &candidates[i]
			bestScore = score
		}
	}

	if best == nil {
		return nil, arr.ErrNotFound
	}
	r.logger.Debug("resolved by title", "title", title, "match", best.Title, "score", bestScore)
	return best, nil
}

func scoreCandidate(normalizedInput string, year *int, c *media.ReducedRecord) int {
	score := 0
	candidate := media.Normalize(c.Title)
	if candidate == normalizedInput {
		score += scoreExact
	} else if strings.Contains(candidate, normalizedInput) {
		score += scoreSubstring
	}
	if year != nil && *year == c.Year {
		score += scoreYear
	}
	return score
}
