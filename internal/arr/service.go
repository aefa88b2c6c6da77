// Package arr provides typed clients for Radarr- and Sonarr-compatible
// backends. Each client is a thin wrapper over the v3 HTTP API: it shapes
// requests and decodes responses, nothing more.
package arr

import "context"

// Catalog identifies which backend a request targets. The two integer id
// spaces (TMDB for movies, TVDB for series) are backend-specific and must
// never be compared across catalogs.
type Catalog int

const (
	CatalogMovie Catalog = iota
	CatalogSeries
)

func (c Catalog) String() string {
	switch c {
	case CatalogMovie:
		return "movie"
	case CatalogSeries:
		return "series"
	default:
		return "unknown"
	}
}

// ParseCatalog maps a user-supplied catalog name to a Catalog.
func ParseCatalog(s string) (Catalog, bool) {
	switch s {
	case "movie", "movies", "radarr":
		return CatalogMovie, true
	case "series", "tv", "sonarr":
		return CatalogSeries, true
	}
	return 0, false
}

// Service is the operation set both backends offer. Implementations carry
// no decision logic; callers dispatch on Catalog, never on ad-hoc strings.
type Service interface {
	// Catalog reports which backend this service fronts.
	Catalog() Catalog

	// GetByID fetches a single library record. Returns ErrNotFound when the
	// backend reports 404.
	GetByID(ctx context.Context, id int64) (*Record, error)

	// ListAll fetches the full local library listing.
	ListAll(ctx context.Context) ([]Record, error)

	// Lookup searches the backend's metadata provider by free text. Results
	// that are not in the local library carry a zero internal id.
	Lookup(ctx context.Context, term string) ([]Record, error)

	// QueuePage fetches one page of the live transfer queue. Pages are
	// 1-based. The queue is not a stable snapshot; entries may move between
	// pages across calls.
	QueuePage(ctx context.Context, page, pageSize int) (*QueuePage, error)

	// Wanted fetches one page of monitored-but-missing items.
	Wanted(ctx context.Context, page, pageSize int) (*WantedPage, error)

	// Create adds a new item to the backend library. Success means the
	// backend accepted the request, not that a transfer started.
	Create(ctx context.Context, req AddRequest) (*Record, error)

	SystemStatus(ctx context.Context) (*SystemStatus, error)
	DiskSpace(ctx context.Context) ([]DiskSpace, error)
	Health(ctx context.Context) ([]HealthCheck, error)
}

// ExternalID returns the record's id in the catalog's external id space:
// TMDB for movies, TVDB for series.
func ExternalID(c Catalog, r *Record) int64 {
	if c == CatalogSeries {
		return r.TvdbID
	}
	return r.TmdbID
}
