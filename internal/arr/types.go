package arr

import "time"

// Record is the raw library/lookup payload shared by both backends. Fields
// that only one backend populates are left zero by the other: movies carry
// TmdbID, HasFile and a top-level SizeOnDisk; series carry TvdbID, Seasons
// and aggregate Statistics.
type Record struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	OriginalTitle string   `json:"originalTitle,omitempty"`
	Year          int      `json:"year"`
	Status        string   `json:"status"`
	Overview      string   `json:"overview,omitempty"`
	Monitored     bool     `json:"monitored"`
	Genres        []string `json:"genres,omitempty"`
	Path          string   `json:"path,omitempty"`

	// Movie-only.
	HasFile    bool  `json:"hasFile,omitempty"`
	SizeOnDisk int64 `json:"sizeOnDisk,omitempty"`
	TmdbID     int64 `json:"tmdbId,omitempty"`

	// Series-only.
	TvdbID     int64       `json:"tvdbId,omitempty"`
	Seasons    []Season    `json:"seasons,omitempty"`
	Statistics *Statistics `json:"statistics,omitempty"`

	Added   time.Time `json:"added,omitempty"`
	Ratings Ratings   `json:"ratings,omitempty"`
}

// Season is one per-season slice of a series record.
type Season struct {
	SeasonNumber int         `json:"seasonNumber"`
	Monitored    bool        `json:"monitored"`
	Statistics   *Statistics `json:"statistics,omitempty"`
}

// Statistics aggregates on-disk state for a series or season.
type Statistics struct {
	EpisodeFileCount  int   `json:"episodeFileCount"`
	EpisodeCount      int   `json:"episodeCount"`
	TotalEpisodeCount int   `json:"totalEpisodeCount"`
	SizeOnDisk        int64 `json:"sizeOnDisk"`
}

// Ratings is the backend's aggregate rating for a record.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// QueueEntry is one transfer-queue row, normalized so the owning media id is
// catalog-agnostic (movieId for Radarr, seriesId for Sonarr).
type QueueEntry struct {
	MediaID  int64
	Title    string
	Status   string
	Size     float64
	SizeLeft float64
	TimeLeft string
}

// QueuePage is one page of the live transfer queue. TotalRecords is the
// backend's count at the moment this page was served; it can differ between
// pages of the same walk.
type QueuePage struct {
	Page         int
	PageSize     int
	TotalRecords int
	Records      []QueueEntry
}

// WantedItem is one monitored-but-missing item. Movies carry Title/Year;
// series items are episodes and carry season/episode numbers.
type WantedItem struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Year          int    `json:"year,omitempty"`
	SeriesTitle   string `json:"seriesTitle,omitempty"`
	SeasonNumber  int    `json:"seasonNumber,omitempty"`
	EpisodeNumber int    `json:"episodeNumber,omitempty"`
}

// WantedPage is one page of the wanted/missing listing.
type WantedPage struct {
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	TotalRecords int          `json:"totalRecords"`
	Records      []WantedItem `json:"records"`
}

// AddRequest is the catalog-agnostic create payload. The service shapes it
// into the backend's wire format (tmdbId/searchForMovie vs.
// tvdbId/searchForMissingEpisodes).
type AddRequest struct {
	Title            string
	Year             int
	ExternalID       int64
	QualityProfileID int64
	RootFolderPath   string
	Monitored        bool
	SearchOnAdd      bool
}

// SystemStatus is the subset of the backend's system/status payload we
// surface.
type SystemStatus struct {
	AppName      string `json:"appName"`
	InstanceName string `json:"instanceName,omitempty"`
	Version      string `json:"version"`
	StartTime    string `json:"startTime,omitempty"`
	OsName       string `json:"osName,omitempty"`
}

// DiskSpace is one mount point's capacity report.
type DiskSpace struct {
	Path       string `json:"path"`
	Label      string `json:"label,omitempty"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// HealthCheck is one entry from the backend's health endpoint.
type HealthCheck struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl,omitempty"`
}
