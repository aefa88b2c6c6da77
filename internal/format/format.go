// Package format renders byte counts, durations and timestamps for display.
// Presentation only: the core passes backend values through verbatim.
package format

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Bytes renders a byte count in IEC units ("4.2 GiB"). Non-positive counts
// render as a dash.
func Bytes(n int64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

// BytesFloat renders a fractional byte count, as the transfer queue reports
// sizes.
func BytesFloat(n float64) string {
	if n <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(n))
}

// TimeLeft normalizes the backend's remaining-time string ("00:12:33" or
// "1.02:45:00" for over a day). Empty means unknown.
func TimeLeft(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Ago renders a timestamp as a relative time ("3 days ago"). Zero renders as
// a dash.
func Ago(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.Time(t)
}
