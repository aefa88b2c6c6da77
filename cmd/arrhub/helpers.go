package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/config"
)

// app bundles the configured backends for one CLI invocation.
type app struct {
	cfg    *config.Config
	movies arr.Service
	series arr.Service
}

func loadApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	a := &app{cfg: cfg}
	if cfg.Backends.Movies != nil {
		a.movies = arr.NewMovieService(cfg.Backends.Movies.URL, cfg.Backends.Movies.APIKey)
	}
	if cfg.Backends.Series != nil {
		a.series = arr.NewSeriesService(cfg.Backends.Series.URL, cfg.Backends.Series.APIKey)
	}
	return a, nil
}

// service returns the backend for a catalog flag value.
func (a *app) service(name string) (arr.Service, error) {
	catalog, ok := arr.ParseCatalog(name)
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q (use movie or series)", name)
	}
	svc := a.movies
	if catalog == arr.CatalogSeries {
		svc = a.series
	}
	if svc == nil {
		return nil, fmt.Errorf("%s backend not configured in %s", catalog, configPath)
	}
	return svc, nil
}

// defaults returns the acquisition defaults for a backend.
func (a *app) defaults(catalog arr.Catalog) acquire.Defaults {
	if catalog == arr.CatalogSeries {
		return acquire.Defaults{
			RootFolderPath:   a.cfg.Defaults.SeriesRoot,
			QualityProfileID: a.cfg.Defaults.SeriesProfile,
		}
	}
	return acquire.Defaults{
		RootFolderPath:   a.cfg.Defaults.MovieRoot,
		QualityProfileID: a.cfg.Defaults.MovieProfile,
	}
}

// quietLogger silences core component logging; the CLI prints its own output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// truncate shortens a string for fixed-width table columns.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}
