package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/vmunix/arrhub/internal/acquire"
	"github.com/vmunix/arrhub/internal/api"
	"github.com/vmunix/arrhub/internal/arr"
	"github.com/vmunix/arrhub/internal/config"
	"github.com/vmunix/arrhub/internal/history"
	"github.com/vmunix/arrhub/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	// Request journal
	if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	journal, err := history.Open(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer func() { _ = journal.Close() }()

	apiCfg := api.Config{
		History: journal,
		Logger:  logger,
		MovieDefaults: acquire.Defaults{
			RootFolderPath:   cfg.Defaults.MovieRoot,
			QualityProfileID: cfg.Defaults.MovieProfile,
		},
		SeriesDefault: acquire.Defaults{
			RootFolderPath:   cfg.Defaults.SeriesRoot,
			QualityProfileID: cfg.Defaults.SeriesProfile,
		},
	}
	if cfg.Backends.Movies != nil {
		apiCfg.Movies = arr.NewMovieService(cfg.Backends.Movies.URL, cfg.Backends.Movies.APIKey)
	}
	if cfg.Backends.Series != nil {
		apiCfg.Series = arr.NewSeriesService(cfg.Backends.Series.URL, cfg.Backends.Series.APIKey)
	}

	apiServer := api.New(apiCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{
		Host: cfg.Server.Host,
		Port: cfg.Server.Port,
	}, apiServer.Handler(), logger)

	logger.Info("starting arrhubd", "version", version)
	return runner.Run(ctx)
}
