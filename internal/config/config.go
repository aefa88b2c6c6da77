// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Backends BackendsConfig `toml:"backends"`
	Defaults DefaultsConfig `toml:"defaults"`
	History  HistoryConfig  `toml:"history"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// BackendsConfig points at the two managed backends. Either may be omitted;
// operations against a missing backend are rejected at the boundary.
type BackendsConfig struct {
	Movies *BackendConfig `toml:"movies"`
	Series *BackendConfig `toml:"series"`
}

type BackendConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

// DefaultsConfig carries the fixed create parameters used when adding items.
type DefaultsConfig struct {
	MovieRoot     string `toml:"movie_root"`
	MovieProfile  int64  `toml:"movie_profile"`
	SeriesRoot    string `toml:"series_root"`
	SeriesProfile int64  `toml:"series_profile"`
}

type HistoryConfig struct {
	Path string `toml:"path"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Apply defaults
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8585
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = "info"
	}
	if cfg.Defaults.MovieRoot == "" {
		cfg.Defaults.MovieRoot = "/movies"
	}
	if cfg.Defaults.MovieProfile == 0 {
		cfg.Defaults.MovieProfile = 1
	}
	if cfg.Defaults.SeriesRoot == "" {
		cfg.Defaults.SeriesRoot = "/tv"
	}
	if cfg.Defaults.SeriesProfile == 0 {
		cfg.Defaults.SeriesProfile = 1
	}
	if cfg.History.Path == "" {
		cfg.History.Path = "./data/arrhub.db"
	}

	if err := cfg.Validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
