package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration after defaults are applied. All problems
// are aggregated into one ConfigError.
func (c *Config) Validate(path string) error {
	cerr := &ConfigError{Path: path}

	if c.Backends.Movies == nil && c.Backends.Series == nil {
		cerr.Errors = append(cerr.Errors, "no backends configured: need [backends.movies] and/or [backends.series]")
	}
	validateBackend(cerr, "backends.movies", c.Backends.Movies)
	validateBackend(cerr, "backends.series", c.Backends.Series)

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		cerr.Errors = append(cerr.Errors, fmt.Sprintf("server.port %d out of range", c.Server.Port))
	}
	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		cerr.Errors = append(cerr.Errors, fmt.Sprintf("server.log_level %q not one of debug, info, warn, error", c.Server.LogLevel))
	}

	if cerr.HasErrors() {
		return cerr
	}
	return nil
}

func validateBackend(cerr *ConfigError, name string, b *BackendConfig) {
	if b == nil {
		return
	}
	if b.URL == "" {
		cerr.Errors = append(cerr.Errors, name+".url is required")
	} else if u, err := url.Parse(b.URL); err != nil || u.Scheme == "" || u.Host == "" {
		cerr.Errors = append(cerr.Errors, name+".url is not a valid URL: "+b.URL)
	}
	if b.APIKey == "" {
		cerr.Errors = append(cerr.Errors, name+".api_key is required")
	} else if strings.HasPrefix(b.APIKey, "${") {
		// An unsubstituted ${VAR} means the environment variable was unset.
		cerr.Missing = append(cerr.Missing, strings.TrimSuffix(strings.TrimPrefix(b.APIKey, "${"), "}"))
	}
}
