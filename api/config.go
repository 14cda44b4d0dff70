package api

import (
	"errors"
	"fmt"
	"os"
	"time"
)

// Config holds HTTP server configuration.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// TokenTTL is the verification window for issued tokens.
	TokenTTL time.Duration

	// ReadTimeout, WriteTimeout and IdleTimeout bound the underlying
	// http.Server.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// ExposeMetrics enables the Prometheus /metrics endpoint. Only useful
	// when the observe metrics exporter is "prometheus".
	ExposeMetrics bool
}

// DefaultConfig returns the configuration used when no overrides are set.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		TokenTTL:     time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from AUTHGATE_* environment variables,
// falling back to defaults for anything unset.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("AUTHGATE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("AUTHGATE_TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("api: parsing AUTHGATE_TOKEN_TTL: %w", err)
		}
		cfg.TokenTTL = d
	}
	if v := os.Getenv("AUTHGATE_READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("api: parsing AUTHGATE_READ_TIMEOUT: %w", err)
		}
		cfg.ReadTimeout = d
	}
	if v := os.Getenv("AUTHGATE_WRITE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("api: parsing AUTHGATE_WRITE_TIMEOUT: %w", err)
		}
		cfg.WriteTimeout = d
	}
	if v := os.Getenv("AUTHGATE_IDLE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("api: parsing AUTHGATE_IDLE_TIMEOUT: %w", err)
		}
		cfg.IdleTimeout = d
	}
	if v := os.Getenv("AUTHGATE_EXPOSE_METRICS"); v == "true" || v == "1" {
		cfg.ExposeMetrics = true
	}

	return cfg, cfg.Validate()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("api: listen address is required")
	}
	if c.TokenTTL <= 0 {
		return errors.New("api: token TTL must be positive")
	}
	return nil
}
