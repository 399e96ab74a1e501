// Package config loads server settings from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/wizarding-catalog/internal/errors"
	"github.com/KirkDiggler/wizarding-catalog/internal/pkg/pagination"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds all runtime configuration for the catalog server
type Config struct {
	// Server settings
	ServerPort      int           `env:"SERVER_PORT"      envDefault:"8080"`
	Environment     string        `env:"ENVIRONMENT"      envDefault:"development"`
	Debug           bool          `env:"DEBUG"            envDefault:"false"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// Provider
	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"https://hp-api.onrender.com/api"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT"  envDefault:"30s"`

	// Response cache
	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheTTL     time.Duration `env:"CACHE_TTL"     envDefault:"5m"`
	RedisAddr    string        `env:"REDIS_ADDR"    envDefault:"localhost:6379"`

	// Presentation
	SearchDebounce    time.Duration `env:"SEARCH_DEBOUNCE"     envDefault:"300ms"`
	SearchSessionTTL  time.Duration `env:"SEARCH_SESSION_TTL"  envDefault:"30m"`
	SearchMaxSessions int           `env:"SEARCH_MAX_SESSIONS" envDefault:"1000"`
	PageSize          int           `env:"PAGE_SIZE"           envDefault:"20"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unknown cache backends and non-positive durations
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ServerPort < 1 || c.ServerPort > 65535 {
		vb.Field("SERVER_PORT", "must be between 1 and 65535")
	}
	errors.ValidateRequired("CATALOG_BASE_URL", c.CatalogBaseURL, vb)
	errors.ValidateEnum("CACHE_BACKEND", c.CacheBackend, []string{CacheBackendMemory, CacheBackendRedis}, vb)
	if c.CacheBackend == CacheBackendRedis {
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	}

	for field, d := range map[string]time.Duration{
		"CATALOG_TIMEOUT":    c.CatalogTimeout,
		"CACHE_TTL":          c.CacheTTL,
		"SEARCH_DEBOUNCE":    c.SearchDebounce,
		"SHUTDOWN_TIMEOUT":   c.ShutdownTimeout,
		"SEARCH_SESSION_TTL": c.SearchSessionTTL,
	} {
		if d <= 0 {
			vb.Field(field, "must be positive")
		}
	}

	if c.SearchMaxSessions < 1 {
		vb.Field("SEARCH_MAX_SESSIONS", "must be positive")
	}
	if c.PageSize < 1 || c.PageSize > pagination.MaxLimit {
		vb.Fieldf("PAGE_SIZE", "must be between 1 and %d", pagination.MaxLimit)
	}

	return vb.Build()
}

// IsDevelopment reports whether the server is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
