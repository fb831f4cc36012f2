// Package config provides environment-driven configuration for the job
// recommendation service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultPort               = 8000
	DefaultTopN               = 5
	DefaultMaxSkillsExtracted = 15
	DefaultMaxUploadSize      = 10 * 1024 * 1024 // 10MB
	DefaultJobsCachePath      = "data/jobs_cache.json"
	DefaultJobsCacheTTL       = 24 * time.Hour
)

// Config holds all service settings.
type Config struct {
	// Server
	Port          int
	MaxUploadSize int64

	// Recommendation
	DefaultTopN        int
	MaxSkillsExtracted int

	// Job sources
	DatabaseURL   string // optional; blank falls back to cache + sample table
	JobsCachePath string
	JobsCacheTTL  time.Duration

	// Logging
	LogJSON bool
	Debug   bool
}

// Load builds a Config from environment variables, applying defaults for
// anything unset. Malformed numeric values are an error rather than silently
// defaulted.
func Load() (*Config, error) {
	cfg := &Config{
		Port:               DefaultPort,
		MaxUploadSize:      DefaultMaxUploadSize,
		DefaultTopN:        DefaultTopN,
		MaxSkillsExtracted: DefaultMaxSkillsExtracted,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		JobsCachePath:      DefaultJobsCachePath,
		JobsCacheTTL:       DefaultJobsCacheTTL,
		LogJSON:            boolEnv("LOG_JSON"),
		Debug:              boolEnv("DEBUG"),
	}

	if err := intEnv("PORT", &cfg.Port); err != nil {
		return nil, err
	}
	if err := intEnv("DEFAULT_TOP_N", &cfg.DefaultTopN); err != nil {
		return nil, err
	}
	if err := intEnv("MAX_SKILLS_EXTRACTED", &cfg.MaxSkillsExtracted); err != nil {
		return nil, err
	}
	if raw := os.Getenv("MAX_UPLOAD_SIZE"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE %q: %w", raw, err)
		}
		cfg.MaxUploadSize = size
	}
	if path := os.Getenv("JOBS_CACHE_PATH"); path != "" {
		cfg.JobsCachePath = path
	}
	if raw := os.Getenv("JOBS_CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid JOBS_CACHE_TTL %q: %w", raw, err)
		}
		cfg.JobsCacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DefaultTopN <= 0 {
		return fmt.Errorf("config error: default top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxSkillsExtracted <= 0 {
		return fmt.Errorf("config error: max skills extracted must be positive, got %d", c.MaxSkillsExtracted)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("config error: max upload size must be positive, got %d", c.MaxUploadSize)
	}
	if c.JobsCacheTTL <= 0 {
		return fmt.Errorf("config error: jobs cache TTL must be positive, got %s", c.JobsCacheTTL)
	}
	return nil
}

func intEnv(name string, target *int) error {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	*target = value
	return nil
}

func boolEnv(name string) bool {
	value, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && value
}
