package jobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/matching"
)

// DefaultCacheTTL is how long a cached job snapshot stays fresh.
const DefaultCacheTTL = 24 * time.Hour

// snapshotSchema validates a cache file before we trust its contents.
// Snapshots are written by scrapers outside this process, so a malformed
// file reads as "no jobs" instead of poisoning the ranking input.
const snapshotSchema = `{
	"type": "object",
	"required": ["scraped_at", "jobs"],
	"properties": {
		"position":         {"type": "string"},
		"location":         {"type": "string"},
		"total_jobs":       {"type": "integer", "minimum": 0},
		"scraped_at":       {"type": "string"},
		"cache_expires_at": {"type": "string"},
		"jobs": {
			"type": "array",
			"items": {"type": "object"}
		}
	}
}`

// Snapshot is the on-disk format for cached scraped jobs.
type Snapshot struct {
	Position       string                `json:"position,omitempty"`
	Location       string                `json:"location,omitempty"`
	TotalJobs      int                   `json:"total_jobs"`
	ScrapedAt      time.Time             `json:"scraped_at"`
	CacheExpiresAt time.Time             `json:"cache_expires_at"`
	Jobs           []matching.JobPosting `json:"jobs"`
}

// FileCache reads and writes job snapshots as a local JSON file with a
// freshness TTL. Expired or invalid snapshots read as an empty collection.
type FileCache struct {
	path   string
	ttl    time.Duration
	logger *zap.Logger
	now    func() time.Time
}

// NewFileCache creates a file cache at path with the given TTL (DefaultCacheTTL
// when ttl <= 0).
func NewFileCache(path string, ttl time.Duration, logger *zap.Logger) *FileCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCache{path: path, ttl: ttl, logger: logger, now: time.Now}
}

// Save writes a snapshot of freshly scraped jobs.
func (c *FileCache) Save(jobs []matching.JobPosting, position, location string) error {
	now := c.now().UTC()
	snapshot := Snapshot{
		Position:       position,
		Location:       location,
		TotalJobs:      len(jobs),
		ScrapedAt:      now,
		CacheExpiresAt: now.Add(c.ttl),
		Jobs:           jobs,
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode job snapshot: %w", err)
	}

	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write job snapshot: %w", err)
	}

	c.logger.Info("saved job snapshot",
		zap.String("path", c.path),
		zap.Int("jobs", len(jobs)))
	return nil
}

// GetJobs returns the cached collection if the snapshot exists, validates,
// and is still fresh. A missing file is "no jobs", not an error.
func (c *FileCache) GetJobs(_ context.Context) ([]matching.JobPosting, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []matching.JobPosting{}, nil
		}
		return nil, fmt.Errorf("failed to read job snapshot: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(snapshotSchema),
		gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to validate job snapshot: %w", err)
	}
	if !result.Valid() {
		c.logger.Warn("job snapshot failed schema validation",
			zap.String("path", c.path),
			zap.Int("violations", len(result.Errors())))
		return []matching.JobPosting{}, nil
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode job snapshot: %w", err)
	}

	if c.expired(snapshot) {
		c.logger.Info("job snapshot expired",
			zap.String("path", c.path),
			zap.Time("scraped_at", snapshot.ScrapedAt))
		return []matching.JobPosting{}, nil
	}

	return snapshot.Jobs, nil
}

func (c *FileCache) expired(snapshot Snapshot) bool {
	now := c.now()
	if !snapshot.CacheExpiresAt.IsZero() {
		return now.After(snapshot.CacheExpiresAt)
	}
	return now.Sub(snapshot.ScrapedAt) > c.ttl
}
