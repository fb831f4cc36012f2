package jobstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/matching"
)

// Postgres serves job postings from a jobs table. Skills and any extra
// fields live in JSONB columns so heterogeneous scraped records round-trip
// without schema churn.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// JobRecord is the typed shape used when writing postings to the store.
type JobRecord struct {
	ID          uuid.UUID
	Title       string
	Company     string
	Location    string
	Description string
	Skills      []string
	Extra       map[string]any
}

// NewPostgres connects a pgx pool to databaseURL and verifies the connection.
func NewPostgres(ctx context.Context, databaseURL string, logger *zap.Logger) (*Postgres, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}

// GetJobs returns all stored postings as loosely typed records, newest first.
func (p *Postgres) GetJobs(ctx context.Context) ([]matching.JobPosting, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, title, company, location, description, skills, extra
		 FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]matching.JobPosting, 0, 64)
	for rows.Next() {
		var (
			id                                    uuid.UUID
			title, company, location, description string
			skillsJSON, extraJSON                 []byte
		)
		if err := rows.Scan(&id, &title, &company, &location, &description, &skillsJSON, &extraJSON); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}

		job := matching.JobPosting{
			"id":          id.String(),
			"title":       title,
			"company":     company,
			"location":    location,
			"description": description,
		}
		if len(skillsJSON) > 0 {
			var skills []string
			if err := json.Unmarshal(skillsJSON, &skills); err == nil {
				job["skills"] = skills
			}
		}
		if len(extraJSON) > 0 {
			var extra map[string]any
			if err := json.Unmarshal(extraJSON, &extra); err == nil {
				for key, value := range extra {
					if _, taken := job[key]; !taken {
						job[key] = value
					}
				}
			}
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}

// UpsertJob inserts or updates a posting keyed by id. A zero ID gets a fresh
// UUID, which is returned.
func (p *Postgres) UpsertJob(ctx context.Context, record JobRecord) (uuid.UUID, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	skillsJSON, err := json.Marshal(record.Skills)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	var extraJSON []byte
	if len(record.Extra) > 0 {
		extraJSON, err = json.Marshal(record.Extra)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal extra fields: %w", err)
		}
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO jobs (id, title, company, location, description, skills, extra, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		 ON CONFLICT (id) DO UPDATE SET
		   title = EXCLUDED.title,
		   company = EXCLUDED.company,
		   location = EXCLUDED.location,
		   description = EXCLUDED.description,
		   skills = EXCLUDED.skills,
		   extra = EXCLUDED.extra,
		   updated_at = NOW()`,
		record.ID, record.Title, record.Company, record.Location,
		record.Description, skillsJSON, extraJSON)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert job: %w", err)
	}

	p.logger.Debug("upserted job", zap.String("id", record.ID.String()), zap.String("title", record.Title))
	return record.ID, nil
}

// CountJobs returns the number of stored postings.
func (p *Postgres) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
