package jobstore

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/matching"
)

// Source is anything that can produce a job collection.
type Source interface {
	GetJobs(ctx context.Context) ([]matching.JobPosting, error)
}

// Fallback serves jobs from a primary source and falls back to a secondary
// one when the primary errors or comes back empty.
type Fallback struct {
	primary   Source
	secondary Source
	logger    *zap.Logger
}

// NewFallback wires a primary source with a backup.
func NewFallback(primary, secondary Source, logger *zap.Logger) *Fallback {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fallback{primary: primary, secondary: secondary, logger: logger}
}

func (f *Fallback) GetJobs(ctx context.Context) ([]matching.JobPosting, error) {
	jobs, err := f.primary.GetJobs(ctx)
	if err != nil {
		f.logger.Warn("primary job source failed, using fallback", zap.Error(err))
		return f.secondary.GetJobs(ctx)
	}
	if len(jobs) == 0 {
		f.logger.Debug("primary job source empty, using fallback")
		return f.secondary.GetJobs(ctx)
	}
	return jobs, nil
}
