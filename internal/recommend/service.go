// Package recommend glues skill extraction and the matching engine into the
// recommendation flows exposed to callers, shaping every outcome into a
// structured success or failure envelope.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/extraction"
	"github.com/jonathan/job-recommender/internal/matching"
)

// DefaultTopN is the number of recommendations returned when the caller does
// not specify one.
const DefaultTopN = 5

// JobSource supplies the job collection to rank against. Implementations may
// serve a static table, a cache snapshot, or a live store; the engine treats
// the result as ephemeral input. A nil-error empty slice means "no jobs",
// never nil-with-jobs.
type JobSource interface {
	GetJobs(ctx context.Context) ([]matching.JobPosting, error)
}

// Envelope is the result shape returned to callers. A failed call always has
// Success false and a non-empty Error; Recommendations is never nil.
type Envelope struct {
	Success              bool                   `json:"success"`
	InputSkills          []string               `json:"input_skills,omitempty"`
	ExtractedSkills      []string               `json:"extracted_skills,omitempty"`
	SkillsCount          int                    `json:"skills_count,omitempty"`
	Recommendations      []matching.MatchResult `json:"recommendations"`
	RecommendationsCount int                    `json:"recommendations_count"`
	Error                string                 `json:"error,omitempty"`
}

// Service orchestrates recommendation requests against a job source.
type Service struct {
	source    JobSource
	logger    *zap.Logger
	maxSkills int
}

// Option configures a Service.
type Option func(*Service)

// WithMaxExtractedSkills caps how many skills resume extraction feeds into
// ranking.
func WithMaxExtractedSkills(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSkills = n
		}
	}
}

// NewService creates a recommendation service. A nil logger disables logging.
func NewService(source JobSource, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		source:    source,
		logger:    logger,
		maxSkills: extraction.DefaultMaxSkills,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Recommend ranks the current job collection against the given skills and
// returns the result envelope. An empty skill list is a soft failure, not an
// error; a job-source failure degrades to an empty recommendation list.
func (s *Service) Recommend(ctx context.Context, skills []string, topN int) Envelope {
	if len(skills) == 0 {
		return failureEnvelope("no skills provided")
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return s.rank(ctx, skills, topN)
}

// RecommendFromResume extracts skills from resume text and ranks against
// them. Mirrors Recommend's envelope with the extracted skills attached.
func (s *Service) RecommendFromResume(ctx context.Context, text string, topN int) Envelope {
	if strings.TrimSpace(text) == "" {
		return failureEnvelope("could not extract text from resume")
	}

	skills := extraction.ExtractSkills(text, s.maxSkills)
	s.logger.Debug("extracted skills from resume",
		zap.Int("text_length", len(text)),
		zap.Int("skills_count", len(skills)))

	if len(skills) == 0 {
		return failureEnvelope("could not extract skills from resume; ensure it lists technical skills such as Python, Java, or SQL")
	}

	if topN <= 0 {
		topN = DefaultTopN
	}
	env := s.rank(ctx, skills, topN)
	env.ExtractedSkills = skills
	env.SkillsCount = len(skills)
	return env
}

// rank fetches jobs and runs the ranking engine. Unexpected panics from
// scoring malformed data are converted to a failure envelope so a raw fault
// never reaches the caller.
func (s *Service) rank(ctx context.Context, skills []string, topN int) (env Envelope) {
	defer func() {
		if cause := recover(); cause != nil {
			s.logger.Error("recommendation failed", zap.Any("cause", cause))
			env = failureEnvelope(fmt.Sprintf("processing error: %v", cause))
		}
	}()

	jobs, err := s.source.GetJobs(ctx)
	if err != nil {
		// Collaborator failure degrades to "no jobs available".
		s.logger.Warn("job source unavailable", zap.Error(err))
		jobs = nil
	}

	recommendations := matching.Rank(skills, jobs, topN)
	s.logger.Info("ranked jobs",
		zap.Int("jobs", len(jobs)),
		zap.Int("skills", len(skills)),
		zap.Int("recommendations", len(recommendations)))

	return Envelope{
		Success:              true,
		InputSkills:          skills,
		Recommendations:      recommendations,
		RecommendationsCount: len(recommendations),
	}
}

func failureEnvelope(message string) Envelope {
	return Envelope{
		Success:         false,
		Error:           message,
		Recommendations: []matching.MatchResult{},
	}
}
