package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/matching"
)

type stubSource struct {
	jobs []matching.JobPosting
	err  error
}

func (s *stubSource) GetJobs(context.Context) ([]matching.JobPosting, error) {
	return s.jobs, s.err
}

// panicSource simulates an unexpected fault inside the collaborator chain.
type panicSource struct{}

func (panicSource) GetJobs(context.Context) ([]matching.JobPosting, error) {
	panic("job table corrupted")
}

func testJobs() []matching.JobPosting {
	return []matching.JobPosting{
		{"id": 1, "title": "Software Engineer", "skills": []string{"Python", "Django", "REST", "SQL", "Git"}},
		{"id": 2, "title": "Frontend Developer", "skills": []string{"JavaScript", "React", "HTML", "CSS"}},
		{"id": 3, "title": "Backend Developer", "skills": []string{"Node.js", "Express", "MongoDB"}},
	}
}

func TestRecommend_Success(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop())

	env := svc.Recommend(context.Background(), []string{"Python", "Django", "REST API", "SQL"}, 5)

	require.True(t, env.Success)
	assert.Empty(t, env.Error)
	assert.Equal(t, []string{"Python", "Django", "REST API", "SQL"}, env.InputSkills)
	require.NotEmpty(t, env.Recommendations)
	assert.Equal(t, len(env.Recommendations), env.RecommendationsCount)
	assert.Equal(t, 1, env.Recommendations[0]["id"])
}

func TestRecommend_NoSkillsIsSoftFailure(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop())

	env := svc.Recommend(context.Background(), nil, 5)

	assert.False(t, env.Success)
	assert.Equal(t, "no skills provided", env.Error)
	assert.NotNil(t, env.Recommendations)
	assert.Empty(t, env.Recommendations)
}

func TestRecommend_SourceErrorDegradesToEmpty(t *testing.T) {
	svc := NewService(&stubSource{err: errors.New("connection refused")}, zap.NewNop())

	env := svc.Recommend(context.Background(), []string{"Python"}, 5)

	require.True(t, env.Success, "an unavailable job source is not a failed call")
	assert.Empty(t, env.Recommendations)
	assert.Equal(t, 0, env.RecommendationsCount)
}

func TestRecommend_PanicBecomesFailureEnvelope(t *testing.T) {
	svc := NewService(panicSource{}, zap.NewNop())

	env := svc.Recommend(context.Background(), []string{"Python"}, 5)

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "processing error")
	assert.NotNil(t, env.Recommendations)
	assert.Empty(t, env.Recommendations)
}

func TestRecommend_DefaultTopN(t *testing.T) {
	jobs := make([]matching.JobPosting, 0, 10)
	for i := range 10 {
		jobs = append(jobs, matching.JobPosting{"id": i, "skills": []string{"Python"}})
	}
	svc := NewService(&stubSource{jobs: jobs}, zap.NewNop())

	env := svc.Recommend(context.Background(), []string{"Python"}, 0)

	require.True(t, env.Success)
	assert.Len(t, env.Recommendations, DefaultTopN)
}

func TestRecommendFromResume_Success(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop())

	env := svc.RecommendFromResume(context.Background(),
		"Backend engineer working with Python, Django and SQL.", 5)

	require.True(t, env.Success)
	assert.Contains(t, env.ExtractedSkills, "Python")
	assert.Equal(t, len(env.ExtractedSkills), env.SkillsCount)
	require.NotEmpty(t, env.Recommendations)
	assert.Equal(t, 1, env.Recommendations[0]["id"])
}

func TestRecommendFromResume_EmptyText(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop())

	env := svc.RecommendFromResume(context.Background(), "   ", 5)

	assert.False(t, env.Success)
	assert.Equal(t, "could not extract text from resume", env.Error)
}

func TestRecommendFromResume_NoSkillsFound(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop())

	env := svc.RecommendFromResume(context.Background(),
		"Passionate about gardening and watercolor painting.", 5)

	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "could not extract skills")
}

func TestRecommendFromResume_MaxSkillsOption(t *testing.T) {
	svc := NewService(&stubSource{jobs: testJobs()}, zap.NewNop(), WithMaxExtractedSkills(2))

	env := svc.RecommendFromResume(context.Background(),
		"Python, Django, SQL, Docker, Kubernetes and Git.", 5)

	require.True(t, env.Success)
	assert.Len(t, env.ExtractedSkills, 2)
}
