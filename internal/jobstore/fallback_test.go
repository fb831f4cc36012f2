package jobstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/matching"
)

type failingSource struct{}

func (failingSource) GetJobs(context.Context) ([]matching.JobPosting, error) {
	return nil, errors.New("boom")
}

func TestFallback_PrimaryWins(t *testing.T) {
	primary := NewStaticWithJobs([]matching.JobPosting{{"id": 1}})
	secondary := NewStaticWithJobs([]matching.JobPosting{{"id": 2}})

	jobs, err := NewFallback(primary, secondary, nil).GetJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 1, jobs[0]["id"])
}

func TestFallback_PrimaryError(t *testing.T) {
	secondary := NewStaticWithJobs([]matching.JobPosting{{"id": 2}})

	jobs, err := NewFallback(failingSource{}, secondary, nil).GetJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 2, jobs[0]["id"])
}

func TestFallback_PrimaryEmpty(t *testing.T) {
	primary := NewStaticWithJobs(nil)
	secondary := NewStatic()

	jobs, err := NewFallback(primary, secondary, nil).GetJobs(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, jobs)
}
