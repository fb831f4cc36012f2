package jobstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-recommender/internal/matching"
)

func TestStatic_SampleTable(t *testing.T) {
	source := NewStatic()

	jobs, err := source.GetJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 8)

	for _, job := range jobs {
		assert.NotEmpty(t, job["title"])
		assert.NotEmpty(t, job["company"])
		skills, ok := job["skills"].([]string)
		require.True(t, ok, "sample jobs store skills as a list")
		assert.NotEmpty(t, skills)
	}
}

func TestStatic_ReturnsFreshSlice(t *testing.T) {
	source := NewStatic()
	ctx := context.Background()

	first, err := source.GetJobs(ctx)
	require.NoError(t, err)
	second, err := source.GetJobs(ctx)
	require.NoError(t, err)

	first[0] = matching.JobPosting{"id": "overwritten"}
	assert.NotEqual(t, "overwritten", second[0]["id"])
}

func TestStatic_CustomJobs(t *testing.T) {
	jobs := []matching.JobPosting{{"id": 1, "skills": "Go, Docker"}}
	source := NewStaticWithJobs(jobs)

	got, err := source.GetJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0]["id"])
}

func TestStatic_Empty(t *testing.T) {
	source := &Static{}

	got, err := source.GetJobs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
