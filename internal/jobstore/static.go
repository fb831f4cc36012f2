// Package jobstore provides the job-source collaborators the recommendation
// service ranks against: a built-in sample table, a TTL'd file cache for
// scraped jobs, and a Postgres-backed store.
package jobstore

import (
	"context"

	"github.com/jonathan/job-recommender/internal/matching"
)

// Static serves a fixed, in-memory job collection. The zero value is empty;
// NewStatic seeds the built-in sample table used for local development and
// as a fallback when no durable store is configured.
type Static struct {
	jobs []matching.JobPosting
}

// NewStatic returns a Static source seeded with the sample job table.
func NewStatic() *Static {
	return &Static{jobs: sampleJobs()}
}

// NewStaticWithJobs returns a Static source serving the given collection.
func NewStaticWithJobs(jobs []matching.JobPosting) *Static {
	return &Static{jobs: jobs}
}

// GetJobs returns a fresh slice over the stored postings. The postings
// themselves are shared; the ranking engine never mutates them.
func (s *Static) GetJobs(_ context.Context) ([]matching.JobPosting, error) {
	out := make([]matching.JobPosting, len(s.jobs))
	copy(out, s.jobs)
	return out, nil
}

func sampleJobs() []matching.JobPosting {
	return []matching.JobPosting{
		{
			"id":           1,
			"title":        "Software Engineer",
			"company":      "TechCorp",
			"location":     "San Francisco, CA",
			"description":  "Develop and maintain web applications using Python and Django.",
			"salary_range": "$120,000 - $150,000",
			"skills":       []string{"Python", "Django", "REST", "SQL", "Git"},
		},
		{
			"id":           2,
			"title":        "Frontend Developer",
			"company":      "Webify",
			"location":     "New York, NY",
			"description":  "Build responsive UI with React and modern JavaScript.",
			"salary_range": "$100,000 - $130,000",
			"skills":       []string{"JavaScript", "React", "HTML", "CSS", "Git"},
		},
		{
			"id":           3,
			"title":        "Data Scientist",
			"company":      "DataWorks",
			"location":     "Remote",
			"description":  "Analyze datasets and build ML models using Python.",
			"salary_range": "$130,000 - $160,000",
			"skills":       []string{"Python", "Pandas", "Scikit-learn", "SQL", "Machine Learning"},
		},
		{
			"id":           4,
			"title":        "DevOps Engineer",
			"company":      "CloudOps",
			"location":     "Austin, TX",
			"description":  "Manage CI/CD pipelines and cloud infrastructure.",
			"salary_range": "$110,000 - $140,000",
			"skills":       []string{"Docker", "Kubernetes", "AWS", "CI/CD", "Python"},
		},
		{
			"id":           5,
			"title":        "Backend Developer",
			"company":      "API Solutions",
			"location":     "Seattle, WA",
			"description":  "Design and maintain backend services and APIs.",
			"salary_range": "$115,000 - $145,000",
			"skills":       []string{"Node.js", "Express", "MongoDB", "REST", "Git"},
		},
		{
			"id":           6,
			"title":        "Full Stack Developer",
			"company":      "WebDynamics",
			"location":     "Boston, MA",
			"description":  "Build end-to-end web applications with Python and React.",
			"salary_range": "$125,000 - $155,000",
			"skills":       []string{"Python", "React", "PostgreSQL", "REST", "Git", "JavaScript"},
		},
		{
			"id":           7,
			"title":        "ML Engineer",
			"company":      "AI Innovations",
			"location":     "Remote",
			"description":  "Develop machine learning models and deploy them to production.",
			"salary_range": "$140,000 - $170,000",
			"skills":       []string{"Python", "TensorFlow", "Scikit-learn", "SQL", "Machine Learning"},
		},
		{
			"id":           8,
			"title":        "Cloud Architect",
			"company":      "CloudScale",
			"location":     "San Jose, CA",
			"description":  "Design and implement cloud infrastructure solutions.",
			"salary_range": "$150,000 - $180,000",
			"skills":       []string{"AWS", "Docker", "Kubernetes", "CI/CD", "Python"},
		},
	}
}
