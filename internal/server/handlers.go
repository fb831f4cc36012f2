package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/jonathan/job-recommender/internal/extraction"
	"github.com/jonathan/job-recommender/internal/matching"
)

// SkillsRequest is the body for POST /recommend-by-skills.
type SkillsRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,required"`
	TopN   int      `json:"top_n" validate:"omitempty,min=1,max=100"`
}

// handleRecommendBySkills ranks jobs against a caller-supplied skill list.
func (s *Server) handleRecommendBySkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	topN := req.TopN
	if topN == 0 {
		topN = s.cfg.DefaultTopN
	}

	env := s.recommender.Recommend(r.Context(), req.Skills, topN)
	if !env.Success {
		s.jsonResponse(w, http.StatusBadRequest, env)
		return
	}
	s.jsonResponse(w, http.StatusOK, env)
}

// handleAnalyzeResume extracts skills from an uploaded resume without
// running the recommendation step.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	skills := extraction.ExtractSkills(text, s.cfg.MaxSkillsExtracted)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":               len(skills) > 0,
		"extracted_skills":      skills,
		"skills_count":          len(skills),
		"recommendations":       []matching.MatchResult{},
		"recommendations_count": 0,
	})
}

// handleUploadResume runs the full flow: uploaded resume to ranked jobs.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readResumeText(w, r)
	if !ok {
		return
	}

	topN := s.cfg.DefaultTopN
	if raw := r.FormValue("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "top_n must be a positive integer")
			return
		}
		topN = parsed
	}

	env := s.recommender.RecommendFromResume(r.Context(), text, topN)
	if !env.Success {
		s.jsonResponse(w, http.StatusBadRequest, env)
		return
	}
	s.jsonResponse(w, http.StatusOK, env)
}

// handleListJobs lists the current job collection with pagination.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	skip := parseQueryInt(r, "skip", 0)
	limit := parseQueryInt(r, "limit", 10)
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	jobs, err := s.source.GetJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to retrieve jobs: "+err.Error())
		return
	}

	total := len(jobs)
	if skip > total {
		skip = total
	}
	end := skip + limit
	if end > total {
		end = total
	}
	page := jobs[skip:end]

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":       true,
		"total_jobs":    total,
		"returned_jobs": len(page),
		"skip":          skip,
		"limit":         limit,
		"jobs":          page,
	})
}

// readResumeText pulls the uploaded file out of a multipart request and
// converts it to plain text, writing the error response itself on failure.
func (s *Server) readResumeText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file upload is required: "+err.Error())
		return "", false
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), "failed to read upload: "+err.Error())
		return "", false
	}

	text, err := s.extractor.ExtractText(header.Filename, data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return "", false
	}
	return text, true
}

// parseQueryInt reads an integer query parameter, falling back to def on
// absence or garbage.
func parseQueryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
