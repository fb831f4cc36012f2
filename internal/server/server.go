// Package server provides the HTTP REST API for the job recommendation
// service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/ingestion"
	"github.com/jonathan/job-recommender/internal/recommend"
)

// Config holds server configuration.
type Config struct {
	Port               int
	MaxUploadSize      int64
	DefaultTopN        int
	MaxSkillsExtracted int
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	cfg         Config
	recommender *recommend.Service
	source      recommend.JobSource
	extractor   ingestion.Extractor
	validate    *validator.Validate
	logger      *zap.Logger
}

// New creates a server serving recommendations from the given service and
// job source. A nil extractor defaults to the text/HTML extractor.
func New(cfg Config, recommender *recommend.Service, source recommend.JobSource, extractor ingestion.Extractor, logger *zap.Logger) *Server {
	if extractor == nil {
		extractor = ingestion.TextExtractor{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:         cfg,
		recommender: recommender,
		source:      source,
		extractor:   extractor,
		validate:    validator.New(),
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", s.handlePing)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /recommend-by-skills", s.handleRecommendBySkills)
	mux.HandleFunc("POST /analyze-resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /upload-resume", s.handleUploadResume)
	mux.HandleFunc("GET /jobs", s.handleListJobs)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds structured request logging with a per-request id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handlePing is the minimal liveness probe.
func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "API is running"})
}

// handleHealth returns service identity and status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "Job Recommendation API",
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "error": message})
}
