package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/jobstore"
	"github.com/jonathan/job-recommender/internal/recommend"
	"github.com/jonathan/job-recommender/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for skill-based job recommendations and resume analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if servePort > 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	source, cleanup, err := buildJobSource(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	svc := recommend.NewService(source, logger,
		recommend.WithMaxExtractedSkills(cfg.MaxSkillsExtracted))

	srv := server.New(server.Config{
		Port:               cfg.Port,
		MaxUploadSize:      cfg.MaxUploadSize,
		DefaultTopN:        cfg.DefaultTopN,
		MaxSkillsExtracted: cfg.MaxSkillsExtracted,
	}, svc, source, nil, logger)

	return srv.Start()
}

// buildJobSource picks the job source for this process: Postgres when
// DATABASE_URL is set, otherwise the file cache backed by the built-in
// sample table.
func buildJobSource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (recommend.JobSource, func(), error) {
	if cfg.DatabaseURL != "" {
		pg, err := jobstore.NewPostgres(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		logger.Info("using postgres job source")
		return pg, pg.Close, nil
	}

	cache := jobstore.NewFileCache(cfg.JobsCachePath, cfg.JobsCacheTTL, logger)
	logger.Info("using cached job source with sample fallback",
		zap.String("cache_path", cfg.JobsCachePath))
	return jobstore.NewFallback(cache, jobstore.NewStatic(), logger), func() {}, nil
}
