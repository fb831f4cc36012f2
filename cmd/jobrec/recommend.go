package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/recommend"
)

var (
	recommendSkills []string
	recommendTopN   int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank jobs against a skill list",
	Long:  "Scores every available job posting against the given skills and prints the top matches as JSON.",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringSliceVarP(&recommendSkills, "skills", "s", nil, "Candidate skills, comma separated (required)")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top-n", "n", config.DefaultTopN, "Number of recommendations to return")

	if err := recommendCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx := context.Background()
	source, cleanup, err := buildJobSource(ctx, cfg, zap.NewNop())
	if err != nil {
		return err
	}
	defer cleanup()

	svc := recommend.NewService(source, zap.NewNop())
	env := svc.Recommend(ctx, recommendSkills, recommendTopN)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(env); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if !env.Success {
		return fmt.Errorf("recommendation failed: %s", env.Error)
	}
	return nil
}
