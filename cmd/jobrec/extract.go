package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-recommender/internal/config"
	"github.com/jonathan/job-recommender/internal/extraction"
	"github.com/jonathan/job-recommender/internal/ingestion"
)

var (
	extractFile string
	extractTopN int
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract skills from a resume file",
	Long:  "Reads a plain-text, markdown or HTML resume and prints the technical skills found in it, ordered by frequency.",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractFile, "file", "f", "", "Resume file to analyze (required)")
	extractCmd.Flags().IntVarP(&extractTopN, "top-n", "n", config.DefaultMaxSkillsExtracted, "Maximum number of skills to return (0 for all)")

	if err := extractCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(extractFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", extractFile, err)
	}

	text, err := ingestion.TextExtractor{}.ExtractText(extractFile, data)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}

	skills := extraction.ExtractSkills(text, extractTopN)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(map[string]any{
		"success":          len(skills) > 0,
		"extracted_skills": skills,
		"skills_count":     len(skills),
	}); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
