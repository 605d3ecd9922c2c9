package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
)

var analyzeFlags inputFlags

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a profile against a single stream",
	Long:  "Analyze a skills profile or posting against one stream and report the match score, matched skills, gaps, and role recommendations. An unknown or empty stream id falls back to the default stream.",
	RunE:  runAnalyze,
}

func init() {
	analyzeFlags.register(analyzeCmd)
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := analyzeFlags.resolve()
	if err != nil {
		return err
	}

	text, _, err := loadText(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	cat := catalog.New()
	analyzer := matching.NewAnalyzer(cat, matching.Config{RoleLeniency: cfg.RoleLeniency})
	result := analyzer.AnalyzeText(text, cfg.Stream)

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatchResult(result)
	}
	return writeResult(analyzeFlags.outFile, result)
}
