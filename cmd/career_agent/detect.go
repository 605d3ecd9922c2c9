package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
)

var detectFlags inputFlags

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the best-matching stream for a profile",
	Long:  "Evaluate a skills profile against every registered stream and report the ranked scores, the detected stream, and its full match result.",
	RunE:  runDetect,
}

func init() {
	detectFlags.register(detectCmd)
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, _ []string) error {
	cfg, err := detectFlags.resolve()
	if err != nil {
		return err
	}

	text, _, err := loadText(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to load input: %w", err)
	}

	cat := catalog.New()
	analyzer := matching.NewAnalyzer(cat, matching.Config{RoleLeniency: cfg.RoleLeniency})
	analysis, err := analyzer.DetectBestStream(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintStreamAnalysis(analysis)
	}
	return writeResult(detectFlags.outFile, analysis)
}
