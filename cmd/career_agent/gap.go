package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/gap"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

var gapFlags inputFlags

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Run an importance-weighted skill gap analysis",
	Long:  "Extract a structured profile from the input, score it against a track's career pathways, and report skill gaps with priorities, learning estimates, and recommendations. Without --stream the best-matching stream is detected first.",
	RunE:  runGap,
}

func init() {
	gapFlags.register(gapCmd)
	rootCmd.AddCommand(gapCmd)
}

func runGap(cmd *cobra.Command, _ []string) error {
	cfg, err := gapFlags.resolve()
	if err != nil {
		return err
	}

	analysis, err := gapAnalysis(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	return writeResult(gapFlags.outFile, analysis)
}

// gapAnalysis loads the input text and runs the gap pipeline, detecting the
// stream first when the config names none.
func gapAnalysis(ctx context.Context, cfg config.Config) (*types.GapAnalysis, error) {
	text, _, err := loadText(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load input: %w", err)
	}

	cat := catalog.New()
	streamID := cfg.Stream
	if streamID == "" {
		analyzer := matching.NewAnalyzer(cat, matching.Config{RoleLeniency: cfg.RoleLeniency})
		detection, err := analyzer.DetectBestStream(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("detection failed: %w", err)
		}
		streamID = detection.DetectedStream
	}

	profile := parsing.ExtractProfile(text)
	analysis := gap.NewAnalyzer(cat).Analyze(profile, streamID)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintProfile(profile)
		printer.PrintGapAnalysis(analysis)
	}
	return analysis, nil
}
