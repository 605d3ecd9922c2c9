package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/narrative"
)

var (
	roadmapFlags   inputFlags
	roadmapHorizon string
)

// roadmap horizons map to the overall timeline handed to the narrator.
var horizonTimelines = map[string]string{
	"short":  "3-6 months",
	"medium": "6-9 months",
	"long":   "12+ months",
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a narrative career roadmap",
	Long:  "Run a gap analysis and narrate it into a phased career roadmap. With GEMINI_API_KEY set the narration uses the language model and falls back to the deterministic generator on failure; without it the fallback is used directly.",
	RunE:  runRoadmap,
}

func init() {
	roadmapFlags.register(roadmapCmd)
	roadmapCmd.Flags().StringVar(&roadmapHorizon, "horizon", "", "Planning horizon: short, medium, or long")
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	cfg, err := roadmapFlags.resolve()
	if err != nil {
		return err
	}

	if roadmapHorizon != "" {
		if _, ok := horizonTimelines[roadmapHorizon]; !ok {
			return fmt.Errorf("invalid horizon %q: must be short, medium, or long", roadmapHorizon)
		}
	}

	analysis, err := gapAnalysis(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if timeline, ok := horizonTimelines[roadmapHorizon]; ok {
		analysis.Timeline = timeline
	}

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(cmd.Context(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			log.Printf("LLM client unavailable, using the deterministic generator: %v", err)
			client = nil
		}
	}

	roadmap, err := narrative.NewGenerator(client).Roadmap(cmd.Context(), analysis)
	if err != nil {
		return fmt.Errorf("roadmap generation failed: %w", err)
	}
	return writeResult(roadmapFlags.outFile, roadmap)
}
