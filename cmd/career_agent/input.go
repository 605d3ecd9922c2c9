package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/ingestion"
)

// inputFlags are the flags shared by every analysis command. A config file
// supplies defaults; explicit flags win.
type inputFlags struct {
	textFile   string
	urlStr     string
	stream     string
	configPath string
	useBrowser bool
	verbose    bool
	leniency   int
	outFile    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.textFile, "text-file", "t", "", "Path to a skills or resume text file")
	cmd.Flags().StringVarP(&f.urlStr, "url", "u", "", "URL to fetch the profile or posting from")
	cmd.Flags().StringVarP(&f.stream, "stream", "s", "", "Stream id to analyze against (empty = detect)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Path to a JSON config file")
	cmd.Flags().BoolVar(&f.useBrowser, "browser", false, "Use a headless browser for JavaScript-heavy pages")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed progress information")
	cmd.Flags().IntVar(&f.leniency, "leniency", 0, "Tolerance band for role recommendations (0 = default)")
	cmd.Flags().StringVarP(&f.outFile, "out", "o", "", "Write the JSON result to this file instead of stdout")
}

// resolve merges the optional config file under the flags and validates the
// combined input selection.
func (f *inputFlags) resolve() (config.Config, error) {
	cfg := config.Config{
		Resume:       f.textFile,
		ResumeURL:    f.urlStr,
		Stream:       f.stream,
		UseBrowser:   f.useBrowser,
		Verbose:      f.verbose,
		RoleLeniency: f.leniency,
		APIKey:       os.Getenv("GEMINI_API_KEY"),
	}

	if f.configPath != "" {
		fileCfg, err := config.LoadConfig(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		// Bools never merge from file defaults, so carry them explicitly
		// when the flag was left unset.
		if !f.useBrowser {
			cfg.UseBrowser = fileCfg.UseBrowser
		}
		if !f.verbose {
			cfg.Verbose = fileCfg.Verbose
		}
	}

	if cfg.Resume == "" && cfg.ResumeURL == "" {
		return config.Config{}, fmt.Errorf("either --text-file or --url must be provided")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// loadText ingests the configured input into cleaned analysis text.
func loadText(ctx context.Context, cfg config.Config) (string, *ingestion.Metadata, error) {
	if cfg.Resume != "" {
		return ingestion.IngestFromFile(cfg.Resume)
	}
	return ingestion.IngestFromURL(ctx, cfg.ResumeURL, cfg.UseBrowser, cfg.Verbose)
}

// writeResult renders v as indented JSON to the output file, or stdout when
// no file is configured.
func writeResult(outFile string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	data = append(data, '\n')

	if outFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
