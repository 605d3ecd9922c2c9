package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	ingestFlags inputFlags
	ingestDir   string
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch and clean an input without analyzing it",
	Long:  "Ingest a profile or posting from a text file or URL, clean the content, and write the cleaned text plus fetch metadata for later analysis.",
	RunE:  runIngest,
}

func init() {
	ingestFlags.register(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestDir, "dir", "d", "", "Output directory (required)")
	ingestCmd.MarkFlagRequired("dir")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	cfg, err := ingestFlags.resolve()
	if err != nil {
		return err
	}

	text, metadata, err := loadText(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to ingest input: %w", err)
	}

	if err := os.MkdirAll(ingestDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(ingestDir, "input.cleaned.txt")
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}

	metaPath := filepath.Join(ingestDir, "input.meta.json")
	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := os.WriteFile(metaPath, metaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested input\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", textPath)
	fmt.Fprintf(os.Stdout, "Metadata: %s\n", metaPath)
	return nil
}
