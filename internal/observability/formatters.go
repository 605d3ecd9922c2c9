// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList appends up to limit items as bullets, with a trailing count of
// whatever was cut off.
func writeList(sb *strings.Builder, items []string, limit int) {
	count := min(len(items), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-limit))
	}
}

// PrintProfile outputs a summary of the terms extracted from the input text.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil || profile.IsEmpty() {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d terms\n\n", profile.TermCount()))

	buckets := []struct {
		name  string
		items []string
	}{
		{"Skills", profile.Skills},
		{"Tools", profile.Tools},
		{"Education", profile.Education},
		{"Certifications", profile.Certifications},
		{"Experience", profile.Experience},
	}
	for _, b := range buckets {
		if len(b.items) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s:\n", b.name))
		writeList(&sb, b.items, maxItemsToShow)
	}

	p.printBox("EXTRACTED PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchResult outputs a single-stream match with per-category scores.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Stream:   %s (%s)\n", result.StreamTitle, result.StreamID))
	sb.WriteString(fmt.Sprintf("Score:    %d/100\n", result.Score))
	sb.WriteString("\n")

	scores := result.MatchDetails.CategoryScores
	sb.WriteString(fmt.Sprintf("Skills: %d%%  Tools: %d%%  Education: %d%%  Certs: %d%%\n",
		scores.Skills, scores.Tools, scores.Education, scores.Certifications))

	if len(result.SkillsFound) > 0 {
		sb.WriteString("\nSkills found:\n")
		writeList(&sb, result.SkillsFound, maxItemsToShow)
	}
	if len(result.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		writeList(&sb, result.Gaps, maxItemsToShow)
	}
	if len(result.Recommendations) > 0 {
		sb.WriteString(fmt.Sprintf("\nRecommended roles: %d\n", len(result.Recommendations)))
	}

	p.printBox("STREAM MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStreamAnalysis outputs the ranked multi-stream comparison.
func (p *Printer) PrintStreamAnalysis(analysis *types.StreamAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Detected:   %s\n", analysis.DetectedStream))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n\n", analysis.Confidence))

	count := min(len(analysis.AllStreamScores), maxItemsToShow)
	for i := 0; i < count; i++ {
		score := analysis.AllStreamScores[i]
		sb.WriteString(fmt.Sprintf("#%d  %-14s %3d  %s\n", i+1, score.Stream, score.Score, score.Title))
	}
	if len(analysis.AllStreamScores) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more streams", len(analysis.AllStreamScores)-maxItemsToShow))
	}

	p.printBox("STREAM DETECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGapAnalysis outputs the pathway scores and top skill gaps.
func (p *Printer) PrintGapAnalysis(analysis *types.GapAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Track:      %s\n", analysis.Track))
	sb.WriteString(fmt.Sprintf("Score:      %d/100\n", analysis.OverallMatchScore))
	sb.WriteString(fmt.Sprintf("Level:      %s\n", analysis.SkillAssessment.ExperienceLevel))
	sb.WriteString(fmt.Sprintf("Timeline:   %s\n", analysis.Timeline))

	if len(analysis.PathwayAnalysis) > 0 {
		sb.WriteString("\nPathways:\n")
		count := min(len(analysis.PathwayAnalysis), 3)
		for i := 0; i < count; i++ {
			pathway := analysis.PathwayAnalysis[i]
			sb.WriteString(fmt.Sprintf("  %3d%%  %-12s %s\n", pathway.MatchPercentage, pathway.Readiness, pathway.Title))
		}
		if len(analysis.PathwayAnalysis) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.PathwayAnalysis)-3))
		}
	}

	if len(analysis.IdentifiedGaps) > 0 {
		sb.WriteString("\nGaps:\n")
		writeList(&sb, analysis.IdentifiedGaps, maxItemsToShow)
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
