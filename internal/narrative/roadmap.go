// Package narrative generates career roadmaps from gap analyses. Generation
// prefers the language model; a deterministic generator built from the
// analysis itself serves as the fallback so callers always receive a
// roadmap.
package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
)

// Generator produces roadmaps. A nil client skips the model and always uses
// the fallback generator.
type Generator struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewGenerator builds a Generator. client may be nil when no API key is
// configured.
func NewGenerator(client llm.Client) *Generator {
	return &Generator{
		client: client,
		tier:   llm.TierStandard,
	}
}

// Roadmap generates a roadmap for the analysis. Model output is schema
// validated; any model failure falls back to the deterministic generator,
// so the only returned errors are context cancellations.
func (g *Generator) Roadmap(ctx context.Context, analysis *types.GapAnalysis) (*types.Roadmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if g.client != nil {
		roadmap, err := g.fromModel(ctx, analysis)
		if err == nil {
			return roadmap, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Printf("roadmap generation fell back to deterministic output: %v", err)
	}

	return Fallback(analysis), nil
}

func (g *Generator) fromModel(ctx context.Context, analysis *types.GapAnalysis) (*types.Roadmap, error) {
	prompt, err := buildPrompt(analysis)
	if err != nil {
		return nil, err
	}

	raw, err := g.client.GenerateJSON(ctx, prompt, g.tier)
	if err != nil {
		return nil, fmt.Errorf("model call failed: %w", err)
	}

	if err := schemas.ValidateRoadmap(raw); err != nil {
		return nil, fmt.Errorf("model output rejected: %w", err)
	}

	var roadmap types.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		return nil, fmt.Errorf("model output unmarshal: %w", err)
	}
	roadmap.Source = types.RoadmapSourceModel
	return &roadmap, nil
}

func buildPrompt(analysis *types.GapAnalysis) (string, error) {
	payload, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal analysis: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are a career advisor for science and engineering students. ")
	sb.WriteString("Based on the following skill-gap analysis, produce a career roadmap ")
	sb.WriteString("as JSON with fields: stream (string), summary (string), phases ")
	sb.WriteString("(array of {title, duration, focus: [string], milestones: [string]}), ")
	sb.WriteString("certifications ([string]), resources ([string]).\n")
	sb.WriteString("Order phases from immediate next steps to long-term goals. ")
	sb.WriteString("Prioritize the High priority skill gaps. Respond with JSON only.\n\n")
	sb.WriteString("Gap analysis:\n")
	sb.Write(payload)
	return sb.String(), nil
}

// Fallback builds a roadmap directly from the analysis: one phase per
// timeline band, focused on the highest priority gaps of the best matched
// pathways.
func Fallback(analysis *types.GapAnalysis) *types.Roadmap {
	gapsByPriority := collectGaps(analysis)

	phases := []types.RoadmapPhase{
		{
			Title:      "Close critical gaps",
			Duration:   "0-3 months",
			Focus:      firstN(gapsByPriority[types.PriorityHigh], 4, analysis.IdentifiedGaps),
			Milestones: []string{"Complete one guided course per focus area", "Build a small project applying each new skill"},
		},
		{
			Title:      "Broaden the foundation",
			Duration:   "3-6 months",
			Focus:      firstN(gapsByPriority[types.PriorityMedium], 4, analysis.IdentifiedGaps),
			Milestones: []string{"Contribute to a research or open-source project", "Document work in a public portfolio"},
		},
		{
			Title:      "Target the role",
			Duration:   analysis.Timeline,
			Focus:      pathwayFocus(analysis),
			Milestones: []string{"Apply to positions at matched companies", "Complete one recognized certification"},
		},
	}

	var resources []string
	seen := map[string]bool{}
	for _, pathway := range analysis.PathwayAnalysis {
		for _, g := range pathway.SkillGaps {
			for _, r := range g.Resources {
				if !seen[r] {
					seen[r] = true
					resources = append(resources, r)
				}
			}
		}
	}
	if len(resources) > 6 {
		resources = resources[:6]
	}

	return &types.Roadmap{
		Stream:    analysis.Track,
		Summary:   summarize(analysis),
		Phases:    phases,
		Resources: resources,
		Source:    types.RoadmapSourceFallback,
	}
}

func collectGaps(analysis *types.GapAnalysis) map[string][]string {
	out := map[string][]string{}
	seen := map[string]bool{}
	for _, pathway := range analysis.PathwayAnalysis {
		for _, g := range pathway.SkillGaps {
			key := strings.ToUpper(g.Skill)
			if seen[key] {
				continue
			}
			seen[key] = true
			out[g.Priority] = append(out[g.Priority], g.Skill)
		}
	}
	return out
}

// firstN takes up to n entries, topping up from the alternate list when the
// primary runs short. The focus list must never be empty for a phase to
// remain schema valid.
func firstN(primary []string, n int, alternate []string) []string {
	out := make([]string, 0, n)
	seen := map[string]bool{}
	for _, s := range primary {
		if len(out) == n {
			return out
		}
		key := strings.ToUpper(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	for _, s := range alternate {
		if len(out) == n {
			return out
		}
		key := strings.ToUpper(s)
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		out = append(out, "Core domain fundamentals")
	}
	return out
}

func pathwayFocus(analysis *types.GapAnalysis) []string {
	if len(analysis.PathwayAnalysis) == 0 {
		return []string{"Role-specific interview preparation"}
	}
	best := analysis.PathwayAnalysis[0]
	focus := make([]string, 0, len(best.MissingSkills)+1)
	focus = append(focus, fmt.Sprintf("Position for %s roles", best.Title))
	focus = append(focus, best.MissingSkills...)
	return focus
}

func summarize(analysis *types.GapAnalysis) string {
	if len(analysis.PathwayAnalysis) == 0 {
		return fmt.Sprintf("Current readiness for the %s track is %d%%.", analysis.Track, analysis.OverallMatchScore)
	}
	best := analysis.PathwayAnalysis[0]
	return fmt.Sprintf(
		"Current readiness for the %s track is %d%%. The closest pathway is %s at %d%% match; estimated preparation time is %s.",
		analysis.Track, analysis.OverallMatchScore, best.Title, best.MatchPercentage, analysis.Timeline)
}
