package matching

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

// DefaultRoleLeniency is the tolerance band subtracted from each role's
// match threshold when filtering recommendations. A role is reachable when
// the overall score is within this many points of its nominal threshold.
const DefaultRoleLeniency = 20

// Config tunes an Analyzer. The zero value selects the defaults.
type Config struct {
	Weights      Weights
	RoleLeniency int
}

// Analyzer scores profiles against the stream catalog. It holds only
// immutable reference data and is safe for concurrent use.
type Analyzer struct {
	catalog  *catalog.Catalog
	weights  Weights
	leniency int
}

// NewAnalyzer builds an Analyzer over the given catalog.
func NewAnalyzer(cat *catalog.Catalog, cfg Config) *Analyzer {
	weights := cfg.Weights
	if weights.IsZero() {
		weights = DefaultWeights
	}
	leniency := cfg.RoleLeniency
	if leniency == 0 {
		leniency = DefaultRoleLeniency
	}
	return &Analyzer{
		catalog:  cat,
		weights:  weights,
		leniency: leniency,
	}
}

// AnalyzeText extracts a profile from raw text and scores it against the
// stream identified by streamID. An empty or unknown id resolves to the
// catalog's default stream. The call never fails: empty input produces a
// zero score with the stream's reference list as gaps.
func (a *Analyzer) AnalyzeText(text, streamID string) *types.MatchResult {
	profile := parsing.ExtractProfile(text)
	return a.AnalyzeProfile(profile, a.catalog.StreamByID(streamID))
}

// AnalyzeProfile scores an already-extracted profile against one stream.
func (a *Analyzer) AnalyzeProfile(profile *types.UserProfile, stream *catalog.Stream) *types.MatchResult {
	skillMatches := Match(profile.Skills, stream.Keywords)
	toolMatches := Match(profile.Tools, stream.Tools)
	educationMatches := Match(profile.Education, stream.EducationPaths)
	certificationMatches := Match(profile.Certifications, stream.Certifications)

	skillScore := CategoryScore(len(skillMatches), len(stream.Keywords))
	toolScore := CategoryScore(len(toolMatches), len(stream.Tools))
	educationScore := CategoryScore(len(educationMatches), len(stream.EducationPaths))
	certificationScore := CategoryScore(len(certificationMatches), len(stream.Certifications))

	overall := a.weights.Overall(skillScore, toolScore, educationScore, certificationScore)

	allFound := make([]string, 0, len(skillMatches)+len(toolMatches)+len(educationMatches)+len(certificationMatches))
	allFound = append(allFound, skillMatches...)
	allFound = append(allFound, toolMatches...)
	allFound = append(allFound, educationMatches...)
	allFound = append(allFound, certificationMatches...)

	gaps := a.gaps(stream, allFound)

	// Role filtering uses the unrounded score so a fractional point cannot
	// flip a recommendation relative to the tolerance band.
	var recommendations []catalog.Role
	for _, role := range stream.Roles {
		if overall >= float64(role.MatchThreshold-a.leniency) {
			recommendations = append(recommendations, role)
		}
	}

	return &types.MatchResult{
		StreamID:        stream.ID,
		StreamTitle:     stream.Title,
		Score:           int(math.Round(overall)),
		SkillsFound:     skillMatches,
		Gaps:            gaps,
		Recommendations: recommendations,
		MatchDetails: types.MatchDetails{
			SkillsMatched:         skillMatches,
			ToolsMatched:          toolMatches,
			EducationMatched:      educationMatches,
			CertificationsMatched: certificationMatches,
			CategoryScores: types.CategoryScores{
				Skills:         int(math.Round(skillScore)),
				Tools:          int(math.Round(toolScore)),
				Education:      int(math.Round(educationScore)),
				Certifications: int(math.Round(certificationScore)),
			},
		},
	}
}

// gaps returns the first ten reference items not covered by any found
// match.
func (a *Analyzer) gaps(stream *catalog.Stream, allFound []string) []string {
	var gaps []string
	for _, item := range catalog.CombinedReference(stream) {
		if !IsMatched(item, allFound) {
			gaps = append(gaps, item)
			if len(gaps) == 10 {
				break
			}
		}
	}
	return gaps
}

// DetectBestStream evaluates the text against every registered stream id in
// parallel, ranks the results, and returns the winner's full analysis.
// Aliases of the same stream tie and the earlier registration wins.
func (a *Analyzer) DetectBestStream(ctx context.Context, text string) (*types.StreamAnalysis, error) {
	profile := parsing.ExtractProfile(text)

	ids := a.catalog.IDs()
	scores := make([]types.StreamScore, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stream := a.catalog.StreamByID(id)
			result := a.AnalyzeProfile(profile, stream)
			scores[i] = types.StreamScore{
				Stream: id,
				Title:  stream.Title,
				Score:  result.Score,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Stable sort keeps registration order among equal scores, making the
	// tie-break deterministic across runs.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	best := scores[0]
	return &types.StreamAnalysis{
		DetectedStream:  best.Stream,
		Confidence:      float64(best.Score) / 100,
		AllStreamScores: scores,
		BestMatch:       a.AnalyzeProfile(profile, a.catalog.StreamByID(best.Stream)),
	}, nil
}
