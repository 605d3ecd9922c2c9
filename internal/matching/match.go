// Package matching implements the fuzzy term matcher and weighted scorer
// that evaluate an extracted profile against stream reference data.
package matching

import (
	"math"
	"strings"
)

// tokenOverlapThreshold is the fraction of a required term's tokens that
// must be hit by user tokens for the token-overlap tier to fire.
const tokenOverlapThreshold = 0.6

// Weights configures how per-category scores combine into the overall
// score. The four fields must sum to 1 for the overall score to stay in
// [0,100].
type Weights struct {
	Skills         float64
	Tools          float64
	Education      float64
	Certifications float64
}

// DefaultWeights favors the skills category over the other three.
var DefaultWeights = Weights{
	Skills:         0.40,
	Tools:          0.20,
	Education:      0.20,
	Certifications: 0.20,
}

// Match returns every required term matched by at least one user term,
// preserving the required list's order. A required term matches on the
// first tier that fires: case-insensitive equality, substring containment
// in either direction, or token overlap at the 60% threshold.
func Match(userTerms, requiredTerms []string) []string {
	var matches []string
	for _, required := range requiredTerms {
		normalizedRequired := strings.ToUpper(required)
		for _, user := range userTerms {
			if termMatches(strings.ToUpper(user), normalizedRequired) {
				matches = append(matches, required)
				break
			}
		}
	}
	return matches
}

// termMatches applies the three match tiers. Both arguments must already be
// upper-cased.
func termMatches(user, required string) bool {
	if user == required {
		return true
	}
	if strings.Contains(user, required) || strings.Contains(required, user) {
		return true
	}

	userTokens := strings.Fields(user)
	requiredTokens := strings.Fields(required)

	hits := 0
	for _, rt := range requiredTokens {
		for _, ut := range userTokens {
			if strings.Contains(ut, rt) || strings.Contains(rt, ut) {
				hits++
				break
			}
		}
	}
	needed := int(math.Ceil(float64(len(requiredTokens)) * tokenOverlapThreshold))
	return hits >= needed && needed > 0
}

// IsMatched reports whether an item is covered by any entry of a match
// list using the exact and substring tiers only. The gap computation uses
// this looser pairwise check rather than set subtraction, so an item can
// count as covered here even when it was not matched against the user
// terms directly.
func IsMatched(item string, matched []string) bool {
	normalizedItem := strings.ToUpper(item)
	for _, m := range matched {
		normalizedMatch := strings.ToUpper(m)
		if normalizedItem == normalizedMatch ||
			strings.Contains(normalizedItem, normalizedMatch) ||
			strings.Contains(normalizedMatch, normalizedItem) {
			return true
		}
	}
	return false
}

// CategoryScore converts a match count into a completion percentage. An
// empty reference category scores 0 rather than dividing by zero.
func CategoryScore(matches, totalRequired int) float64 {
	if totalRequired == 0 {
		return 0
	}
	return float64(matches) / float64(totalRequired) * 100
}

// Overall combines category percentages into a weighted overall score.
func (w Weights) Overall(skills, tools, education, certifications float64) float64 {
	return skills*w.Skills +
		tools*w.Tools +
		education*w.Education +
		certifications*w.Certifications
}

// IsZero reports whether no weight has been set, so constructors can
// substitute DefaultWeights.
func (w Weights) IsZero() bool {
	return w == Weights{}
}
