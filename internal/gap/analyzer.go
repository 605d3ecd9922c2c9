// Package gap implements the importance-weighted gap analysis over career
// tracks: per-pathway match percentages, prioritized skill gaps with coarse
// learning estimates, and a profile-level skill assessment.
package gap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// Experience levels in ascending order.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// Analyzer evaluates profiles against the catalog's career tracks. It is
// stateless beyond the immutable catalog and safe for concurrent use.
type Analyzer struct {
	catalog *catalog.Catalog
}

// NewAnalyzer builds a gap analyzer over the given catalog.
func NewAnalyzer(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: cat}
}

// Analyze produces a GapAnalysis for the profile against the career track
// of the given stream id. Unknown ids fall back to the default track. The
// call never fails: an empty profile yields a zero score and the track's
// leading keywords as gaps.
func (a *Analyzer) Analyze(profile *types.UserProfile, streamID string) *types.GapAnalysis {
	track := a.catalog.TrackFor(streamID)

	matched := matchedSkills(profile.Skills, track)
	pathways := a.analyzePathways(profile, track)
	assessment := a.assess(profile, track)
	overall := overallScore(matched, pathways)
	gaps := identifyGaps(profile.Skills, track)

	return &types.GapAnalysis{
		Track:             track.Name,
		OverallMatchScore: overall,
		IdentifiedGaps:    gaps,
		PathwayAnalysis:   pathways,
		SkillAssessment:   assessment,
		Recommendations:   recommendations(gaps, assessment),
		Timeline:          overallTimeline(overall),
	}
}

// hasTerm reports whether any user term covers the reference term by
// case-insensitive substring containment in either direction.
func hasTerm(userTerms []string, term string) bool {
	needle := strings.ToUpper(term)
	for _, u := range userTerms {
		upper := strings.ToUpper(u)
		if strings.Contains(upper, needle) || strings.Contains(needle, upper) {
			return true
		}
	}
	return false
}

// matchedSkills returns every track skill the profile covers, with its
// importance weight.
func matchedSkills(userSkills []string, track *catalog.CareerTrack) []catalog.WeightedSkill {
	var matched []catalog.WeightedSkill
	for _, group := range track.SkillGroups {
		for _, skill := range group.Skills {
			if hasTerm(userSkills, skill.Name) {
				matched = append(matched, skill)
			}
		}
	}
	return matched
}

func (a *Analyzer) analyzePathways(profile *types.UserProfile, track *catalog.CareerTrack) []types.PathwayAnalysis {
	out := make([]types.PathwayAnalysis, 0, len(track.Paths))
	for _, path := range track.Paths {
		var existing, missing []string
		for _, skill := range path.RequiredSkills {
			if hasTerm(profile.Skills, skill) {
				existing = append(existing, skill)
			} else {
				missing = append(missing, skill)
			}
		}

		matchPct := 0
		if len(path.RequiredSkills) > 0 {
			matchPct = int(math.Round(float64(len(existing)) / float64(len(path.RequiredSkills)) * 100))
		}

		skillGaps := buildSkillGaps(profile, path, missing)

		out = append(out, types.PathwayAnalysis{
			Title:           path.Title,
			MatchPercentage: matchPct,
			ExistingSkills:  existing,
			MissingSkills:   missing,
			SkillGaps:       skillGaps,
			Readiness:       readiness(matchPct),
			Timeline:        pathwayTimeline(matchPct, skillGaps),
			SalaryPotential: path.Salary,
			GrowthRate:      path.GrowthRate,
			Companies:       path.Companies,
		})
	}

	// Stable sort keeps catalog order among equally matched pathways.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}

// buildSkillGaps turns a pathway's uncovered skills into prioritized gaps:
// missing core requirements rank High, uncovered secondary requirements
// rank Medium.
func buildSkillGaps(profile *types.UserProfile, path catalog.CareerPath, missing []string) []types.SkillGap {
	var gaps []types.SkillGap
	covered := make(map[string]bool, len(missing))

	for _, skill := range missing {
		covered[strings.ToUpper(skill)] = true
		gaps = append(gaps, types.SkillGap{
			Skill:                 skill,
			Priority:              types.PriorityHigh,
			EstimatedLearningTime: estimateLearningTime(skill),
			Resources:             learningResources(skill),
		})
	}

	for _, skill := range path.GapRequirements {
		if covered[strings.ToUpper(skill)] || hasTerm(profile.Skills, skill) {
			continue
		}
		gaps = append(gaps, types.SkillGap{
			Skill:                 skill,
			Priority:              types.PriorityMedium,
			EstimatedLearningTime: estimateLearningTime(skill),
			Resources:             learningResources(skill),
		})
	}
	return gaps
}

func (a *Analyzer) assess(profile *types.UserProfile, track *catalog.CareerTrack) types.SkillAssessment {
	var technical []types.SkillScore
	for _, group := range track.SkillGroups {
		for _, skill := range group.Skills {
			level := 0
			if hasTerm(profile.Skills, skill.Name) {
				level = skill.Importance * 10
			}
			technical = append(technical, types.SkillScore{
				Name:       skill.Name,
				Level:      level,
				Importance: skill.Importance,
			})
		}
	}

	softSkills := assessSoftSkills(profile)
	level := experienceLevel(profile)

	return types.SkillAssessment{
		TechnicalSkills: technical,
		SoftSkills:      softSkills,
		ExperienceLevel: level,
		MarketReadiness: marketReadiness(technical, level),
	}
}

// softSkillTerms maps reported soft-skill names to the normalized term
// searched for in experience and education lines.
var softSkillTerms = []struct {
	name string
	term string
}{
	{"communication", "COMMUNICATION"},
	{"leadership", "LEADERSHIP"},
	{"teamwork", "TEAMWORK"},
	{"problem-solving", "PROBLEM SOLVING"},
	{"research", "RESEARCH"},
	{"analysis", "ANALYSIS"},
}

func assessSoftSkills(profile *types.UserProfile) []types.SkillScore {
	haystack := make([]string, 0, len(profile.Experience)+len(profile.Education))
	haystack = append(haystack, profile.Experience...)
	haystack = append(haystack, profile.Education...)

	out := make([]types.SkillScore, 0, len(softSkillTerms))
	for _, s := range softSkillTerms {
		level := 30
		for _, line := range haystack {
			if strings.Contains(strings.ToUpper(line), s.term) {
				level = 70
				break
			}
		}
		out = append(out, types.SkillScore{Name: s.name, Level: level, Importance: 8})
	}
	return out
}

// experienceLevel classifies the profile by simple count thresholds, in
// strict descending order so exactly one rule fires.
func experienceLevel(profile *types.UserProfile) string {
	experience := len(profile.Experience)
	education := len(profile.Education)
	publications := publicationCount(profile)

	switch {
	case experience >= 3 || publications >= 5:
		return LevelExpert
	case experience >= 2 || publications >= 2:
		return LevelAdvanced
	case experience >= 1 || education >= 2:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// publicationCount counts experience lines that mention publications. The
// extractor has no dedicated publications bucket, so this is the closest
// available signal.
func publicationCount(profile *types.UserProfile) int {
	n := 0
	for _, line := range profile.Experience {
		upper := strings.ToUpper(line)
		if strings.Contains(upper, "PUBLICATION") || strings.Contains(upper, "PUBLISHED") {
			n++
		}
	}
	return n
}

func marketReadiness(technical []types.SkillScore, level string) string {
	if len(technical) == 0 {
		return "Low"
	}
	sum := 0
	for _, s := range technical {
		sum += s.Level
	}
	avg := float64(sum) / float64(len(technical))

	switch {
	case level == LevelExpert && avg >= 70:
		return "High"
	case level == LevelAdvanced && avg >= 50:
		return "Medium"
	default:
		return "Low"
	}
}

// overallScore blends the average importance of matched skills (scaled to
// 0-100) with the best pathway's match percentage, 60/40. No skill matches
// at all pins the score to 0.
func overallScore(matched []catalog.WeightedSkill, pathways []types.PathwayAnalysis) int {
	if len(matched) == 0 {
		return 0
	}
	sum := 0
	for _, s := range matched {
		sum += s.Importance * 10
	}
	skillScore := float64(sum) / float64(len(matched))

	pathwayScore := 0.0
	if len(pathways) > 0 {
		pathwayScore = float64(pathways[0].MatchPercentage)
	}
	return int(math.Round(skillScore*0.6 + pathwayScore*0.4))
}

// identifyGaps returns the first ten track keywords the profile does not
// cover.
func identifyGaps(userSkills []string, track *catalog.CareerTrack) []string {
	var gaps []string
	for _, keyword := range track.ATSKeywords {
		if !userCoversKeyword(userSkills, keyword) {
			gaps = append(gaps, keyword)
			if len(gaps) == 10 {
				break
			}
		}
	}
	return gaps
}

// userCoversKeyword checks containment one way only: a user term counts
// when it contains or equals the keyword, but a keyword containing a user
// term is still a gap.
func userCoversKeyword(userSkills []string, keyword string) bool {
	needle := strings.ToUpper(keyword)
	for _, u := range userSkills {
		upper := strings.ToUpper(u)
		if strings.Contains(upper, needle) || upper == needle {
			return true
		}
	}
	return false
}

func recommendations(gaps []string, assessment types.SkillAssessment) []string {
	var out []string
	if len(gaps) > 5 {
		out = append(out, "Focus on developing core technical skills through online courses and certifications")
	}
	if assessment.ExperienceLevel == LevelBeginner {
		out = append(out, "Gain practical experience through internships or research projects")
	}
	if assessment.MarketReadiness == "Low" {
		out = append(out, "Build a strong portfolio of projects and research work")
	}
	if len(gaps) > 0 {
		top := gaps
		if len(top) > 3 {
			top = top[:3]
		}
		out = append(out, fmt.Sprintf("Priority learning areas: %s", strings.Join(top, ", ")))
	}
	return out
}

func overallTimeline(score int) string {
	switch {
	case score >= 80:
		return "3-6 months"
	case score >= 60:
		return "6-9 months"
	case score >= 40:
		return "9-12 months"
	default:
		return "12+ months"
	}
}

// readiness classifies a pathway match percentage into a coarse band.
func readiness(matchPct int) string {
	switch {
	case matchPct >= 70:
		return "High"
	case matchPct >= 40:
		return "Medium"
	default:
		return "Low"
	}
}

func pathwayTimeline(matchPct int, gaps []types.SkillGap) string {
	highPriority := 0
	for _, g := range gaps {
		if g.Priority == types.PriorityHigh {
			highPriority++
		}
	}
	switch {
	case matchPct >= 80:
		return "Immediate"
	case matchPct >= 60:
		return "3-6 months"
	case highPriority > 3:
		return "9-12 months"
	default:
		return "6-9 months"
	}
}

func estimateLearningTime(skill string) string {
	lower := strings.ToLower(skill)
	switch {
	case strings.Contains(lower, "machine learning") || strings.Contains(lower, "deep learning"):
		return "3-6 months"
	case strings.Contains(lower, "programming") || strings.Contains(lower, "python"):
		return "2-4 months"
	case strings.Contains(lower, "statistics") || strings.Contains(lower, "mathematics"):
		return "4-6 months"
	default:
		return "1-3 months"
	}
}

func learningResources(skill string) []string {
	lower := strings.ToLower(skill)
	var out []string
	if strings.Contains(lower, "python") || strings.Contains(lower, "programming") {
		out = append(out, "Coursera: Python for Data Science", "edX: Introduction to Computer Science")
	}
	if strings.Contains(lower, "machine learning") || strings.Contains(lower, "ml") {
		out = append(out, "Coursera: Machine Learning by Andrew Ng", "Fast.ai: Practical Deep Learning")
	}
	if strings.Contains(lower, "biology") || strings.Contains(lower, "chemistry") {
		out = append(out, "Khan Academy: Biology/Chemistry", "Coursera: Bioinformatics")
	}
	if len(out) == 0 {
		return []string{"Online courses", "Textbooks", "Workshops"}
	}
	return out
}
