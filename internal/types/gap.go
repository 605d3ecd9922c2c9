package types

import "github.com/jonathan/career-compass/internal/catalog"

// Skill gap priority levels.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// SkillGap is a single missing skill for a career pathway, with a priority
// classification and coarse learning estimates.
type SkillGap struct {
	Skill                 string   `json:"skill"`
	Priority              string   `json:"priority"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
	Resources             []string `json:"resources"`
}

// PathwayAnalysis scores one career pathway for a profile.
type PathwayAnalysis struct {
	Title           string              `json:"title"`
	MatchPercentage int                 `json:"match_percentage"`
	ExistingSkills  []string            `json:"existing_skills"`
	MissingSkills   []string            `json:"missing_skills"`
	SkillGaps       []SkillGap          `json:"skill_gaps"`
	Readiness       string              `json:"readiness"`
	Timeline        string              `json:"timeline"`
	SalaryPotential catalog.SalaryRange `json:"salary_potential"`
	GrowthRate      float64             `json:"growth_rate"`
	Companies       []string            `json:"companies"`
}

// SkillScore is a single assessed skill with a 0-100 level and its 1-10
// importance weight.
type SkillScore struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Importance int    `json:"importance"`
}

// SkillAssessment summarizes a profile's technical and soft skills together
// with coarse experience and market-readiness classifications.
type SkillAssessment struct {
	TechnicalSkills []SkillScore `json:"technical_skills"`
	SoftSkills      []SkillScore `json:"soft_skills"`
	ExperienceLevel string       `json:"experience_level"`
	MarketReadiness string       `json:"market_readiness"`
}

// GapAnalysis is the richer, importance-weighted analysis produced for the
// roadmap and guidance endpoints.
type GapAnalysis struct {
	Track             string            `json:"track"`
	OverallMatchScore int               `json:"overall_match_score"`
	IdentifiedGaps    []string          `json:"identified_gaps"`
	PathwayAnalysis   []PathwayAnalysis `json:"pathway_analysis"`
	SkillAssessment   SkillAssessment   `json:"skill_assessment"`
	Recommendations   []string          `json:"recommendations"`
	Timeline          string            `json:"timeline"`
}
