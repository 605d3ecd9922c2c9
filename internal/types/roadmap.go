package types

// RoadmapPhase is one stage of a career roadmap.
type RoadmapPhase struct {
	Title      string   `json:"title"`
	Duration   string   `json:"duration"`
	Focus      []string `json:"focus"`
	Milestones []string `json:"milestones"`
}

// Roadmap is the narrative career plan generated from a gap analysis. Source
// records whether the plan came from the language model or the deterministic
// fallback generator.
type Roadmap struct {
	Stream         string         `json:"stream"`
	Summary        string         `json:"summary"`
	Phases         []RoadmapPhase `json:"phases"`
	Certifications []string       `json:"certifications,omitempty"`
	Resources      []string       `json:"resources,omitempty"`
	Source         string         `json:"source"`
}

// Roadmap sources.
const (
	RoadmapSourceModel    = "model"
	RoadmapSourceFallback = "fallback"
)
