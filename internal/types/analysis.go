package types

import "github.com/jonathan/career-compass/internal/catalog"

// CategoryScores holds per-category completion percentages, each in [0,100].
type CategoryScores struct {
	Skills         int `json:"skills"`
	Tools          int `json:"tools"`
	Education      int `json:"education"`
	Certifications int `json:"certifications"`
}

// MatchDetails carries the per-category match lists behind a MatchResult's
// overall score.
type MatchDetails struct {
	SkillsMatched         []string       `json:"skills_matched"`
	ToolsMatched          []string       `json:"tools_matched"`
	EducationMatched      []string       `json:"education_matched"`
	CertificationsMatched []string       `json:"certifications_matched"`
	CategoryScores        CategoryScores `json:"category_scores"`
}

// MatchResult is the scored outcome of evaluating one profile against one
// stream.
type MatchResult struct {
	StreamID        string         `json:"stream_id"`
	StreamTitle     string         `json:"stream_title"`
	Score           int            `json:"score"`
	SkillsFound     []string       `json:"skills_found"`
	Gaps            []string       `json:"gaps"`
	Recommendations []catalog.Role `json:"recommendations"`
	MatchDetails    MatchDetails   `json:"match_details"`
}

// StreamScore is one entry in a ranked multi-stream comparison.
type StreamScore struct {
	Stream string `json:"stream"`
	Title  string `json:"title"`
	Score  int    `json:"score"`
}

// StreamAnalysis is the outcome of evaluating a profile against every
// registered stream.
type StreamAnalysis struct {
	DetectedStream  string        `json:"detected_stream"`
	Confidence      float64       `json:"confidence"`
	AllStreamScores []StreamScore `json:"all_stream_scores"`
	BestMatch       *MatchResult  `json:"best_match"`
}
