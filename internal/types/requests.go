package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest asks for a single-stream analysis of free text. StreamID is
// optional; an empty or unknown id resolves to the default stream.
type AnalyzeRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	StreamID string `json:"stream_id,omitempty"`
}

// DetectRequest asks for a best-stream detection across all registered
// streams.
type DetectRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

// GapAnalysisRequest asks for the importance-weighted gap analysis. When
// StreamID is empty the stream is detected from the text first.
type GapAnalysisRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	StreamID string `json:"stream_id,omitempty"`
}

// RoadmapRequest asks for a narrative career roadmap built on top of a gap
// analysis.
type RoadmapRequest struct {
	Text     string `json:"text" validate:"required,min=1"`
	StreamID string `json:"stream_id,omitempty"`
	Horizon  string `json:"horizon,omitempty" validate:"omitempty,oneof=short medium long"`
}

// IngestURLRequest asks the server to fetch a page and analyze its text
// content.
type IngestURLRequest struct {
	URL      string `json:"url" validate:"required,url"`
	StreamID string `json:"stream_id,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the DetectRequest using the validator.
func (r *DetectRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the GapAnalysisRequest using the validator.
func (r *GapAnalysisRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RoadmapRequest using the validator.
func (r *RoadmapRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IngestURLRequest using the validator.
func (r *IngestURLRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
