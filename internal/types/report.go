package types

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Report kinds stored for a user.
const (
	ReportKindAnalysis  = "analysis"
	ReportKindDetection = "detection"
	ReportKindGap       = "gap"
	ReportKindRoadmap   = "roadmap"
)

// Report is a saved analysis result belonging to a user.
type Report struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Kind      string          `json:"kind"`
	StreamID  string          `json:"stream_id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// SaveReportRequest stores an analysis payload under the authenticated user.
type SaveReportRequest struct {
	Kind     string          `json:"kind" validate:"required,oneof=analysis detection gap roadmap"`
	StreamID string          `json:"stream_id,omitempty"`
	Payload  json.RawMessage `json:"payload" validate:"required"`
}

// Validate validates the SaveReportRequest using the validator.
func (r *SaveReportRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
