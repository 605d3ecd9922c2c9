package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/parsing"
	"github.com/jonathan/career-compass/internal/types"
)

// handleAnalyze scores free text against a single stream.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result := s.analyzer.AnalyzeText(req.Text, req.StreamID)
	s.jsonResponse(w, http.StatusOK, result)
}

// handleDetect compares free text against every registered stream.
func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	var req types.DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	analysis, err := s.analyzer.DetectBestStream(r.Context(), req.Text)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Detection failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleGapAnalysis runs the importance-weighted gap pipeline. When no
// stream id is supplied the best-matching stream is detected first.
func (s *Server) handleGapAnalysis(w http.ResponseWriter, r *http.Request) {
	var req types.GapAnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	analysis, err := s.gapAnalysisFor(r, req.Text, req.StreamID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Gap analysis failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, analysis)
}

// roadmap horizons map to the overall timeline handed to the narrator.
var horizonTimelines = map[string]string{
	"short":  "3-6 months",
	"medium": "6-9 months",
	"long":   "12+ months",
}

// handleRoadmap builds a gap analysis and narrates it into a career roadmap.
func (s *Server) handleRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.RoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	analysis, err := s.gapAnalysisFor(r, req.Text, req.StreamID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Gap analysis failed: "+err.Error())
		return
	}

	// An explicit horizon constrains the plan regardless of the computed
	// readiness timeline.
	if timeline, ok := horizonTimelines[req.Horizon]; ok {
		analysis.Timeline = timeline
	}

	roadmap, err := s.roadmaps.Roadmap(r.Context(), analysis)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Roadmap generation failed: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, roadmap)
}

// IngestURLResponse bundles the fetched page metadata with the analysis of
// its text content.
type IngestURLResponse struct {
	Metadata  *ingestion.Metadata   `json:"metadata"`
	Analysis  *types.MatchResult    `json:"analysis,omitempty"`
	Detection *types.StreamAnalysis `json:"detection,omitempty"`
}

// handleIngestURL fetches a page and analyzes its text content. With a
// stream id the text is scored against that stream; without one the best
// stream is detected.
func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	var req types.IngestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	text, metadata, err := ingestion.IngestFromURL(r.Context(), req.URL, s.useBrowser, false)
	if err != nil {
		switch {
		case errors.Is(err, ingestion.ErrHTTPRequestFailed):
			s.errorResponse(w, http.StatusBadGateway, err.Error())
		case errors.Is(err, ingestion.ErrContentExtractionFailed), errors.Is(err, ingestion.ErrEmptyContent):
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		default:
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	resp := IngestURLResponse{Metadata: metadata}
	if req.StreamID != "" {
		resp.Analysis = s.analyzer.AnalyzeText(text, req.StreamID)
	} else {
		detection, err := s.analyzer.DetectBestStream(r.Context(), text)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Detection failed: "+err.Error())
			return
		}
		resp.Detection = detection
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListStreams returns the distinct streams in registration order.
func (s *Server) handleListStreams(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"streams": s.catalog.Streams(),
		"ids":     s.catalog.IDs(),
	})
}

// handleGetStream returns one stream by id or alias. Unlike the analysis
// endpoints, an unknown id here is a hard 404 rather than a silent default.
func (s *Server) handleGetStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	stream, ok := s.catalog.Lookup(id)
	if !ok {
		err := &ErrStreamNotFound{StreamID: id}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stream)
}

// gapAnalysisFor extracts a profile and runs the gap analyzer, detecting the
// stream first when none is supplied.
func (s *Server) gapAnalysisFor(r *http.Request, text, streamID string) (*types.GapAnalysis, error) {
	if streamID == "" {
		detection, err := s.analyzer.DetectBestStream(r.Context(), text)
		if err != nil {
			return nil, err
		}
		streamID = detection.DetectedStream
	}
	profile := parsing.ExtractProfile(text)
	return s.gaps.Analyze(profile, streamID), nil
}
