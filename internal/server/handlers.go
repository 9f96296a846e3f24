package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// analysisRequest is the shared request body for the analysis endpoints.
// Role and level fall back to generic handling when omitted or unknown.
type analysisRequest struct {
	Resume         *types.ResumeRecord `json:"resume" validate:"required"`
	Role           string              `json:"role"`
	Level          string              `json:"level"`
	JobDescription string              `json:"job_description"`
	Keywords       []string            `json:"keywords"`
}

// confidenceRequest asks for intervals over named score samples.
type confidenceRequest struct {
	Samples map[string]analyzer.ScoreSample `json:"samples" validate:"required,min=1"`
	Level   float64                         `json:"confidence_level"`
}

// envelope is the uniform response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: map[string]string{"status": "ok"}})
}

func (s *Server) handleComprehensiveAnalysis(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalysisRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.analyzer.ComprehensiveAnalysis(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}

func (s *Server) handleSkillsAnalysis(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalysisRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.analyzer.SkillsAnalysis(req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}

func (s *Server) handleHeatMap(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalysisRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.analyzer.HeatMap(r.Context(), req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}

func (s *Server) handleConfidenceIntervals(w http.ResponseWriter, r *http.Request) {
	var body confidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if err := s.validate.Struct(&body); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "samples", Message: "at least one sample is required"}).Error())
		return
	}

	intervals := analyzer.ConfidenceBatch(body.Samples, body.Level)
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: intervals})
}

func (s *Server) handleATSSimulation(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeAnalysisRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result := s.sim.Simulate(req.Record)
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}

func (s *Server) handleATSPlatform(w http.ResponseWriter, r *http.Request) {
	platform := r.PathValue("platform")

	req, err := s.decodeAnalysisRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.sim.SimulatePlatform(platform, req.Record)
	if err != nil {
		perr := &ErrUnknownPlatform{Platform: platform}
		s.errorResponse(w, HTTPStatus(perr), perr.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, envelope{Success: true, Data: result})
}

// decodeAnalysisRequest parses and validates the shared analysis body.
func (s *Server) decodeAnalysisRequest(r *http.Request) (analyzer.Request, error) {
	var body analysisRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return analyzer.Request{}, &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := s.validate.Struct(&body); err != nil {
		return analyzer.Request{}, &ErrValidation{Field: "resume", Message: "resume is required"}
	}

	return analyzer.Request{
		Record:         body.Resume,
		Role:           body.Role,
		Level:          body.Level,
		JobDescription: body.JobDescription,
		Keywords:       body.Keywords,
	}, nil
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

// errorResponse writes an error in the envelope format.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, envelope{Success: false, Error: message})
}
