package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/export"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/schemas"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/types"
	embedded "github.com/OmBelgali/placement-readiness-platform-4/schemas"
)

// AnalyzeResponse is the saved entry plus an optional short-JD warning
type AnalyzeResponse struct {
	*types.Entry
	Warning string `json:"warning,omitempty"`
}

// ConfidenceMapRequest replaces the confidence map of an entry
type ConfidenceMapRequest struct {
	SkillConfidenceMap types.SkillConfidenceMap `json:"skillConfidenceMap"`
}

// decode reads a JSON body into v
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// decodeValidated checks the body against an embedded JSON schema before decoding it into v
func (s *Server) decodeValidated(w http.ResponseWriter, r *http.Request, schema string, v any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}

	if err := schemas.ValidateBytes(schema, body); err != nil {
		var loadErr *schemas.SchemaLoadError
		if errors.As(err, &loadErr) {
			s.failure(w, err)
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}

	if err := json.Unmarshal(body, v); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze analyzes a job description and saves it to history
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if !s.decodeValidated(w, r, embedded.AnalyzeRequestSchema, &req) {
		return
	}

	entry, warning, err := s.history.Analyze(r.Context(), req)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, AnalyzeResponse{Entry: entry, Warning: warning})
}

// handleListHistory returns every readable entry and the corrupted count
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	h, err := s.history.List(r.Context())
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, h)
}

// handleClearHistory removes all entries
func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := s.history.Clear(r.Context()); err != nil {
		s.failure(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	entry, err := s.history.Latest(r.Context())
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	entry, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleUpdateConfidence sets the confidence of one skill
func (s *Server) handleUpdateConfidence(w http.ResponseWriter, r *http.Request) {
	var req types.ConfidenceUpdateRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, err)
		return
	}

	entry, err := s.history.UpdateConfidence(r.Context(), r.PathValue("id"), req.Skill, req.Confidence)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleSetConfidenceMap replaces the whole confidence map
func (s *Server) handleSetConfidenceMap(w http.ResponseWriter, r *http.Request) {
	var req ConfidenceMapRequest
	if !s.decode(w, r, &req) {
		return
	}

	entry, err := s.history.SetConfidenceMap(r.Context(), r.PathValue("id"), req.SkillConfidenceMap)
	if err != nil {
		s.failure(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, entry)
}

// handleExport returns part of an entry as plain text
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	kind, err := export.ParseKind(r.PathValue("kind"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := s.history.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failure(w, err)
		return
	}

	text, err := export.Text(entry, kind)
	if err != nil {
		s.failure(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}
