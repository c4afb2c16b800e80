package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/OmBelgali/placement-readiness-platform-4/internal/history"
	"github.com/OmBelgali/placement-readiness-platform-4/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.Is(err, history.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, history.ErrUnknownSkill), errors.Is(err, history.ErrInvalidConfidence):
		return http.StatusUnprocessableEntity
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrQuotaExceeded):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

// failure writes err with its mapped status, hiding internal error details
func (s *Server) failure(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "error", err)
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}
