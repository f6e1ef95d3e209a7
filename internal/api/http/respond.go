package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/validation"
)

// Handlers only; routes are mounted in cmd/gateway.

type apiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, code, msg string) {
	respondJSON(w, status, map[string]apiError{"error": {Code: code, Message: msg}})
}

// decodeJSON reads a bounded body into dst and runs struct validation.
// It writes the 400 response itself and reports false on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if apiErr := validation.DecodeRequest(w, r, dst); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, map[string]apiError{"error": {
			Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details,
		}})
		return false
	}
	return true
}

// respondServiceError maps advisor errors onto status codes.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, advisor.ErrProfileNotFound):
		respondError(w, http.StatusNotFound, "PROFILE_NOT_FOUND", "no student profile for this account")
	case errors.Is(err, advisor.ErrCourseNotFound):
		respondError(w, http.StatusNotFound, "COURSE_NOT_FOUND", "course not found")
	case errors.Is(err, advisor.ErrUnknownGrade):
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}

func parseIntDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
