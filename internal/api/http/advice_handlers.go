package http

import (
	"net/http"

	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	authmw "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
)

// GET /recommendations
func RecommendationsHandler(svc *advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.Recommend(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, out)
	}
}

// POST /predictions  { "courseId": "..." }
func PredictionHandler(svc *advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CourseID string `json:"courseId" validate:"required"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		p, err := svc.Predict(r.Context(), authmw.SubjectFromContext(r.Context()), req.CourseID)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

// GET /students/me/peers?limit=5
func PeersHandler(svc *advisor.Service, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := parseIntDefault(r.URL.Query().Get("limit"), defaultLimit)
		if n <= 0 || n > 50 {
			n = defaultLimit
		}
		peers, err := svc.Peers(r.Context(), authmw.SubjectFromContext(r.Context()), n)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"peers": peers})
	}
}
