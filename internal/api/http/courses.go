package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
)

// GET /courses?q=&department=&limit=&offset=
func ListCoursesHandler(store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit := parseIntDefault(q.Get("limit"), 50)
		if limit <= 0 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}
		offset := parseIntDefault(q.Get("offset"), 0)
		if offset < 0 {
			offset = 0
		}
		cs, err := store.ListCourses(r.Context(), academic.CourseListOpts{
			Q:          strings.TrimSpace(q.Get("q")),
			Department: strings.TrimSpace(q.Get("department")),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"courses": cs, "limit": limit, "offset": offset})
	}
}

func GetCourseHandler(store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := store.GetCourse(r.Context(), chi.URLParam(r, "courseID"))
		if errors.Is(err, academic.ErrNotFound) {
			respondError(w, http.StatusNotFound, "COURSE_NOT_FOUND", "course not found")
			return
		}
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

type courseRequest struct {
	Code                  string   `json:"course_code" validate:"required,max=20"`
	Name                  string   `json:"course_name" validate:"required,max=200"`
	Department            string   `json:"department" validate:"required,max=100"`
	Description           string   `json:"description" validate:"max=4000"`
	Credits               int      `json:"credits" validate:"gte=1,lte=6"`
	Difficulty            int      `json:"difficulty_level" validate:"gte=1,lte=5"`
	AccessibilityFeatures []string `json:"accessibility_features" validate:"max=20,dive,max=100"`
}

// POST /courses (advisor/admin)
func CreateCourseHandler(store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req courseRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		c, err := store.PutCourse(r.Context(), academic.Course{
			Code:                  strings.TrimSpace(req.Code),
			Name:                  strings.TrimSpace(req.Name),
			Department:            req.Department,
			Description:           req.Description,
			Credits:               req.Credits,
			Difficulty:            req.Difficulty,
			AccessibilityFeatures: req.AccessibilityFeatures,
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		logging.Ctx(r.Context()).Info().Str("course_id", c.ID).Str("code", c.Code).Msg("course created")
		respondJSON(w, http.StatusCreated, c)
	}
}
