package http

import (
	"errors"
	"net/http"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	authmw "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
)

func GetProfileHandler(svc *advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	}
}

type profileRequest struct {
	FullName      string   `json:"full_name" validate:"required,max=200"`
	Major         string   `json:"major" validate:"max=100"`
	AcademicLevel string   `json:"academic_level" validate:"omitempty,oneof=Freshman Sophomore Junior Senior Graduate freshman sophomore junior senior graduate"`
	CurrentGPA    *float64 `json:"current_gpa" validate:"omitempty,gte=0,lte=4"`
	HasDisability bool     `json:"has_disability"`
}

// PUT /students/me
func UpdateProfileHandler(svc *advisor.Service, store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		st.FullName = req.FullName
		st.Major = req.Major
		st.AcademicLevel = req.AcademicLevel
		st.CurrentGPA = req.CurrentGPA
		st.HasDisability = req.HasDisability
		st, err = store.PutStudent(r.Context(), st)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, st)
	}
}

func GetPreferencesHandler(svc *advisor.Service, store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		p, err := store.GetPreferences(r.Context(), st.ID)
		if errors.Is(err, academic.ErrNotFound) {
			p = academic.Preferences{
				StudentID: st.ID, CareerInterests: []string{}, LearningStyles: []string{},
				TimePreferences: []string{}, CourseFormats: []string{}, Interests: []string{},
			}
		} else if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

type preferencesRequest struct {
	CareerInterests []string `json:"career_interests" validate:"max=20,dive,max=100"`
	LearningStyles  []string `json:"preferred_learning_styles" validate:"max=10,dive,max=100"`
	TimePreferences []string `json:"course_time_preferences" validate:"max=10,dive,max=100"`
	CourseFormats   []string `json:"preferred_course_formats" validate:"max=10,dive,max=100"`
	Interests       []string `json:"interests" validate:"max=20,dive,max=100"`
	Goals           string   `json:"goals" validate:"max=2000"`
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// PUT /students/me/preferences
func PutPreferencesHandler(svc *advisor.Service, store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req preferencesRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		p := academic.Preferences{
			StudentID:       st.ID,
			CareerInterests: orEmpty(req.CareerInterests),
			LearningStyles:  orEmpty(req.LearningStyles),
			TimePreferences: orEmpty(req.TimePreferences),
			CourseFormats:   orEmpty(req.CourseFormats),
			Interests:       orEmpty(req.Interests),
			Goals:           req.Goals,
		}
		if err := store.PutPreferences(r.Context(), p); err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, p)
	}
}

func GetDisabilityHandler(svc *advisor.Service, store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		d, err := store.GetDisability(r.Context(), st.ID)
		if errors.Is(err, academic.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "no disability information on file")
			return
		}
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, d)
	}
}

type disabilityRequest struct {
	Type                     string `json:"disability_type" validate:"required,max=100"`
	PreferredInteractionMode string `json:"preferred_interaction_mode" validate:"max=100"`
	SupportRequirements      string `json:"support_requirements" validate:"max=2000"`
}

// PUT /students/me/disability also marks the profile as having a disability.
func PutDisabilityHandler(svc *advisor.Service, store academic.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req disabilityRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		st, err := svc.Student(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		d := academic.Disability{
			StudentID:                st.ID,
			Type:                     req.Type,
			PreferredInteractionMode: req.PreferredInteractionMode,
			SupportRequirements:      req.SupportRequirements,
		}
		if err := store.PutDisability(r.Context(), d); err != nil {
			respondServiceError(w, r, err)
			return
		}
		if !st.HasDisability {
			st.HasDisability = true
			if _, err := store.PutStudent(r.Context(), st); err != nil {
				respondServiceError(w, r, err)
				return
			}
		}
		respondJSON(w, http.StatusOK, d)
	}
}
