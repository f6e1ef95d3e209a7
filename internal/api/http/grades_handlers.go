package http

import (
	"net/http"

	"github.com/mind-engage/mindengage-advisor/internal/advisor"
	authmw "github.com/mind-engage/mindengage-advisor/internal/auth/middleware"
)

func ListGradesHandler(svc *advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gs, err := svc.Grades(r.Context(), authmw.SubjectFromContext(r.Context()))
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"grades": gs})
	}
}

// POST /students/me/grades
func AddGradeHandler(svc *advisor.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CourseID       string   `json:"course_id" validate:"required"`
			Grade          string   `json:"grade" validate:"required,max=2"`
			Semester       string   `json:"semester" validate:"omitempty,oneof=Fall Spring Summer Winter"`
			Year           int      `json:"year" validate:"gte=1900,lte=2100"`
			AttendanceRate *float64 `json:"attendance_rate" validate:"omitempty,gte=0,lte=100"`
		}
		if !decodeJSON(w, r, &req) {
			return
		}
		g, err := svc.RecordGrade(r.Context(), authmw.SubjectFromContext(r.Context()), advisor.GradeInput{
			CourseID:       req.CourseID,
			Letter:         req.Grade,
			Semester:       req.Semester,
			Year:           req.Year,
			AttendanceRate: req.AttendanceRate,
		})
		if err != nil {
			respondServiceError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, g)
	}
}
