package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
)

type GradeInput struct {
	CourseID       string
	Letter         string
	Semester       string
	Year           int
	AttendanceRate *float64
}

// RecordGrade stores a completed course for the student owning userID. The
// grade point is derived from the letter.
func (s *Service) RecordGrade(ctx context.Context, userID string, in GradeInput) (academic.Grade, error) {
	st, err := s.Student(ctx, userID)
	if err != nil {
		return academic.Grade{}, err
	}
	if _, err := s.course(ctx, in.CourseID); err != nil {
		return academic.Grade{}, err
	}
	letter := strings.ToUpper(strings.TrimSpace(in.Letter))
	gp, ok := scoring.GradePoint(letter)
	if !ok {
		return academic.Grade{}, fmt.Errorf("%w: %q", ErrUnknownGrade, in.Letter)
	}
	g, err := s.store.AddGrade(ctx, academic.Grade{
		StudentID:      st.ID,
		CourseID:       in.CourseID,
		Letter:         letter,
		GradePoint:     gp,
		Semester:       in.Semester,
		Year:           in.Year,
		AttendanceRate: in.AttendanceRate,
	})
	if err != nil {
		return academic.Grade{}, fmt.Errorf("add grade: %w", err)
	}
	return g, nil
}

// Grades lists the student's grades, newest first.
func (s *Service) Grades(ctx context.Context, userID string) ([]academic.Grade, error) {
	st, err := s.Student(ctx, userID)
	if err != nil {
		return nil, err
	}
	gs, err := s.store.GradesForStudent(ctx, st.ID)
	if err != nil {
		return nil, fmt.Errorf("grades: %w", err)
	}
	return gs, nil
}
