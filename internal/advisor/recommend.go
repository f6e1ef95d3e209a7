package advisor

import (
	"context"
	"fmt"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

const NoEligibleCoursesMessage = "You have already taken every course in the catalog. No new recommendations are available."

type Recommendation struct {
	CourseID            string   `json:"courseId"`
	CourseName          string   `json:"courseName"`
	CourseCode          string   `json:"courseCode"`
	Department          string   `json:"department"`
	Difficulty          int      `json:"difficulty"`
	RecommendationScore float64  `json:"recommendationScore"`
	PredictedGrade      float64  `json:"predictedGrade"`
	Reasoning           []string `json:"reasoning"`
	ModelType           string   `json:"modelType"`

	result scoring.ScoreResult
}

type Recommendations struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message,omitempty"`
}

type servedCourse struct {
	CourseID string `json:"courseId"`
	scoring.ScoreResult
}

// Recommend scores every course the student has no grade for and returns the
// best s.topN, highest score first. Ties keep catalog order.
func (s *Service) Recommend(ctx context.Context, userID string) (Recommendations, error) {
	st, err := s.Student(ctx, userID)
	if err != nil {
		return Recommendations{}, err
	}
	return s.recommend(ctx, st)
}

// RecommendFor is Recommend keyed by student id, for offline tooling.
func (s *Service) RecommendFor(ctx context.Context, studentID string) (Recommendations, error) {
	st, err := s.studentByID(ctx, studentID)
	if err != nil {
		return Recommendations{}, err
	}
	return s.recommend(ctx, st)
}

func (s *Service) recommend(ctx context.Context, st academic.Student) (Recommendations, error) {
	taken, err := s.store.TakenCourseIDs(ctx, st.ID)
	if err != nil {
		return Recommendations{}, fmt.Errorf("taken courses: %w", err)
	}
	catalog, err := s.store.ListCourses(ctx, academic.CourseListOpts{})
	if err != nil {
		return Recommendations{}, fmt.Errorf("list courses: %w", err)
	}
	recent, err := s.store.RecentGrades(ctx, st.ID, scoring.RecentGradeWindow)
	if err != nil {
		return Recommendations{}, fmt.Errorf("recent grades: %w", err)
	}

	candidates := make([]Recommendation, 0, len(catalog))
	for _, c := range catalog {
		if _, done := taken[c.ID]; done {
			continue
		}
		ev := scoring.Evaluate(scoring.Extract(st, c, recent))
		candidates = append(candidates, Recommendation{
			CourseID:            c.ID,
			CourseName:          c.Name,
			CourseCode:          c.Code,
			Department:          c.Department,
			Difficulty:          c.Difficulty,
			RecommendationScore: ev.Recommendation.Ensemble,
			PredictedGrade:      ev.Grade.GradePoint,
			Reasoning:           scoring.Reasoning(ev.Features, ev.Recommendation, c.AccessibilityFeatures),
			ModelType:           scoring.ModelType,
			result:              ev.Result(),
		})
	}

	out := Recommendations{Recommendations: []Recommendation{}}
	if len(candidates) == 0 {
		out.Message = NoEligibleCoursesMessage
	} else {
		out.Recommendations = scoring.Rank(candidates, s.topN, func(r Recommendation) float64 { return r.RecommendationScore })
	}

	served := make([]servedCourse, 0, len(out.Recommendations))
	for _, r := range out.Recommendations {
		served = append(served, servedCourse{CourseID: r.CourseID, ScoreResult: r.result})
	}
	s.record(ctx, syncx.TypeRecommendationsServed, st.ID, map[string]any{
		"studentId":  st.ID,
		"candidates": len(candidates),
		"served":     served,
	})
	s.metrics.ObserveRecommendations(len(out.Recommendations))
	logging.Ctx(ctx).Debug().Str("student_id", st.ID).Int("candidates", len(candidates)).
		Int("returned", len(out.Recommendations)).Msg("recommendations computed")
	return out, nil
}
