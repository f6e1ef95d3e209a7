package advisor

import (
	"context"
	"fmt"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
	syncx "github.com/mind-engage/mindengage-advisor/internal/sync"
)

type Prediction struct {
	CourseID             string          `json:"courseId"`
	PredictedGrade       float64         `json:"predictedGrade"`
	PredictedLetterGrade string          `json:"predictedLetterGrade"`
	AtRisk               bool            `json:"atRisk"`
	RiskProbability      float64         `json:"riskProbability"`
	Confidence           float64         `json:"confidence"`
	Factors              scoring.Factors `json:"factors"`
	Recommendations      []string        `json:"recommendations"`
}

// Predict estimates the student's grade and at-risk status for courseID.
func (s *Service) Predict(ctx context.Context, userID, courseID string) (Prediction, error) {
	st, err := s.Student(ctx, userID)
	if err != nil {
		return Prediction{}, err
	}
	return s.predict(ctx, st, courseID)
}

// PredictFor is Predict keyed by student id, for offline tooling.
func (s *Service) PredictFor(ctx context.Context, studentID, courseID string) (Prediction, error) {
	st, err := s.studentByID(ctx, studentID)
	if err != nil {
		return Prediction{}, err
	}
	return s.predict(ctx, st, courseID)
}

func (s *Service) predict(ctx context.Context, st academic.Student, courseID string) (Prediction, error) {
	c, err := s.course(ctx, courseID)
	if err != nil {
		return Prediction{}, err
	}
	recent, err := s.store.RecentGrades(ctx, st.ID, scoring.RecentGradeWindow)
	if err != nil {
		return Prediction{}, fmt.Errorf("recent grades: %w", err)
	}

	ev := scoring.Evaluate(scoring.Extract(st, c, recent))
	p := Prediction{
		CourseID:             c.ID,
		PredictedGrade:       ev.Grade.GradePoint,
		PredictedLetterGrade: scoring.LetterGrade(ev.Grade.GradePoint),
		AtRisk:               ev.Risk.AtRisk,
		RiskProbability:      ev.Risk.Probability,
		Confidence:           ev.Grade.Confidence,
		Factors:              scoring.Analyze(ev.Features, ev.Risk),
		Recommendations:      scoring.Advice(ev.Features, ev.Risk, ev.Grade),
	}

	s.record(ctx, syncx.TypePredictionComputed, st.ID, map[string]any{
		"studentId": st.ID,
		"courseId":  c.ID,
		"features":  ev.Features,
		"result":    ev.Result(),
	})
	s.metrics.ObservePrediction(p.AtRisk, p.RiskProbability)
	return p, nil
}
