package scoring

// ScoreResult is the per student/course outcome recorded after each request.
type ScoreResult struct {
	Score          float64 `json:"score"`
	PredictedGrade float64 `json:"predictedGrade"`
	Confidence     float64 `json:"confidence"`
	AtRisk         bool    `json:"atRisk"`
}

// Evaluation bundles every estimator output for one FeatureRecord.
type Evaluation struct {
	Features       FeatureRecord        `json:"features"`
	Recommendation RecommendationScores `json:"recommendation"`
	Risk           RiskEstimate         `json:"risk"`
	Grade          GradePrediction      `json:"grade"`
}

func Evaluate(f FeatureRecord) Evaluation {
	return Evaluation{
		Features:       f,
		Recommendation: Recommend(f),
		Risk:           PredictRisk(f),
		Grade:          PredictGrade(f),
	}
}

func (e Evaluation) Result() ScoreResult {
	return ScoreResult{
		Score:          e.Recommendation.Ensemble,
		PredictedGrade: e.Grade.GradePoint,
		Confidence:     e.Grade.Confidence,
		AtRisk:         e.Risk.AtRisk,
	}
}
