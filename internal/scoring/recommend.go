package scoring

import "math"

const (
	simWeightGPA        = 0.35
	simWeightDifficulty = 0.25
	simWeightPrior      = 0.30
	simWeightCredits    = 0.10
	simMismatchWeight   = 0.1
	accessibilityFactor = 0.9 // disability with a difficulty >= 4 course

	// ModelType labels every recommendation produced by Recommend.
	ModelType = "Ensemble (KNN + Decision Tree)"
)

// RecommendationScores keeps both sub-scores so callers can explain them.
type RecommendationScores struct {
	Similarity float64 `json:"similarity"`
	Tree       float64 `json:"tree"`
	Ensemble   float64 `json:"ensemble"`
}

// SimilarityScore blends normalized GPA, inverted difficulty, prior grades and
// closeness to a 3 credit load, minus a GPA/difficulty mismatch penalty.
func SimilarityScore(f FeatureRecord) float64 {
	d := float64(f.CourseDifficulty)
	creditGap := math.Min(math.Abs(float64(f.Credits)-3), 3)

	s := simWeightGPA*(f.GPA/4) +
		simWeightDifficulty*((5-d)/4) +
		simWeightPrior*(f.AvgPriorGrade/4) +
		simWeightCredits*(1-creditGap/3)
	s -= math.Abs(f.GPA-(5-d)) / 4 * simMismatchWeight

	if f.HasDisability && f.CourseDifficulty >= 4 {
		s *= accessibilityFactor
	}
	return clampUnit(s)
}

// TreeScore walks a fixed threshold tree over GPA, difficulty and prior grade.
func TreeScore(f FeatureRecord) float64 {
	d := f.CourseDifficulty
	switch {
	case f.GPA >= 3.5:
		switch {
		case d <= 3:
			return 0.95
		case f.AvgPriorGrade >= 3.3:
			return 0.85
		default:
			return 0.70
		}
	case f.GPA >= 2.8:
		switch {
		case d <= 2:
			return 0.85
		case d <= 3 && f.AvgPriorGrade >= 2.8:
			return 0.75
		case d <= 3:
			return 0.65
		default:
			return 0.50
		}
	default:
		switch {
		case d <= 2:
			return 0.70
		case f.AvgPriorGrade >= 2.5:
			return 0.55
		default:
			return 0.40
		}
	}
}

// Recommend is the unweighted mean of SimilarityScore and TreeScore.
func Recommend(f FeatureRecord) RecommendationScores {
	sim := SimilarityScore(f)
	tree := TreeScore(f)
	return RecommendationScores{
		Similarity: sim,
		Tree:       tree,
		Ensemble:   clampUnit((sim + tree) / 2),
	}
}
