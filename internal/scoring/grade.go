package scoring

import "math"

const (
	minConfidence = 0.5
	maxConfidence = 0.95
)

// GradePrediction is the blended grade point estimate and its agreement-based
// confidence.
type GradePrediction struct {
	GradePoint float64    `json:"predictedGrade"`
	Confidence float64    `json:"confidence"`
	Estimates  [5]float64 `json:"-"`
}

// GradeEstimates returns the five sub-estimates, each an adjustment of the
// prior grade average: difficulty, attendance, disability, credit load and
// GPA/attendance.
func GradeEstimates(f FeatureRecord) [5]float64 {
	a := f.AvgPriorGrade

	difficulty := a - 0.2*float64(f.CourseDifficulty-3)

	attendance := a + 0.02*(f.AttendanceRate-90)

	disability := a
	if f.HasDisability {
		disability -= 0.15
		if f.CourseDifficulty >= 4 {
			disability -= 0.1
		}
	}

	load := a - 0.1*float64(f.Credits-3)

	var combined float64
	switch {
	case f.GPA >= 3.0 && f.AttendanceRate >= 90:
		combined = a + 0.2
	case f.GPA < 2.0 || f.AttendanceRate < 75:
		combined = a - 0.3
	default:
		combined = a + 0.1*(f.GPA-a)
	}

	return [5]float64{difficulty, attendance, disability, load, combined}
}

// PredictGrade averages the sub-estimates. Confidence is
// max(0.5, min(0.95, 1 - stddev)) over the five estimates, a proxy for how
// closely they agree.
func PredictGrade(f FeatureRecord) GradePrediction {
	est := GradeEstimates(f)
	mean := 0.0
	for _, e := range est {
		mean += e
	}
	mean /= float64(len(est))

	variance := 0.0
	for _, e := range est {
		d := e - mean
		variance += d * d
	}
	variance /= float64(len(est))

	conf := math.Max(minConfidence, math.Min(maxConfidence, 1-math.Sqrt(variance)))
	return GradePrediction{
		GradePoint: clampGrade(mean),
		Confidence: conf,
		Estimates:  est,
	}
}
