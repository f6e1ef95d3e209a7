package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredictGrade_Average(t *testing.T) {
	f := FeatureRecord{GPA: 3.0, CourseDifficulty: 3, AttendanceRate: 95, Credits: 3, AvgPriorGrade: 3.0}

	est := GradeEstimates(f)
	assert.InDeltaSlice(t, []float64{3.0, 3.1, 3.0, 3.0, 3.2}, est[:], 1e-9)

	p := PredictGrade(f)
	assert.InDelta(t, 3.06, p.GradePoint, 1e-9)
	assert.InDelta(t, 0.92, p.Confidence, 1e-9)
}

func TestPredictGrade_Clamped(t *testing.T) {
	high := FeatureRecord{GPA: 4, CourseDifficulty: 1, AttendanceRate: 100, Credits: 1, AvgPriorGrade: 4}
	assert.Equal(t, 4.0, PredictGrade(high).GradePoint)

	low := FeatureRecord{GPA: 1, CourseDifficulty: 5, AttendanceRate: 50, HasDisability: true, Credits: 6, AvgPriorGrade: 0}
	assert.Equal(t, 0.0, PredictGrade(low).GradePoint)
}

func TestPredictGrade_ConfidenceBounds(t *testing.T) {
	// Attendance far from 90 spreads the estimates: confidence floors at 0.5.
	spread := FeatureRecord{GPA: 1.5, CourseDifficulty: 5, AttendanceRate: 0, HasDisability: true, Credits: 6, AvgPriorGrade: 3}
	assert.Equal(t, 0.5, PredictGrade(spread).Confidence)

	// Identical estimates cap at 0.95.
	flat := FeatureRecord{GPA: 2.5, CourseDifficulty: 3, AttendanceRate: 90, Credits: 3, AvgPriorGrade: 2.5}
	assert.Equal(t, 0.95, PredictGrade(flat).Confidence)
}

func TestPredictGrade_MissingHistoryUsesDefaultPrior(t *testing.T) {
	f := Extract(studentWithoutGPA(), courseOf(3, 3), nil)
	p := PredictGrade(f)
	assert.GreaterOrEqual(t, p.GradePoint, 0.0)
	assert.LessOrEqual(t, p.GradePoint, 4.0)
	assert.Equal(t, DefaultPriorGrade, f.AvgPriorGrade)
}
