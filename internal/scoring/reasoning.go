package scoring

import (
	"fmt"
	"math"
	"strings"
)

const agreementTolerance = 0.1

// Reasoning explains a recommendation. Checks run in a fixed order and the
// output keeps that order: GPA tier, difficulty fit, prior grades,
// accessibility, model agreement.
func Reasoning(f FeatureRecord, s RecommendationScores, accessibility []string) []string {
	out := []string{}

	switch {
	case f.GPA >= 3.5:
		out = append(out, fmt.Sprintf("Strong academic record (GPA %.2f) indicates readiness for this course", f.GPA))
	case f.GPA >= 3.0:
		out = append(out, fmt.Sprintf("Solid GPA of %.2f supports success in this course", f.GPA))
	case f.GPA < 2.5:
		out = append(out, "Course can help build foundational skills alongside academic support")
	}

	switch {
	case f.CourseDifficulty >= 4 && f.GPA < 3.0:
		out = append(out, fmt.Sprintf("Challenging course (difficulty %d/5) relative to current GPA; plan extra study time", f.CourseDifficulty))
	case f.CourseDifficulty <= 2 && f.GPA >= 3.5:
		out = append(out, "Course may be below your current level; a good option to balance a heavy semester")
	default:
		out = append(out, fmt.Sprintf("Course difficulty (%d/5) aligns with your academic level", f.CourseDifficulty))
	}

	switch {
	case f.AvgPriorGrade >= 3.5:
		out = append(out, "Excellent performance in previous courses")
	case f.AvgPriorGrade >= 3.0:
		out = append(out, "Good track record in previous courses")
	}

	if f.HasDisability {
		switch {
		case len(accessibility) > 0:
			out = append(out, "Offers accessibility features: "+strings.Join(accessibility, ", "))
		case f.CourseDifficulty <= 3:
			out = append(out, "Manageable workload for your accessibility needs")
		}
	}

	if math.Abs(s.Similarity-s.Tree) < agreementTolerance {
		out = append(out, "Both models agree strongly on this recommendation")
	}
	return out
}
