package scoring

// Factors breaks a performance prediction into strengths, concerns and
// category labels for display.
type Factors struct {
	Strengths          []string `json:"strengths"`
	Concerns           []string `json:"concerns"`
	GPACategory        string   `json:"gpaCategory"`
	DifficultyCategory string   `json:"difficultyCategory"`
	AttendanceCategory string   `json:"attendanceCategory"`
	RiskLevel          string   `json:"riskLevel"`
}

func gpaCategory(gpa float64) string {
	switch {
	case gpa >= 3.5:
		return "excellent"
	case gpa >= 3.0:
		return "good"
	case gpa >= 2.5:
		return "satisfactory"
	default:
		return "needs_improvement"
	}
}

func difficultyCategory(d int) string {
	switch {
	case d <= 2:
		return "introductory"
	case d == 3:
		return "intermediate"
	default:
		return "advanced"
	}
}

func attendanceCategory(rate float64) string {
	switch {
	case rate >= 90:
		return "excellent"
	case rate >= 80:
		return "good"
	default:
		return "low"
	}
}

func riskLevel(p float64) string {
	switch {
	case p >= 0.7:
		return "high"
	case p >= 0.4:
		return "medium"
	default:
		return "low"
	}
}

// Analyze lists strengths and concerns for a prediction.
func Analyze(f FeatureRecord, risk RiskEstimate) Factors {
	fx := Factors{
		Strengths:          []string{},
		Concerns:           []string{},
		GPACategory:        gpaCategory(f.GPA),
		DifficultyCategory: difficultyCategory(f.CourseDifficulty),
		AttendanceCategory: attendanceCategory(f.AttendanceRate),
		RiskLevel:          riskLevel(risk.Probability),
	}

	if f.GPA >= 3.0 {
		fx.Strengths = append(fx.Strengths, "Strong overall GPA")
	} else if f.GPA < 2.5 {
		fx.Concerns = append(fx.Concerns, "GPA below 2.5")
	}
	if f.AvgPriorGrade >= 3.0 {
		fx.Strengths = append(fx.Strengths, "Consistent grades in recent courses")
	} else if f.AvgPriorGrade < 2.0 {
		fx.Concerns = append(fx.Concerns, "Low grades in recent courses")
	}
	if f.AttendanceRate >= 90 {
		fx.Strengths = append(fx.Strengths, "Excellent attendance")
	} else if f.AttendanceRate < 80 {
		fx.Concerns = append(fx.Concerns, "Attendance below 80%")
	}
	if f.CourseDifficulty <= 2 {
		fx.Strengths = append(fx.Strengths, "Course difficulty is manageable")
	} else if f.CourseDifficulty >= 4 {
		fx.Concerns = append(fx.Concerns, "High course difficulty")
	}
	if f.Credits > 4 {
		fx.Concerns = append(fx.Concerns, "Heavy credit load")
	}
	if f.HasDisability && f.CourseDifficulty >= 4 {
		fx.Concerns = append(fx.Concerns, "Accommodations may be needed for this course")
	}
	return fx
}

// Advice returns ordered study recommendations for a prediction.
func Advice(f FeatureRecord, risk RiskEstimate, grade GradePrediction) []string {
	out := []string{}
	if risk.AtRisk {
		out = append(out, "Schedule regular check-ins with your academic advisor")
	}
	if f.AttendanceRate < 85 {
		out = append(out, "Aim for consistent class attendance; it is strongly tied to outcomes")
	}
	if f.CourseDifficulty >= 4 && f.GPA < 3.0 {
		out = append(out, "Join or form a study group early in the term")
	}
	if f.HasDisability {
		out = append(out, "Contact disability services to arrange accommodations before the term starts")
	}
	if grade.GradePoint < 2.5 {
		out = append(out, "Use tutoring services and instructor office hours")
	}
	if f.Credits > 4 {
		out = append(out, "Balance this course with a lighter overall credit load")
	}
	if len(out) == 0 {
		out = append(out, "Maintain your current study habits")
	}
	return out
}
