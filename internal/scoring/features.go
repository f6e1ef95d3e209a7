package scoring

import "github.com/mind-engage/mindengage-advisor/internal/academic"

const (
	DefaultGPA        = 2.5
	DefaultAttendance = 95.0
	DefaultPriorGrade = 2.5

	// RecentGradeWindow is how many of the newest grade rows feed a record.
	RecentGradeWindow = 5
)

// FeatureRecord is the flat per student/course summary every estimator reads.
type FeatureRecord struct {
	GPA              float64 `json:"gpa"`
	CourseDifficulty int     `json:"courseDifficulty"`
	AttendanceRate   float64 `json:"attendanceRate"`
	HasDisability    bool    `json:"hasDisability"`
	Credits          int     `json:"credits"`
	AvgPriorGrade    float64 `json:"avgPriorGrade"`
}

// Extract builds a FeatureRecord. Missing values fall back to defaults rather
// than failing: GPA 2.5, attendance 95, prior grade average 2.5. Only the
// first RecentGradeWindow entries of recent are used.
func Extract(s academic.Student, c academic.Course, recent []academic.Grade) FeatureRecord {
	if len(recent) > RecentGradeWindow {
		recent = recent[:RecentGradeWindow]
	}
	f := FeatureRecord{
		GPA:              DefaultGPA,
		CourseDifficulty: c.Difficulty,
		AttendanceRate:   DefaultAttendance,
		HasDisability:    s.HasDisability,
		Credits:          c.Credits,
		AvgPriorGrade:    DefaultPriorGrade,
	}
	if s.CurrentGPA != nil {
		f.GPA = *s.CurrentGPA
	}
	if len(recent) > 0 {
		sum := 0.0
		attSum, attN := 0.0, 0
		for _, g := range recent {
			sum += g.GradePoint
			if g.AttendanceRate != nil {
				attSum += *g.AttendanceRate
				attN++
			}
		}
		f.AvgPriorGrade = sum / float64(len(recent))
		if attN > 0 {
			f.AttendanceRate = attSum / float64(attN)
		}
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampUnit(v float64) float64  { return clamp(v, 0, 1) }
func clampGrade(v float64) float64 { return clamp(v, 0, 4.0) }

func boolf(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
