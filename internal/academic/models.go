package academic

import "errors"

// ErrNotFound is returned by stores when a row does not exist.
var ErrNotFound = errors.New("not found")

type Student struct {
	ID            string   `json:"id"`
	UserID        string   `json:"user_id"`
	FullName      string   `json:"full_name"`
	Email         string   `json:"email"`
	Major         string   `json:"major,omitempty"`
	AcademicLevel string   `json:"academic_level,omitempty"` // Freshman..Graduate
	CurrentGPA    *float64 `json:"current_gpa,omitempty"`    // nil until the student reports it
	HasDisability bool     `json:"has_disability"`
	CreatedAt     int64    `json:"created_at,omitempty"`
}

type Course struct {
	ID                    string   `json:"id"`
	Code                  string   `json:"course_code"`
	Name                  string   `json:"course_name"`
	Department            string   `json:"department"`
	Description           string   `json:"description,omitempty"`
	Credits               int      `json:"credits"`
	Difficulty            int      `json:"difficulty_level"` // 1..5
	AccessibilityFeatures []string `json:"accessibility_features,omitempty"`
}

type Grade struct {
	ID             string   `json:"id"`
	StudentID      string   `json:"student_id"`
	CourseID       string   `json:"course_id"`
	Letter         string   `json:"grade"`
	GradePoint     float64  `json:"grade_point"`
	Semester       string   `json:"semester"`
	Year           int      `json:"year"`
	AttendanceRate *float64 `json:"attendance_rate,omitempty"`
	CreatedAt      int64    `json:"created_at,omitempty"`
}

// SemesterRank orders terms within a calendar year, later terms higher.
// Unknown or empty semesters rank lowest.
func SemesterRank(semester string) int {
	switch semester {
	case "Winter":
		return 1
	case "Spring":
		return 2
	case "Summer":
		return 3
	case "Fall":
		return 4
	}
	return 0
}

type Preferences struct {
	StudentID       string   `json:"student_id"`
	CareerInterests []string `json:"career_interests"`
	LearningStyles  []string `json:"preferred_learning_styles"`
	TimePreferences []string `json:"course_time_preferences"`
	CourseFormats   []string `json:"preferred_course_formats"`
	Interests       []string `json:"interests"`
	Goals           string   `json:"goals,omitempty"`
}

type Disability struct {
	StudentID                string `json:"student_id"`
	Type                     string `json:"disability_type"` // Visual|Hearing|Mobility|Learning
	PreferredInteractionMode string `json:"preferred_interaction_mode,omitempty"`
	SupportRequirements      string `json:"support_requirements,omitempty"`
}

// StudentAverage is a student's mean grade point across all recorded grades.
type StudentAverage struct {
	StudentID  string
	Average    float64
	GradeCount int
}
