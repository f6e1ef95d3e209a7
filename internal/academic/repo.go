package academic

import "context"

type CourseListOpts struct {
	Q          string // matches code or name
	Department string
	Limit      int // <= 0: no limit
	Offset     int
}

// Store is the read/write surface the advisor and HTTP layer need.
// Implementations return ErrNotFound (possibly wrapped) for missing rows.
type Store interface {
	StudentByUser(ctx context.Context, userID string) (Student, error)
	GetStudent(ctx context.Context, id string) (Student, error)
	PutStudent(ctx context.Context, s Student) (Student, error)
	ListStudents(ctx context.Context) ([]Student, error)

	GetCourse(ctx context.Context, id string) (Course, error)
	PutCourse(ctx context.Context, c Course) (Course, error)
	ListCourses(ctx context.Context, opts CourseListOpts) ([]Course, error)

	// RecentGrades returns at most n grades, newest first.
	RecentGrades(ctx context.Context, studentID string, n int) ([]Grade, error)
	GradesForStudent(ctx context.Context, studentID string) ([]Grade, error)
	AddGrade(ctx context.Context, g Grade) (Grade, error)
	TakenCourseIDs(ctx context.Context, studentID string) (map[string]struct{}, error)
	AverageGrades(ctx context.Context) ([]StudentAverage, error)

	GetPreferences(ctx context.Context, studentID string) (Preferences, error)
	PutPreferences(ctx context.Context, p Preferences) error
	GetDisability(ctx context.Context, studentID string) (Disability, error)
	PutDisability(ctx context.Context, d Disability) error
}
