package academic

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// ---- students ----

const studentCols = `id,user_id,full_name,email,major,academic_level,current_gpa,has_disability,created_at`

func scanStudent(row interface{ Scan(...any) error }) (Student, error) {
	var s Student
	var gpa sql.NullFloat64
	if err := row.Scan(&s.ID, &s.UserID, &s.FullName, &s.Email, &s.Major, &s.AcademicLevel, &gpa, &s.HasDisability, &s.CreatedAt); err != nil {
		return Student{}, err
	}
	if gpa.Valid {
		v := gpa.Float64
		s.CurrentGPA = &v
	}
	return s, nil
}

func (s *SQLStore) StudentByUser(ctx context.Context, userID string) (Student, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+studentCols+` FROM students WHERE user_id=$1`, userID)
	st, err := scanStudent(row)
	if err != nil {
		return Student{}, notFound("student", err)
	}
	return st, nil
}

func (s *SQLStore) GetStudent(ctx context.Context, id string) (Student, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+studentCols+` FROM students WHERE id=$1`, id)
	st, err := scanStudent(row)
	if err != nil {
		return Student{}, notFound("student", err)
	}
	return st, nil
}

func (s *SQLStore) PutStudent(ctx context.Context, st Student) (Student, error) {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.CreatedAt == 0 {
		st.CreatedAt = time.Now().Unix()
	}
	var gpa sql.NullFloat64
	if st.CurrentGPA != nil {
		gpa = sql.NullFloat64{Float64: *st.CurrentGPA, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO students (`+studentCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET user_id=CASE WHEN EXCLUDED.user_id <> '' THEN EXCLUDED.user_id ELSE students.user_id END,
		  full_name=EXCLUDED.full_name, email=EXCLUDED.email, major=EXCLUDED.major,
		  academic_level=EXCLUDED.academic_level, current_gpa=EXCLUDED.current_gpa, has_disability=EXCLUDED.has_disability`,
		st.ID, st.UserID, st.FullName, st.Email, st.Major, st.AcademicLevel, gpa, st.HasDisability, st.CreatedAt)
	if err != nil {
		return Student{}, fmt.Errorf("put student: %w", err)
	}
	return st, nil
}

func (s *SQLStore) ListStudents(ctx context.Context) ([]Student, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+studentCols+` FROM students ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Student{}
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// ---- courses ----

const courseCols = `id,course_code,course_name,department,description,credits,difficulty_level,accessibility_json`

func scanCourse(row interface{ Scan(...any) error }) (Course, error) {
	var c Course
	var acc string
	if err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Department, &c.Description, &c.Credits, &c.Difficulty, &acc); err != nil {
		return Course{}, err
	}
	if acc != "" {
		if err := json.Unmarshal([]byte(acc), &c.AccessibilityFeatures); err != nil {
			return Course{}, fmt.Errorf("course %s accessibility: %w", c.ID, err)
		}
	}
	return c, nil
}

func (s *SQLStore) GetCourse(ctx context.Context, id string) (Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+courseCols+` FROM courses WHERE id=$1`, id)
	c, err := scanCourse(row)
	if err != nil {
		return Course{}, notFound("course", err)
	}
	return c, nil
}

func (s *SQLStore) PutCourse(ctx context.Context, c Course) (Course, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	acc, err := json.Marshal(c.AccessibilityFeatures)
	if err != nil {
		return Course{}, err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO courses (`+courseCols+`,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET course_code=EXCLUDED.course_code, course_name=EXCLUDED.course_name,
		  department=EXCLUDED.department, description=EXCLUDED.description, credits=EXCLUDED.credits,
		  difficulty_level=EXCLUDED.difficulty_level, accessibility_json=EXCLUDED.accessibility_json`,
		c.ID, c.Code, c.Name, c.Department, c.Description, c.Credits, c.Difficulty, string(acc), time.Now().Unix())
	if err != nil {
		return Course{}, fmt.Errorf("put course: %w", err)
	}
	return c, nil
}

// ListCourses returns the matching catalog ordered by code. Limit <= 0
// returns every match; callers serving pages set their own limit.
func (s *SQLStore) ListCourses(ctx context.Context, opts CourseListOpts) ([]Course, error) {
	sqlStr := `SELECT ` + courseCols + ` FROM courses WHERE 1=1`
	var args []any
	if q := strings.TrimSpace(opts.Q); q != "" {
		args = append(args, "%"+strings.ToLower(q)+"%")
		n := strconv.Itoa(len(args))
		sqlStr += ` AND (LOWER(course_code) LIKE $` + n + ` OR LOWER(course_name) LIKE $` + n + `)`
	}
	if d := strings.TrimSpace(opts.Department); d != "" {
		args = append(args, d)
		sqlStr += ` AND department=$` + strconv.Itoa(len(args))
	}
	sqlStr += ` ORDER BY course_code`
	switch {
	case opts.Limit > 0:
		args = append(args, opts.Limit, max(opts.Offset, 0))
		sqlStr += ` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	case opts.Offset > 0:
		// SQLite only accepts OFFSET after a LIMIT; -1 means unbounded there.
		args = append(args, opts.Offset)
		if s.driver == "postgres" {
			sqlStr += ` OFFSET $` + strconv.Itoa(len(args))
		} else {
			sqlStr += ` LIMIT -1 OFFSET $` + strconv.Itoa(len(args))
		}
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ---- grades ----

const gradeCols = `id,student_id,course_id,grade,grade_point,semester,year,attendance_rate,created_at`

func scanGrade(row interface{ Scan(...any) error }) (Grade, error) {
	var g Grade
	var att sql.NullFloat64
	if err := row.Scan(&g.ID, &g.StudentID, &g.CourseID, &g.Letter, &g.GradePoint, &g.Semester, &g.Year, &att, &g.CreatedAt); err != nil {
		return Grade{}, err
	}
	if att.Valid {
		v := att.Float64
		g.AttendanceRate = &v
	}
	return g, nil
}

func (s *SQLStore) queryGrades(ctx context.Context, q string, args ...any) ([]Grade, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Grade{}
	for rows.Next() {
		g, err := scanGrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// newestFirstSQL matches SemesterRank.
const newestFirstSQL = ` ORDER BY year DESC,
	CASE semester WHEN 'Fall' THEN 4 WHEN 'Summer' THEN 3 WHEN 'Spring' THEN 2 WHEN 'Winter' THEN 1 ELSE 0 END DESC,
	created_at DESC, id DESC`

func (s *SQLStore) RecentGrades(ctx context.Context, studentID string, n int) ([]Grade, error) {
	return s.queryGrades(ctx, `SELECT `+gradeCols+` FROM grades WHERE student_id=$1`+newestFirstSQL+` LIMIT $2`, studentID, n)
}

func (s *SQLStore) GradesForStudent(ctx context.Context, studentID string) ([]Grade, error) {
	return s.queryGrades(ctx, `SELECT `+gradeCols+` FROM grades WHERE student_id=$1`+newestFirstSQL, studentID)
}

func (s *SQLStore) AddGrade(ctx context.Context, g Grade) (Grade, error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}
	var att sql.NullFloat64
	if g.AttendanceRate != nil {
		att = sql.NullFloat64{Float64: *g.AttendanceRate, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO grades (`+gradeCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		g.ID, g.StudentID, g.CourseID, g.Letter, g.GradePoint, g.Semester, g.Year, att, g.CreatedAt)
	if err != nil {
		return Grade{}, fmt.Errorf("add grade: %w", err)
	}
	return g, nil
}

func (s *SQLStore) TakenCourseIDs(ctx context.Context, studentID string) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT course_id FROM grades WHERE student_id=$1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := map[string]struct{}{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

func (s *SQLStore) AverageGrades(ctx context.Context) ([]StudentAverage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT student_id, AVG(grade_point), COUNT(*) FROM grades GROUP BY student_id ORDER BY student_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []StudentAverage{}
	for rows.Next() {
		var a StudentAverage
		if err := rows.Scan(&a.StudentID, &a.Average, &a.GradeCount); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// ---- preferences & accommodations ----

func (s *SQLStore) GetPreferences(ctx context.Context, studentID string) (Preferences, error) {
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT prefs_json FROM student_preferences WHERE student_id=$1`, studentID).Scan(&blob)
	if err != nil {
		return Preferences{}, notFound("preferences", err)
	}
	var p Preferences
	if err := json.Unmarshal([]byte(blob), &p); err != nil {
		return Preferences{}, err
	}
	p.StudentID = studentID
	return p, nil
}

func (s *SQLStore) PutPreferences(ctx context.Context, p Preferences) error {
	buf, err := json.Marshal(p)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO student_preferences (student_id, prefs_json, updated_at) VALUES ($1,$2,$3)
		ON CONFLICT (student_id) DO UPDATE SET prefs_json=EXCLUDED.prefs_json, updated_at=EXCLUDED.updated_at`,
		p.StudentID, string(buf), time.Now().Unix())
	return err
}

func (s *SQLStore) GetDisability(ctx context.Context, studentID string) (Disability, error) {
	d := Disability{StudentID: studentID}
	err := s.db.QueryRowContext(ctx, `SELECT disability_type, preferred_interaction_mode, support_requirements
		FROM disabilities WHERE student_id=$1`, studentID).Scan(&d.Type, &d.PreferredInteractionMode, &d.SupportRequirements)
	if err != nil {
		return Disability{}, notFound("disability", err)
	}
	return d, nil
}

func (s *SQLStore) PutDisability(ctx context.Context, d Disability) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO disabilities (student_id, disability_type, preferred_interaction_mode, support_requirements)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (student_id) DO UPDATE SET disability_type=EXCLUDED.disability_type,
		  preferred_interaction_mode=EXCLUDED.preferred_interaction_mode, support_requirements=EXCLUDED.support_requirements`,
		d.StudentID, d.Type, d.PreferredInteractionMode, d.SupportRequirements)
	return err
}

func notFound(what string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
