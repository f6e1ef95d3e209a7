package academic_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/db"
)

func ptr(v float64) *float64 { return &v }

func stores(t *testing.T) map[string]academic.Store {
	t.Helper()
	conn, err := db.Open(context.Background(), db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return map[string]academic.Store{
		"memory": academic.NewInMemoryStore(),
		"sqlite": academic.NewSQLStore(conn, "sqlite"),
	}
}

func TestStore_Students(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st, err := s.PutStudent(ctx, academic.Student{UserID: "u1", FullName: "Ada", Email: "ada@x.edu", Major: "CS", HasDisability: true})
			require.NoError(t, err)
			require.NotEmpty(t, st.ID)

			got, err := s.StudentByUser(ctx, "u1")
			require.NoError(t, err)
			assert.Equal(t, "Ada", got.FullName)
			assert.True(t, got.HasDisability)
			assert.Nil(t, got.CurrentGPA)

			got.CurrentGPA = ptr(3.4)
			got.UserID = ""
			_, err = s.PutStudent(ctx, got)
			require.NoError(t, err)
			got, err = s.GetStudent(ctx, st.ID)
			require.NoError(t, err)
			require.NotNil(t, got.CurrentGPA)
			assert.InDelta(t, 3.4, *got.CurrentGPA, 1e-9)
			assert.Equal(t, "u1", got.UserID, "empty user id keeps the existing link")

			_, err = s.StudentByUser(ctx, "nobody")
			assert.ErrorIs(t, err, academic.ErrNotFound)
			_, err = s.GetStudent(ctx, "missing")
			assert.ErrorIs(t, err, academic.ErrNotFound)

			all, err := s.ListStudents(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 1)
		})
	}
}

func TestStore_Courses(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, c := range []academic.Course{
				{Code: "MATH101", Name: "Calculus", Department: "Mathematics", Credits: 4, Difficulty: 3},
				{Code: "CS101", Name: "Intro Programming", Department: "Computer Science", Credits: 3, Difficulty: 2, AccessibilityFeatures: []string{"Captioned lectures"}},
				{Code: "CS301", Name: "Algorithms", Department: "Computer Science", Credits: 4, Difficulty: 5},
			} {
				_, err := s.PutCourse(ctx, c)
				require.NoError(t, err)
			}

			all, err := s.ListCourses(ctx, academic.CourseListOpts{})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, []string{"CS101", "CS301", "MATH101"}, []string{all[0].Code, all[1].Code, all[2].Code})
			assert.Equal(t, []string{"Captioned lectures"}, all[0].AccessibilityFeatures)

			cs, err := s.ListCourses(ctx, academic.CourseListOpts{Department: "Computer Science", Limit: 1, Offset: 1})
			require.NoError(t, err)
			require.Len(t, cs, 1)
			assert.Equal(t, "CS301", cs[0].Code)

			q, err := s.ListCourses(ctx, academic.CourseListOpts{Q: "calc"})
			require.NoError(t, err)
			require.Len(t, q, 1)

			got, err := s.GetCourse(ctx, all[1].ID)
			require.NoError(t, err)
			assert.Equal(t, 5, got.Difficulty)
			_, err = s.GetCourse(ctx, "nope")
			assert.ErrorIs(t, err, academic.ErrNotFound)
		})
	}
}

func TestStore_Grades(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st, err := s.PutStudent(ctx, academic.Student{FullName: "Bo"})
			require.NoError(t, err)
			other, err := s.PutStudent(ctx, academic.Student{FullName: "Cy"})
			require.NoError(t, err)
			c1, err := s.PutCourse(ctx, academic.Course{Code: "A", Name: "A", Credits: 3, Difficulty: 1})
			require.NoError(t, err)
			c2, err := s.PutCourse(ctx, academic.Course{Code: "B", Name: "B", Credits: 3, Difficulty: 1})
			require.NoError(t, err)

			add := func(sid, cid string, gp float64, year int, created int64) {
				_, err := s.AddGrade(ctx, academic.Grade{StudentID: sid, CourseID: cid, Letter: "X", GradePoint: gp, Year: year, CreatedAt: created, AttendanceRate: ptr(90)})
				require.NoError(t, err)
			}
			add(st.ID, c1.ID, 2.0, 2022, 1)
			add(st.ID, c2.ID, 3.0, 2024, 2)
			add(st.ID, c1.ID, 4.0, 2024, 3)
			add(other.ID, c2.ID, 1.0, 2024, 4)

			recent, err := s.RecentGrades(ctx, st.ID, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, 4.0, recent[0].GradePoint)
			assert.Equal(t, 3.0, recent[1].GradePoint)
			require.NotNil(t, recent[0].AttendanceRate)

			all, err := s.GradesForStudent(ctx, st.ID)
			require.NoError(t, err)
			assert.Len(t, all, 3)

			taken, err := s.TakenCourseIDs(ctx, st.ID)
			require.NoError(t, err)
			assert.Len(t, taken, 2)
			assert.Contains(t, taken, c1.ID)

			avgs, err := s.AverageGrades(ctx)
			require.NoError(t, err)
			require.Len(t, avgs, 2)
			byID := map[string]academic.StudentAverage{}
			for _, a := range avgs {
				byID[a.StudentID] = a
			}
			assert.InDelta(t, 3.0, byID[st.ID].Average, 1e-9)
			assert.Equal(t, 3, byID[st.ID].GradeCount)
			assert.InDelta(t, 1.0, byID[other.ID].Average, 1e-9)
		})
	}
}

func TestStore_PreferencesAndDisability(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st, err := s.PutStudent(ctx, academic.Student{FullName: "Di"})
			require.NoError(t, err)

			_, err = s.GetPreferences(ctx, st.ID)
			assert.ErrorIs(t, err, academic.ErrNotFound)
			_, err = s.GetDisability(ctx, st.ID)
			assert.ErrorIs(t, err, academic.ErrNotFound)

			p := academic.Preferences{StudentID: st.ID, Interests: []string{"Algorithms"}, LearningStyles: []string{"Visual"}, Goals: "research"}
			require.NoError(t, s.PutPreferences(ctx, p))
			p.Goals = "industry"
			require.NoError(t, s.PutPreferences(ctx, p))
			got, err := s.GetPreferences(ctx, st.ID)
			require.NoError(t, err)
			assert.Equal(t, "industry", got.Goals)
			assert.Equal(t, []string{"Algorithms"}, got.Interests)

			d := academic.Disability{StudentID: st.ID, Type: "Hearing", SupportRequirements: "Captioning"}
			require.NoError(t, s.PutDisability(ctx, d))
			gd, err := s.GetDisability(ctx, st.ID)
			require.NoError(t, err)
			assert.Equal(t, d, gd)
		})
	}
}

func TestSQLStore_ListCoursesUnbounded(t *testing.T) {
	ctx := context.Background()
	conn, err := db.Open(ctx, db.DriverSQLite, "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	s := academic.NewSQLStore(conn, "sqlite")

	for i := 0; i < 520; i++ {
		_, err := s.PutCourse(ctx, academic.Course{Code: fmt.Sprintf("X%04d", i), Name: "x", Department: "Math", Credits: 3, Difficulty: 2})
		require.NoError(t, err)
	}
	all, err := s.ListCourses(ctx, academic.CourseListOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 520)

	tail, err := s.ListCourses(ctx, academic.CourseListOpts{Offset: 515})
	require.NoError(t, err)
	require.Len(t, tail, 5)
	assert.Equal(t, "X0515", tail[0].Code)
}

func TestStore_RecentGradesOrderBySemester(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			st, err := s.PutStudent(ctx, academic.Student{FullName: "Di"})
			require.NoError(t, err)
			c, err := s.PutCourse(ctx, academic.Course{Code: "S1", Name: "S1", Credits: 3, Difficulty: 2})
			require.NoError(t, err)

			// inserted out of calendar order
			for i, sem := range []string{"Fall", "Spring", "Summer", "Winter"} {
				_, err := s.AddGrade(ctx, academic.Grade{StudentID: st.ID, CourseID: c.ID, Letter: "B", GradePoint: 3, Semester: sem, Year: 2024, CreatedAt: int64(i + 1)})
				require.NoError(t, err)
			}
			_, err = s.AddGrade(ctx, academic.Grade{StudentID: st.ID, CourseID: c.ID, Letter: "A", GradePoint: 4, Semester: "Spring", Year: 2025, CreatedAt: 9})
			require.NoError(t, err)

			recent, err := s.RecentGrades(ctx, st.ID, 4)
			require.NoError(t, err)
			var got []string
			for _, g := range recent {
				got = append(got, fmt.Sprintf("%d %s", g.Year, g.Semester))
			}
			assert.Equal(t, []string{"2025 Spring", "2024 Fall", "2024 Summer", "2024 Spring"}, got)
		})
	}
}

func TestSemesterRank(t *testing.T) {
	assert.Greater(t, academic.SemesterRank("Fall"), academic.SemesterRank("Summer"))
	assert.Greater(t, academic.SemesterRank("Summer"), academic.SemesterRank("Spring"))
	assert.Greater(t, academic.SemesterRank("Spring"), academic.SemesterRank("Winter"))
	assert.Zero(t, academic.SemesterRank(""))
}
