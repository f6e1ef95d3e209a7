package academic

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryStore struct {
	mu          sync.RWMutex
	students    map[string]Student
	courses     map[string]Course
	grades      []Grade
	preferences map[string]Preferences
	disability  map[string]Disability
	seq         int64
}

// NewInMemoryStore returns a Store kept entirely in process memory.
// Used by tests and by advisorctl when no database is configured.
func NewInMemoryStore() Store {
	return &memoryStore{
		students:    map[string]Student{},
		courses:     map[string]Course{},
		preferences: map[string]Preferences{},
		disability:  map[string]Disability{},
	}
}

func (m *memoryStore) StudentByUser(_ context.Context, userID string) (Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.UserID != "" && s.UserID == userID {
			return s, nil
		}
	}
	return Student{}, fmt.Errorf("student: %w", ErrNotFound)
}

func (m *memoryStore) GetStudent(_ context.Context, id string) (Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.students[id]
	if !ok {
		return Student{}, fmt.Errorf("student: %w", ErrNotFound)
	}
	return s, nil
}

func (m *memoryStore) PutStudent(_ context.Context, s Student) (Student, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if prev, ok := m.students[s.ID]; ok {
		s.CreatedAt = prev.CreatedAt
		if s.UserID == "" {
			s.UserID = prev.UserID
		}
	}
	if s.CreatedAt == 0 {
		m.seq++
		s.CreatedAt = m.seq
	}
	m.students[s.ID] = s
	return s, nil
}

func (m *memoryStore) ListStudents(_ context.Context) ([]Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) GetCourse(_ context.Context, id string) (Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.courses[id]
	if !ok {
		return Course{}, fmt.Errorf("course: %w", ErrNotFound)
	}
	return c, nil
}

func (m *memoryStore) PutCourse(_ context.Context, c Course) (Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	m.courses[c.ID] = c
	return c, nil
}

func (m *memoryStore) ListCourses(_ context.Context, opts CourseListOpts) ([]Course, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q := strings.ToLower(strings.TrimSpace(opts.Q))
	out := []Course{}
	for _, c := range m.courses {
		if q != "" && !strings.Contains(strings.ToLower(c.Code), q) && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		if opts.Department != "" && c.Department != opts.Department {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []Course{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

// newestFirst mirrors the SQL ordering: year, then semester, then insertion.
func newestFirst(gs []Grade) {
	sort.SliceStable(gs, func(i, j int) bool {
		if gs[i].Year != gs[j].Year {
			return gs[i].Year > gs[j].Year
		}
		if ri, rj := SemesterRank(gs[i].Semester), SemesterRank(gs[j].Semester); ri != rj {
			return ri > rj
		}
		return gs[i].CreatedAt > gs[j].CreatedAt
	})
}

func (m *memoryStore) GradesForStudent(_ context.Context, studentID string) ([]Grade, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Grade{}
	for _, g := range m.grades {
		if g.StudentID == studentID {
			out = append(out, g)
		}
	}
	newestFirst(out)
	return out, nil
}

func (m *memoryStore) RecentGrades(ctx context.Context, studentID string, n int) ([]Grade, error) {
	all, _ := m.GradesForStudent(ctx, studentID)
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all, nil
}

func (m *memoryStore) AddGrade(_ context.Context, g Grade) (Grade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.CreatedAt == 0 {
		g.CreatedAt = time.Now().UnixNano()
	}
	m.grades = append(m.grades, g)
	return g, nil
}

func (m *memoryStore) TakenCourseIDs(_ context.Context, studentID string) (map[string]struct{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := map[string]struct{}{}
	for _, g := range m.grades {
		if g.StudentID == studentID {
			out[g.CourseID] = struct{}{}
		}
	}
	return out, nil
}

func (m *memoryStore) AverageGrades(_ context.Context) ([]StudentAverage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sums := map[string]*StudentAverage{}
	for _, g := range m.grades {
		a, ok := sums[g.StudentID]
		if !ok {
			a = &StudentAverage{StudentID: g.StudentID}
			sums[g.StudentID] = a
		}
		a.Average += g.GradePoint
		a.GradeCount++
	}
	out := make([]StudentAverage, 0, len(sums))
	for _, a := range sums {
		a.Average /= float64(a.GradeCount)
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

func (m *memoryStore) GetPreferences(_ context.Context, studentID string) (Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.preferences[studentID]
	if !ok {
		return Preferences{}, fmt.Errorf("preferences: %w", ErrNotFound)
	}
	return p, nil
}

func (m *memoryStore) PutPreferences(_ context.Context, p Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.preferences[p.StudentID] = p
	return nil
}

func (m *memoryStore) GetDisability(_ context.Context, studentID string) (Disability, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.disability[studentID]
	if !ok {
		return Disability{}, fmt.Errorf("disability: %w", ErrNotFound)
	}
	return d, nil
}

func (m *memoryStore) PutDisability(_ context.Context, d Disability) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disability[d.StudentID] = d
	return nil
}
