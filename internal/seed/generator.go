// Package seed fills a store with a synthetic but plausible dataset: a course
// catalog, students with level-dependent GPAs, grade histories, preferences
// and disability accommodations.
package seed

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
)

type Options struct {
	Students  int
	MinGrades int // per student, default 5
	MaxGrades int // per student, default 15
	Fixtures  bool
	Seed      uint64 // 0 picks a time-based seed
	Now       time.Time
}

type Summary struct {
	Courses      int `json:"courses"`
	Students     int `json:"students"`
	Grades       int `json:"grades"`
	Preferences  int `json:"preferences"`
	Disabilities int `json:"disabilities"`
}

type Generator struct {
	store academic.Store
	opts  Options
	rng   *rand.Rand
}

func New(store academic.Store, opts Options) *Generator {
	if opts.MinGrades <= 0 {
		opts.MinGrades = 5
	}
	if opts.MaxGrades < opts.MinGrades {
		opts.MaxGrades = max(15, opts.MinGrades)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(opts.Now.UnixNano())
	}
	return &Generator{store: store, opts: opts, rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Run inserts everything through the store. The catalog is only loaded when
// the store has no courses yet.
func (g *Generator) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	courses, err := g.ensureCatalog(ctx, &sum)
	if err != nil {
		return sum, err
	}

	students := make([]academic.Student, 0, g.opts.Students+5)
	if g.opts.Fixtures {
		students = append(students, Fixtures()...)
	}
	for i := 0; i < g.opts.Students; i++ {
		students = append(students, g.student(i))
	}

	for i, st := range students {
		st, err := g.store.PutStudent(ctx, st)
		if err != nil {
			return sum, fmt.Errorf("insert student %d: %w", i, err)
		}
		sum.Students++

		for _, gr := range g.grades(st.ID, courses) {
			if _, err := g.store.AddGrade(ctx, gr); err != nil {
				return sum, fmt.Errorf("insert grade: %w", err)
			}
			sum.Grades++
		}
		if err := g.store.PutPreferences(ctx, g.preferences(st.ID)); err != nil {
			return sum, fmt.Errorf("insert preferences: %w", err)
		}
		sum.Preferences++
		if st.HasDisability {
			if err := g.store.PutDisability(ctx, g.disability(st.ID)); err != nil {
				return sum, fmt.Errorf("insert disability: %w", err)
			}
			sum.Disabilities++
		}
		if (i+1)%50 == 0 {
			logging.Ctx(ctx).Info().Int("done", i+1).Int("total", len(students)).Msg("seeding students")
		}
	}
	logging.Ctx(ctx).Info().Interface("summary", sum).Msg("seed complete")
	return sum, nil
}

func (g *Generator) ensureCatalog(ctx context.Context, sum *Summary) ([]academic.Course, error) {
	existing, err := g.store.ListCourses(ctx, academic.CourseListOpts{})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	if len(existing) > 0 {
		return existing, nil
	}
	out := make([]academic.Course, 0, len(Catalog()))
	for _, c := range Catalog() {
		c, err := g.store.PutCourse(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("insert course %s: %w", c.Code, err)
		}
		out = append(out, c)
		sum.Courses++
	}
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clamp4(v float64) float64 { return math.Max(0, math.Min(4, v)) }

func (g *Generator) pick(pool []string) string { return pool[g.rng.IntN(len(pool))] }

// sample returns between lo and hi distinct entries of pool.
func (g *Generator) sample(pool []string, lo, hi int) []string {
	n := lo + g.rng.IntN(hi-lo+1)
	idx := g.rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *Generator) student(i int) academic.Student {
	level := g.pick(academicLevels)
	disabled := g.rng.IntN(2) == 1
	d := levelGPA[level]
	gpa := d.mean + g.rng.NormFloat64()*d.sd
	if disabled {
		gpa -= g.rng.Float64() * 0.3
	}
	gpa = round2(clamp4(gpa))
	return academic.Student{
		FullName:      fmt.Sprintf("Student %d", i+1),
		Email:         fmt.Sprintf("student%d@university.edu", i+1),
		Major:         g.pick(departments),
		AcademicLevel: level,
		CurrentGPA:    &gpa,
		HasDisability: disabled,
	}
}

// grades draws distinct courses; grade points are N(3.0, 0.5) clamped to
// [0,4] and labelled with the nearest registrar letter.
func (g *Generator) grades(studentID string, courses []academic.Course) []academic.Grade {
	if len(courses) == 0 {
		return nil
	}
	n := g.opts.MinGrades + g.rng.IntN(g.opts.MaxGrades-g.opts.MinGrades+1)
	n = min(n, len(courses))
	year := g.opts.Now.Year()
	out := make([]academic.Grade, 0, n)
	for _, j := range g.rng.Perm(len(courses))[:n] {
		gp := round2(clamp4(3.0 + g.rng.NormFloat64()*0.5))
		att := round2(75 + g.rng.Float64()*25)
		out = append(out, academic.Grade{
			StudentID:      studentID,
			CourseID:       courses[j].ID,
			Letter:         scoring.NearestLetter(gp),
			GradePoint:     gp,
			Semester:       g.pick(semesters),
			Year:           year - g.rng.IntN(4),
			AttendanceRate: &att,
		})
	}
	return out
}

func (g *Generator) preferences(studentID string) academic.Preferences {
	return academic.Preferences{
		StudentID:       studentID,
		CareerInterests: g.sample(careerPool, 2, 4),
		LearningStyles:  g.sample(stylePool, 1, 3),
		TimePreferences: g.sample(timePool, 1, 3),
		CourseFormats:   g.sample(formatPool, 1, 3),
		Interests:       g.sample(interestPool, 2, 5),
		Goals:           defaultGoals,
	}
}

func (g *Generator) disability(studentID string) academic.Disability {
	typ := g.pick(disabilityTypes)
	a := accommodations[typ]
	return academic.Disability{
		StudentID:                studentID,
		Type:                     typ,
		PreferredInteractionMode: a.mode,
		SupportRequirements:      a.support,
	}
}
