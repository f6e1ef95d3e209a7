// Package advisor resolves the authenticated student, builds feature records
// from the academic store and runs the scoring pipeline for recommendation,
// prediction and peer requests. Every computed result is written to the
// event log; a failed write is logged and never fails the request.
package advisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/mind-engage/mindengage-advisor/internal/academic"
	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/metrics"
	"github.com/mind-engage/mindengage-advisor/internal/scoring"
)

var (
	ErrProfileNotFound = errors.New("student profile not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrUnknownGrade    = errors.New("unknown letter grade")
)

// EventRecorder is satisfied by *syncx.EventRepo.
type EventRecorder interface {
	Record(ctx context.Context, typ, key string, payload any) error
}

type Service struct {
	store   academic.Store
	events  EventRecorder
	metrics *metrics.Metrics
	topN    int
}

type Option func(*Service)

func WithEvents(r EventRecorder) Option { return func(s *Service) { s.events = r } }
func WithMetrics(m *metrics.Metrics) Option { return func(s *Service) { s.metrics = m } }

// WithTopN caps the recommendation list; values <= 0 keep scoring.DefaultTopN.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

func New(store academic.Store, opts ...Option) *Service {
	s := &Service{store: store, topN: scoring.DefaultTopN}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Student returns the profile owned by userID.
func (s *Service) Student(ctx context.Context, userID string) (academic.Student, error) {
	st, err := s.store.StudentByUser(ctx, userID)
	if errors.Is(err, academic.ErrNotFound) {
		return academic.Student{}, ErrProfileNotFound
	}
	if err != nil {
		return academic.Student{}, fmt.Errorf("load student: %w", err)
	}
	return st, nil
}

func (s *Service) studentByID(ctx context.Context, id string) (academic.Student, error) {
	st, err := s.store.GetStudent(ctx, id)
	if errors.Is(err, academic.ErrNotFound) {
		return academic.Student{}, ErrProfileNotFound
	}
	if err != nil {
		return academic.Student{}, fmt.Errorf("load student: %w", err)
	}
	return st, nil
}

func (s *Service) course(ctx context.Context, id string) (academic.Course, error) {
	c, err := s.store.GetCourse(ctx, id)
	if errors.Is(err, academic.ErrNotFound) {
		return academic.Course{}, ErrCourseNotFound
	}
	if err != nil {
		return academic.Course{}, fmt.Errorf("load course: %w", err)
	}
	return c, nil
}

func (s *Service) record(ctx context.Context, typ, key string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Record(ctx, typ, key, payload); err != nil {
		s.metrics.EventLogFailed()
		logging.Ctx(ctx).Warn().Err(err).Str("type", typ).Str("student_id", key).Msg("event log append failed")
	}
}
