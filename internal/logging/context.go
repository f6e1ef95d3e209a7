package logging

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

type ctxKey string

const subjectKey ctxKey = "log_subject"

// WithSubject tags later log lines from ctx with the authenticated subject.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// Ctx returns the global logger enriched with the chi request id and the
// subject stored in ctx, when present.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := Logger()
	if ctx == nil {
		return &l
	}
	zc := l.With()
	if id := middleware.GetReqID(ctx); id != "" {
		zc = zc.Str("request_id", id)
	}
	if sub, ok := ctx.Value(subjectKey).(string); ok && sub != "" {
		zc = zc.Str("sub", sub)
	}
	l = zc.Logger()
	return &l
}
