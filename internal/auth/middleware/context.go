package auth

import "context"

type claimsKey struct{}

// WithClaims stores the verified token claims for downstream handlers.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok && c != nil
}

// WithSubject is WithClaims for callers that only know the user id.
func WithSubject(ctx context.Context, sub string) context.Context {
	return WithClaims(ctx, &Claims{Sub: sub})
}

// SubjectFromContext returns the users.id of the caller, or "" when the
// request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	if c, ok := ClaimsFromContext(ctx); ok {
		return c.Sub
	}
	return ""
}
