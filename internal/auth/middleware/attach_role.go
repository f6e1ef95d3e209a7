package auth

import (
	"errors"
	"net/http"

	"github.com/mind-engage/mindengage-advisor/internal/logging"
	"github.com/mind-engage/mindengage-advisor/internal/rbac"
)

// AttachRoleFromDB replaces the role claimed in the token with the one
// stored for the user, so demotions apply before the token expires.
// allowClaimFallback=true in dev/offline; false in prod.
func AttachRoleFromDB(users UserStore, allowClaimFallback bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			sub := SubjectFromContext(ctx)
			claimRole := rbac.RoleFromContext(ctx)

			u, err := users.ByID(ctx, sub)
			switch {
			case err == nil:
				next.ServeHTTP(w, r.WithContext(rbac.WithRole(ctx, u.Role)))
			case errors.Is(err, ErrUserNotFound):
				if allowClaimFallback && claimRole != "" {
					next.ServeHTTP(w, r)
					return
				}
				writeErr(w, http.StatusUnauthorized, "UNAUTHORIZED", "unknown user")
			default:
				logging.Ctx(ctx).Error().Err(err).Msg("role lookup failed")
				if allowClaimFallback && claimRole != "" {
					next.ServeHTTP(w, r)
					return
				}
				writeErr(w, http.StatusForbidden, "FORBIDDEN", "forbidden")
			}
		})
	}
}
