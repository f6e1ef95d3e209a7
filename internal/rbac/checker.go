package rbac

import (
	"context"
	"strings"
)

// grant is one role's compiled permission set. Patterns ending in "*" are
// kept as prefixes ("advice:*" grants every advice permission).
type grant struct {
	all      bool
	exact    map[string]struct{}
	prefixes []string
}

type Checker struct {
	roles map[string]grant
}

// NewChecker compiles rp; nil means RolePermissions.
func NewChecker(rp map[string][]string) *Checker {
	if rp == nil {
		rp = RolePermissions
	}
	c := &Checker{roles: make(map[string]grant, len(rp))}
	for role, patterns := range rp {
		g := grant{exact: map[string]struct{}{}}
		for _, p := range patterns {
			switch {
			case p == "*":
				g.all = true
			case strings.HasSuffix(p, "*"):
				g.prefixes = append(g.prefixes, strings.TrimSuffix(p, "*"))
			default:
				g.exact[p] = struct{}{}
			}
		}
		c.roles[role] = g
	}
	return c
}

func (c *Checker) Has(role, perm string) bool {
	g, ok := c.roles[role]
	if !ok {
		return false
	}
	if g.all {
		return true
	}
	if _, ok := g.exact[perm]; ok {
		return true
	}
	for _, p := range g.prefixes {
		if strings.HasPrefix(perm, p) {
			return true
		}
	}
	return false
}

func (c *Checker) Any(role string, perms ...string) bool {
	for _, p := range perms {
		if c.Has(role, p) {
			return true
		}
	}
	return false
}

type roleKey struct{}

// WithRole records the effective role; AttachRoleFromDB overwrites the
// token's claim with the stored one.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey{}, role)
}

func RoleFromContext(ctx context.Context) string {
	s, _ := ctx.Value(roleKey{}).(string)
	return s
}
