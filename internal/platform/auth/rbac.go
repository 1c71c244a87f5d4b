package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/apperr"
)

// Decision is the outcome of a role check.
type Decision bool

const (
	Denied  Decision = false
	Allowed Decision = true
)

// Authorize is the route-level role gate. It is pure: a nil principal or a
// role outside allowed is Denied. Admin gets no implicit bypass.
//
// Passing the gate is necessary but not sufficient; services still scope each
// resource to its owners.
func Authorize(p *Principal, allowed ...Role) Decision {
	if p == nil {
		return Denied
	}
	for _, r := range allowed {
		if p.Role == r {
			return Allowed
		}
	}
	return Denied
}

// RequireRole returns middleware that admits only principals whose role is
// one of roles.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFromContext(c.Request().Context())
			if p == nil {
				return apperr.Unauthenticated("authentication required")
			}
			if Authorize(p, roles...) == Denied {
				return apperr.Forbidden("required role: %s", joinRoles(roles))
			}
			return next(c)
		}
	}
}

func joinRoles(roles []Role) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return strings.Join(names, " or ")
}
