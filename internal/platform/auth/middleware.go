package auth

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clinic/clinic/internal/platform/apperr"
)

// Verifier turns a bearer credential into a principal.
type Verifier interface {
	Verify(credential string) (*Principal, error)
}

// JWTMiddleware authenticates every request not matched by skipper and stores
// the resulting principal on the request context.
func JWTMiddleware(v Verifier, skipper func(echo.Context) bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipper != nil && skipper(c) {
				return next(c)
			}

			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return apperr.Unauthenticated("missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return apperr.InvalidCredential("invalid authorization format")
			}

			p, err := v.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return err
			}

			c.Set("principal", p)
			c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), p)))
			return next(c)
		}
	}
}
