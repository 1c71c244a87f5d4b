package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists route paths reachable without a bearer token: health
// checks and the account endpoints that hand out credentials.
var publicPaths = map[string]bool{
	"/health":                true,
	"/health/db":             true,
	"/api/v1/users/login":    true,
	"/api/v1/users/register": true,
}

// AuthSkipper returns true for requests whose route should skip
// authentication. c.Path() is the registered route pattern, so unknown paths
// are still authenticated.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether path bypasses authentication.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
