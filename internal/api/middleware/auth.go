package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// IdentityResolver turns a raw bearer token into a user id or fails.
type IdentityResolver interface {
	Resolve(raw string) (string, error)
}

// Auth resolves the caller's identity from the Authorization header and
// injects the user id into the request context. Resolution failures are
// always 401 — an authorization boundary, never a data error.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			userID, err := resolver.Resolve(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", userID)

			return next(c)
		}
	}
}
