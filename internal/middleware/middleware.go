// File: internal/middleware/middleware.go
package middleware

import (
	"net/http"
	"strings"

	"worklog/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where RequireAuth stores the verified token claims.
const ContextUserKey = "user"

func extractClaims(c echo.Context) (*service.CustomClaims, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authorization header must carry a bearer token")
	}
	claims, err := service.VerifyAccessToken(token)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token").SetInternal(err)
	}
	return claims, nil
}

// RequireAuth parses the Authorization header and makes the claims
// available to the handler chain under ContextUserKey. Requests without
// a valid bearer token are rejected with 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractClaims(c)
		if err != nil {
			return err
		}
		c.Set(ContextUserKey, claims)
		return next(c)
	}
}

// RequireAdmin is RequireAuth plus an admin-role check.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return RequireAuth(func(c echo.Context) error {
		claims, ok := c.Get(ContextUserKey).(*service.CustomClaims)
		if !ok || !claims.IsAdmin() {
			return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
		}
		return next(c)
	})
}
