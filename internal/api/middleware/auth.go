package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	KeyUserID = "user_id"
	KeyRole   = "role"
	KeyEmail  = "email"
)

// Auth requires an "Authorization: Bearer <token>" header carrying a valid
// token and stores the resolved identity on the context.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(KeyUserID, identity.UserID)
			c.Set(KeyRole, identity.Role)
			c.Set(KeyEmail, identity.Email)

			return next(c)
		}
	}
}
