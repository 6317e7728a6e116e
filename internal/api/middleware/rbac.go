package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Auth: a request
// without an identity is rejected with 401 before any role check.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(KeyRole).(string)
			if role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}

// RequireTeacher admits only teachers.
func RequireTeacher() echo.MiddlewareFunc {
	return RBAC(domain.RoleTeacher)
}
