package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/api/middleware"
	"github.com/coursehub/catalog-api/internal/core/domain"
)

// ctxIdentity reads the identity stored by the Auth middleware. A missing
// user id means the route was registered without Auth.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.KeyUserID).(int64)
	if userID <= 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ := c.Get(middleware.KeyRole).(string)
	email, _ := c.Get(middleware.KeyEmail).(string)
	return domain.Identity{UserID: userID, Role: role, Email: email}, nil
}

// pathID parses a positive integer path parameter. ok is false for anything
// else, which callers treat as an id that cannot exist.
func pathID(c echo.Context, name string) (id int64, ok bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
