package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

type ScheduleHandler struct {
	scheduleService ports.ScheduleService
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// Get returns the caller's enrolled courses in catalog order.
//
// @Summary      My schedule
// @Tags         schedule
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Course
// @Failure      401  {object}  errorResponse
// @Router       /me/schedule [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	courses, err := h.scheduleService.GetSchedule(c.Request().Context(), id.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Enroll adds a course to the caller's schedule. Re-adding is a no-op.
//
// @Summary      Add course to schedule
// @Tags         schedule
// @Security     BearerAuth
// @Param        courseId  path  int  true  "Course ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /me/schedule/{courseId} [post]
func (h *ScheduleHandler) Enroll(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return domain.ErrCourseNotFound
	}
	if err := h.scheduleService.Enroll(c.Request().Context(), id.UserID, courseID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Drop removes a course from the caller's schedule. Always 204.
//
// @Summary      Remove course from schedule
// @Tags         schedule
// @Security     BearerAuth
// @Param        courseId  path  int  true  "Course ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /me/schedule/{courseId} [delete]
func (h *ScheduleHandler) Drop(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}
	if err := h.scheduleService.Drop(c.Request().Context(), id.UserID, courseID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
