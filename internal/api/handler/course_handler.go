package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

type CourseHandler struct {
	courseService ports.CourseService
}

func NewCourseHandler(courseService ports.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// List returns the catalog, optionally filtered by ?q= on name or subject.
//
// @Summary      List courses
// @Tags         courses
// @Produce      json
// @Param        q    query     string  false  "Case-insensitive match on name or subject"
// @Success      200  {array}   domain.Course
// @Failure      500  {object}  errorResponse
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.courseService.ListCourses(c.Request().Context(), ports.CourseFilter{Query: c.QueryParam("q")})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Get returns a single course.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      int  true  "Course ID"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return domain.ErrCourseNotFound
	}
	course, err := h.courseService.GetCourse(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create adds a course to the catalog. Teachers only.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course fields"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	course, err := h.courseService.CreateCourse(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

// Update replaces every writable field of a course. Teachers only.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Course ID"
// @Param        body  body      courseRequest  true  "Course fields"
// @Success      200   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return domain.ErrCourseNotFound
	}
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	course, err := h.courseService.UpdateCourse(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete removes a course. Teachers only.
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id   path  int  true  "Course ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return domain.ErrCourseNotFound
	}
	if err := h.courseService.DeleteCourse(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
