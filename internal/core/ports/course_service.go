package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// CourseInput carries the writable course fields as received from a client.
// A nil Credits means the field was absent from the request.
type CourseInput struct {
	Name        string
	Description string
	Subject     string
	Credits     *float64
}

// CourseFilter narrows ListCourses. Query matches name or subject.
type CourseFilter struct {
	Query string
}

// CourseService defines use-case operations for the catalog.
type CourseService interface {
	ListCourses(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
	GetCourse(ctx context.Context, id int64) (*domain.Course, error)
	CreateCourse(ctx context.Context, input CourseInput) (*domain.Course, error)
	UpdateCourse(ctx context.Context, id int64, input CourseInput) (*domain.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}
