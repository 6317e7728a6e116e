package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// CourseRepository defines persistence operations for the catalog.
type CourseRepository interface {
	// List returns every course in insertion (id) order.
	List(ctx context.Context) ([]domain.Course, error)
	FindByID(ctx context.Context, id int64) (*domain.Course, error)
	// Create assigns the next id to c and stores it.
	Create(ctx context.Context, c *domain.Course) error
	// Update replaces all mutable fields of the course with c.ID.
	Update(ctx context.Context, c *domain.Course) error
	// Delete returns domain.ErrCourseNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error
}
