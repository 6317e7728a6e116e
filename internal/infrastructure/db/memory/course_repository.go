package memory

import (
	"context"
	"sync"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// CourseRepository keeps the catalog in a slice ordered by insertion.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []domain.Course
	nextID  int64
}

// NewCourseRepository returns a repository holding a copy of seed. nextID is
// the first id Create will assign.
func NewCourseRepository(seed []domain.Course, nextID int64) *CourseRepository {
	courses := make([]domain.Course, len(seed))
	copy(courses, seed)
	return &CourseRepository{courses: courses, nextID: nextID}
}

func (r *CourseRepository) List(_ context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *CourseRepository) FindByID(_ context.Context, id int64) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.courses {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *CourseRepository) Create(_ context.Context, c *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, *c)
	return nil
}

func (r *CourseRepository) Update(_ context.Context, c *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == c.ID {
			r.courses[i] = *c
			return nil
		}
	}
	return domain.ErrCourseNotFound
}

// Delete filters the course out and reports not found when the collection
// size did not change.
func (r *CourseRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := len(r.courses)
	kept := r.courses[:0:0]
	for _, c := range r.courses {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == before {
		return domain.ErrCourseNotFound
	}
	r.courses = kept
	return nil
}
