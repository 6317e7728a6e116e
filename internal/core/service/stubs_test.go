package service

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Inline serializer: runs each job immediately on the calling goroutine.
// ---------------------------------------------------------------------------

type inlineSerializer struct {
	keys []string
}

func (s *inlineSerializer) Do(ctx context.Context, key string, job func(ctx context.Context) error) error {
	s.keys = append(s.keys, key)
	return job(ctx)
}

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubCourseRepo struct {
	courses   []domain.Course
	nextID    int64
	listErr   error
	createErr error
	findCalls int
}

func newStubCourseRepo(seed ...domain.Course) *stubCourseRepo {
	r := &stubCourseRepo{nextID: 1}
	for _, c := range seed {
		r.courses = append(r.courses, c)
		if c.ID >= r.nextID {
			r.nextID = c.ID + 1
		}
	}
	return r
}

func (r *stubCourseRepo) List(_ context.Context) ([]domain.Course, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]domain.Course, len(r.courses))
	copy(out, r.courses)
	return out, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id int64) (*domain.Course, error) {
	r.findCalls++
	for _, c := range r.courses {
		if c.ID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Create(_ context.Context, c *domain.Course) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = r.nextID
	r.nextID++
	r.courses = append(r.courses, *c)
	return nil
}

func (r *stubCourseRepo) Update(_ context.Context, c *domain.Course) error {
	for i := range r.courses {
		if r.courses[i].ID == c.ID {
			r.courses[i] = *c
			return nil
		}
	}
	return domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Delete(_ context.Context, id int64) error {
	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return domain.ErrCourseNotFound
}

type stubScheduleRepo struct {
	sets   map[int64]map[int64]bool
	addErr error
}

func newStubScheduleRepo() *stubScheduleRepo {
	return &stubScheduleRepo{sets: make(map[int64]map[int64]bool)}
}

func (r *stubScheduleRepo) CourseIDs(_ context.Context, userID int64) ([]int64, error) {
	var ids []int64
	for id := range r.sets[userID] {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *stubScheduleRepo) Add(_ context.Context, userID, courseID int64) error {
	if r.addErr != nil {
		return r.addErr
	}
	if r.sets[userID] == nil {
		r.sets[userID] = make(map[int64]bool)
	}
	r.sets[userID][courseID] = true
	return nil
}

func (r *stubScheduleRepo) Remove(_ context.Context, userID, courseID int64) error {
	delete(r.sets[userID], courseID)
	return nil
}

type stubUserRepo struct {
	users map[string]*domain.User
	err   error
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func seedCourses() []domain.Course {
	return []domain.Course{
		{ID: 1, Name: "Web Development", Description: "Learn the fundamentals of modern web development.", Subject: "WEB", Credits: 3},
		{ID: 2, Name: "Intro to Programming", Description: "Build core programming foundations and problem-solving skills.", Subject: "CS", Credits: 4},
	}
}

func credits(v float64) *float64 { return &v }
