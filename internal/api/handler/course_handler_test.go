package handler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"testing"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
)

type stubCourseService struct {
	listFn   func(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error)
	getFn    func(ctx context.Context, id int64) (*domain.Course, error)
	createFn func(ctx context.Context, in ports.CourseInput) (*domain.Course, error)
	updateFn func(ctx context.Context, id int64, in ports.CourseInput) (*domain.Course, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubCourseService) ListCourses(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	return s.listFn(ctx, filter)
}

func (s *stubCourseService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	return s.getFn(ctx, id)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	return s.createFn(ctx, in)
}

func (s *stubCourseService) UpdateCourse(ctx context.Context, id int64, in ports.CourseInput) (*domain.Course, error) {
	return s.updateFn(ctx, id, in)
}

func (s *stubCourseService) DeleteCourse(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func TestCourseHandler_List_PassesQuery(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{
		listFn: func(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
			if filter.Query != "web" {
				t.Fatalf("expected query web, got %q", filter.Query)
			}
			return []domain.Course{{ID: 1, Name: "Web Development"}}, nil
		},
	})

	c, rec := newJSONContext(http.MethodGet, "/courses?q=web", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestCourseHandler_Get_BadIDIsNotFound(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{
		getFn: func(ctx context.Context, id int64) (*domain.Course, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	c, _ := newJSONContext(http.MethodGet, "/courses/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	if err := h.Get(c); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseHandler_Create_Returns201(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{
		createFn: func(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
			if in.Name != "Databases" || in.Credits == nil || *in.Credits != 3 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Course{ID: 3, Name: in.Name, Description: in.Description, Subject: in.Subject, Credits: *in.Credits}, nil
		},
	})

	c, rec := newJSONContext(http.MethodPost, "/courses", `{"name":"Databases","description":"SQL","subject":"DB","credits":"3"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var got domain.Course
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("expected id 3, got %d", got.ID)
	}
}

func TestCourseHandler_Create_WrongTypesReachService(t *testing.T) {
	called := false
	h := NewCourseHandler(&stubCourseService{
		createFn: func(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
			called = true
			if in.Credits == nil || !math.IsNaN(*in.Credits) {
				t.Fatalf("expected NaN credits, got %v", in.Credits)
			}
			return nil, domain.ErrInvalidCredits
		},
	})

	c, _ := newJSONContext(http.MethodPost, "/courses", `{"name":"A","description":"B","subject":"C","credits":{"n":1}}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrInvalidCredits) {
		t.Fatalf("expected ErrInvalidCredits, got %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
}

func TestCourseHandler_Update_PassesIDAndInput(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{
		updateFn: func(ctx context.Context, id int64, in ports.CourseInput) (*domain.Course, error) {
			if id != 2 {
				t.Fatalf("expected id 2, got %d", id)
			}
			if in.Credits != nil {
				t.Fatalf("absent credits must stay nil")
			}
			return nil, domain.ErrMissingFields
		},
	})

	c, _ := newJSONContext(http.MethodPut, "/courses/2", `{"name":"X"}`)
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := h.Update(c); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestCourseHandler_Delete_Returns204(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{
		deleteFn: func(ctx context.Context, id int64) error {
			if id != 1 {
				t.Fatalf("expected id 1, got %d", id)
			}
			return nil
		},
	})

	c, rec := newJSONContext(http.MethodDelete, "/courses/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
