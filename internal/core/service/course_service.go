package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
	"github.com/coursehub/catalog-api/internal/pkg/metrics"
)

// catalogKey serializes every catalog mutation on one worker.
const catalogKey = "catalog"

// Serializer runs a mutation to completion before the next one with the same key.
type Serializer interface {
	Do(ctx context.Context, key string, job func(ctx context.Context) error) error
}

type CourseService struct {
	repo     ports.CourseRepository
	mutate   Serializer
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, mutate Serializer, logger zerolog.Logger) *CourseService {
	return &CourseService{
		repo:     repo,
		mutate:   mutate,
		validate: newCourseValidator(),
		logger:   logger,
	}
}

// ListCourses returns the catalog in insertion order, optionally narrowed to
// courses whose name or subject contains filter.Query (case-insensitive).
func (s *CourseService) ListCourses(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	if q == "" {
		return courses, nil
	}

	matched := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Subject), q) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCourse validates the input and stores it under the next id.
func (s *CourseService) CreateCourse(ctx context.Context, in ports.CourseInput) (*domain.Course, error) {
	var created *domain.Course
	err := s.mutate.Do(ctx, catalogKey, func(ctx context.Context) error {
		fields, err := s.checkInput(in)
		if err != nil {
			return err
		}

		c := &domain.Course{
			Name:        fields.Name,
			Description: fields.Description,
			Subject:     fields.Subject,
			Credits:     *fields.Credits,
		}
		if err := s.repo.Create(ctx, c); err != nil {
			return fmt.Errorf("create course: %w", err)
		}
		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CourseMutationsTotal.WithLabelValues("create").Inc()
	s.logger.Info().Int64("course_id", created.ID).Str("subject", created.Subject).Msg("course created")
	return created, nil
}

// UpdateCourse replaces all fields of an existing course. The id is looked up
// before the input is validated, so an unknown id wins over a bad payload.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, in ports.CourseInput) (*domain.Course, error) {
	var updated *domain.Course
	err := s.mutate.Do(ctx, catalogKey, func(ctx context.Context) error {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		fields, err := s.checkInput(in)
		if err != nil {
			return err
		}

		existing.Name = fields.Name
		existing.Description = fields.Description
		existing.Subject = fields.Subject
		existing.Credits = *fields.Credits
		if err := s.repo.Update(ctx, existing); err != nil {
			if errors.Is(err, domain.ErrCourseNotFound) {
				return err
			}
			return fmt.Errorf("update course: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CourseMutationsTotal.WithLabelValues("update").Inc()
	s.logger.Info().Int64("course_id", id).Msg("course updated")
	return updated, nil
}

// DeleteCourse removes a course. Schedules that reference it are left alone.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	err := s.mutate.Do(ctx, catalogKey, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	metrics.CourseMutationsTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Int64("course_id", id).Msg("course deleted")
	return nil
}

func (s *CourseService) checkInput(in ports.CourseInput) (courseFields, error) {
	fields, err := validateCourse(s.validate, in)
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		metrics.CourseValidationErrorsTotal.WithLabelValues("missing_fields").Inc()
	case errors.Is(err, domain.ErrInvalidCredits):
		metrics.CourseValidationErrorsTotal.WithLabelValues("invalid_credits").Inc()
	}
	return fields, err
}
