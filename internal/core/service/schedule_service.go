package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/core/domain"
	"github.com/coursehub/catalog-api/internal/core/ports"
	"github.com/coursehub/catalog-api/internal/pkg/metrics"
)

type ScheduleService struct {
	courses   ports.CourseRepository
	schedules ports.ScheduleRepository
	mutate    Serializer
	logger    zerolog.Logger
}

func NewScheduleService(
	courses ports.CourseRepository,
	schedules ports.ScheduleRepository,
	mutate Serializer,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		courses:   courses,
		schedules: schedules,
		mutate:    mutate,
		logger:    logger,
	}
}

// GetSchedule joins the user's enrolled ids with the live catalog. Ids of
// deleted courses are dropped silently; order follows the catalog.
func (s *ScheduleService) GetSchedule(ctx context.Context, userID int64) ([]domain.Course, error) {
	ids, err := s.schedules.CourseIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	enrolled := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		enrolled[id] = struct{}{}
	}

	all, err := s.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	out := make([]domain.Course, 0, len(ids))
	for _, c := range all {
		if _, ok := enrolled[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

// Enroll adds an existing course to the user's schedule. Enrolling twice is
// not an error.
func (s *ScheduleService) Enroll(ctx context.Context, userID, courseID int64) error {
	err := s.mutate.Do(ctx, scheduleKey(userID), func(ctx context.Context) error {
		if _, err := s.courses.FindByID(ctx, courseID); err != nil {
			return err
		}
		if err := s.schedules.Add(ctx, userID, courseID); err != nil {
			return fmt.Errorf("enroll: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ScheduleChangesTotal.WithLabelValues("enroll").Inc()
	s.logger.Debug().Int64("user_id", userID).Int64("course_id", courseID).Msg("course enrolled")
	return nil
}

// Drop removes a course from the user's schedule. Unknown ids are a no-op.
func (s *ScheduleService) Drop(ctx context.Context, userID, courseID int64) error {
	err := s.mutate.Do(ctx, scheduleKey(userID), func(ctx context.Context) error {
		if err := s.schedules.Remove(ctx, userID, courseID); err != nil {
			return fmt.Errorf("drop: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	metrics.ScheduleChangesTotal.WithLabelValues("drop").Inc()
	s.logger.Debug().Int64("user_id", userID).Int64("course_id", courseID).Msg("course dropped")
	return nil
}

func scheduleKey(userID int64) string {
	return fmt.Sprintf("schedule:%d", userID)
}
