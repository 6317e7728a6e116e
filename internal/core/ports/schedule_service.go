package ports

import (
	"context"

	"github.com/coursehub/catalog-api/internal/core/domain"
)

// ScheduleService manages the authenticated user's own schedule.
type ScheduleService interface {
	GetSchedule(ctx context.Context, userID int64) ([]domain.Course, error)
	Enroll(ctx context.Context, userID, courseID int64) error
	Drop(ctx context.Context, userID, courseID int64) error
}
