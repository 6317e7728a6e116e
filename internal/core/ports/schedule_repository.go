package ports

import "context"

// ScheduleRepository stores each user's enrollment set. Course ids are not
// checked against the catalog here.
type ScheduleRepository interface {
	CourseIDs(ctx context.Context, userID int64) ([]int64, error)
	// Add is idempotent.
	Add(ctx context.Context, userID, courseID int64) error
	// Remove is a no-op for ids that are not members.
	Remove(ctx context.Context, userID, courseID int64) error
}
