package redis

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ScheduleRepository keeps each user's enrollments in a Redis set.
// Key format: schedule:<user_id>
type ScheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// CourseIDs returns the members of the user's set in ascending order.
// Members that are not integers are skipped.
func (r *ScheduleRepository) CourseIDs(ctx context.Context, userID int64) ([]int64, error) {
	members, err := r.client.SMembers(ctx, r.key(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("schedule members: %w", err)
	}

	ids := make([]int64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseInt(m, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *ScheduleRepository) Add(ctx context.Context, userID, courseID int64) error {
	if err := r.client.SAdd(ctx, r.key(userID), courseID).Err(); err != nil {
		return fmt.Errorf("schedule add: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) Remove(ctx context.Context, userID, courseID int64) error {
	if err := r.client.SRem(ctx, r.key(userID), courseID).Err(); err != nil {
		return fmt.Errorf("schedule remove: %w", err)
	}
	return nil
}

func (r *ScheduleRepository) key(userID int64) string {
	return fmt.Sprintf("schedule:%d", userID)
}
