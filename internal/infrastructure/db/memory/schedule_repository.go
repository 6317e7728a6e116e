package memory

import (
	"context"
	"sort"
	"sync"
)

// ScheduleRepository maps user ids to sets of course ids.
type ScheduleRepository struct {
	mu     sync.RWMutex
	byUser map[int64]map[int64]struct{}
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{byUser: make(map[int64]map[int64]struct{})}
}

// CourseIDs returns the user's enrolled ids in ascending order.
func (r *ScheduleRepository) CourseIDs(_ context.Context, userID int64) ([]int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := r.byUser[userID]
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *ScheduleRepository) Add(_ context.Context, userID, courseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byUser[userID]
	if !ok {
		set = make(map[int64]struct{})
		r.byUser[userID] = set
	}
	set[courseID] = struct{}{}
	return nil
}

func (r *ScheduleRepository) Remove(_ context.Context, userID, courseID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if set, ok := r.byUser[userID]; ok {
		delete(set, courseID)
	}
	return nil
}
