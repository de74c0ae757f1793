package app

import (
	"context"
	"fmt"

	"github.com/example/gridboard/internal/ports/primary"
	"github.com/example/gridboard/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	activityRepo secondary.ActivityRepository
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(activityRepo secondary.ActivityRepository) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		activityRepo: activityRepo,
	}
}

// ListActivity returns recent activity, newest first.
func (s *ActivityServiceImpl) ListActivity(ctx context.Context, filters primary.ActivityFilters) ([]*primary.Activity, error) {
	records, err := s.activityRepo.List(ctx, secondary.ActivityFilters{
		EntityID: filters.EntityID,
		Limit:    filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}

	activity := make([]*primary.Activity, len(records))
	for i, r := range records {
		activity[i] = s.recordToActivity(r)
	}
	return activity, nil
}

// Helper methods

func (s *ActivityServiceImpl) recordToActivity(r *secondary.ActivityRecord) *primary.Activity {
	return &primary.Activity{
		ID:         r.ID,
		ActorID:    r.ActorID,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Action:     r.Action,
		FieldName:  r.FieldName,
		OldValue:   r.OldValue,
		NewValue:   r.NewValue,
		CreatedAt:  r.CreatedAt,
	}
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
