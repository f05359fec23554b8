package repository

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
)

type ActivityRepository interface {
	FindAll(ctx context.Context) []entity.ActivityItem
}

type activityRepository struct {
	items []entity.ActivityItem
}

func NewActivityRepository(items []entity.ActivityItem) ActivityRepository {
	return &activityRepository{items: append([]entity.ActivityItem(nil), items...)}
}

// FindAll returns items newest first, as seeded.
func (r *activityRepository) FindAll(ctx context.Context) []entity.ActivityItem {
	return append([]entity.ActivityItem(nil), r.items...)
}
