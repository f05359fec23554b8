package activity

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/activity/repository"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
)

// Entry is an activity item paired with its resolved icon.
type Entry struct {
	entity.ActivityItem
	Icon Icon `json:"icon"`
}

type ActivityService interface {
	ListActivities(ctx context.Context) []entity.ActivityItem
	// Entries decorates the list with icons for the given palette.
	Entries(ctx context.Context, palette theme.Palette) []Entry
}

type activityService struct {
	repo repository.ActivityRepository
}

func NewActivityService(repo repository.ActivityRepository) ActivityService {
	return &activityService{repo: repo}
}

func (s *activityService) ListActivities(ctx context.Context) []entity.ActivityItem {
	return s.repo.FindAll(ctx)
}

func (s *activityService) Entries(ctx context.Context, palette theme.Palette) []Entry {
	items := s.repo.FindAll(ctx)
	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{ActivityItem: item, Icon: IconFor(item.Type, palette)})
	}
	return entries
}
