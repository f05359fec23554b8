package activity

import (
	"context"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/activity/repository"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIconFor(t *testing.T) {
	light := theme.PaletteFor(false)
	dark := theme.PaletteFor(true)

	tests := []struct {
		typ       entity.ActivityType
		name      string
		lightWant string
		darkWant  string
	}{
		{entity.ActivityLike, "heart", "#ef4444", "#ef4444"},
		{entity.ActivityComment, "chatbubble", light.Primary, dark.Primary},
		{entity.ActivityFollow, "person-add", light.Success, dark.Success},
		{entity.ActivityMention, "at", light.Warning, dark.Warning},
		{entity.ActivityType("repost"), "notifications", light.TextSecondary, dark.TextSecondary},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, Icon{Name: tt.name, Color: tt.lightWant}, IconFor(tt.typ, light))
			assert.Equal(t, Icon{Name: tt.name, Color: tt.darkWant}, IconFor(tt.typ, dark))
		})
	}
}

func TestEntries(t *testing.T) {
	svc := NewActivityService(repository.NewActivityRepository(bootstrap.SeedCatalog().Activities))

	items := svc.ListActivities(context.Background())
	require.Len(t, items, 5)

	entries := svc.Entries(context.Background(), theme.PaletteFor(true))
	require.Len(t, entries, len(items))
	for i, e := range entries {
		assert.Equal(t, items[i], e.ActivityItem)
	}
	assert.Equal(t, "heart", entries[0].Icon.Name)
	assert.Equal(t, "person-add", entries[2].Icon.Name)
	assert.Empty(t, entries[2].PostImage)
}
