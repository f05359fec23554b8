package profile

import (
	"context"
	"errors"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfileDefaultsToPhotos(t *testing.T) {
	svc := NewProfileService(bootstrap.SeedCatalog().Profile)

	res, err := svc.GetProfile(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "evie_sharon", res.User.Username)
	assert.Equal(t, "Norway", res.Location)
	assert.Equal(t, TabPhotos, res.ActiveTab)
	assert.Len(t, res.Content.Photos, 5)

	require.Len(t, res.Stats, 3)
	assert.Equal(t, "34.2K", res.Stats[0].Text)
	assert.Equal(t, "851", res.Stats[1].Text)
	assert.Equal(t, "947", res.Stats[2].Text)

	require.Len(t, res.Tabs, 3)
	assert.True(t, res.Tabs[0].Active)
	assert.False(t, res.Tabs[1].Active)
}

func TestGetProfileTabs(t *testing.T) {
	svc := NewProfileService(bootstrap.SeedCatalog().Profile)

	about, err := svc.GetProfile(context.Background(), TabAbout)
	require.NoError(t, err)
	assert.Equal(t, "About", about.Content.Title)
	assert.NotEmpty(t, about.Content.Text)
	assert.Empty(t, about.Content.Photos)
	assert.True(t, about.Tabs[1].Active)

	awards, err := svc.GetProfile(context.Background(), TabAwards)
	require.NoError(t, err)
	assert.Equal(t, "No awards yet", awards.Content.EmptyText)
}

func TestGetProfileUnknownTab(t *testing.T) {
	svc := NewProfileService(bootstrap.SeedCatalog().Profile)

	res, err := svc.GetProfile(context.Background(), "videos")
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestPhotosAreCopied(t *testing.T) {
	svc := NewProfileService(bootstrap.SeedCatalog().Profile)

	res, err := svc.GetProfile(context.Background(), TabPhotos)
	require.NoError(t, err)
	res.Content.Photos[0] = "changed"

	again, err := svc.GetProfile(context.Background(), TabPhotos)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Content.Photos[0])
}
