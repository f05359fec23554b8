package repository

import (
	"context"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllKeepsFeedOrder(t *testing.T) {
	repo := NewPostRepository(bootstrap.SeedCatalog().Posts)

	posts := repo.FindAll(context.Background())
	require.Len(t, posts, 6)

	var ids []string
	for _, p := range posts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
}

func TestFindByID(t *testing.T) {
	repo := NewPostRepository(bootstrap.SeedCatalog().Posts)

	post, ok := repo.FindByID(context.Background(), "4")
	require.True(t, ok)
	assert.Equal(t, "steel_glass_poet", post.Author.Username)

	post, ok = repo.FindByID(context.Background(), "404")
	assert.False(t, ok)
	assert.Nil(t, post)
}

func TestCallersCannotMutateCatalog(t *testing.T) {
	seed := bootstrap.SeedCatalog().Posts
	repo := NewPostRepository(seed)

	seed[0].Stats.Likes = -1
	all := repo.FindAll(context.Background())
	all[1].Stats.Likes = -1
	found, _ := repo.FindByID(context.Background(), "3")
	found.Stats.Likes = -1

	assert.Equal(t, 1247, repo.FindAll(context.Background())[0].Stats.Likes)
	p2, _ := repo.FindByID(context.Background(), "2")
	assert.Equal(t, 456, p2.Stats.Likes)
	p3, _ := repo.FindByID(context.Background(), "3")
	assert.Equal(t, 789, p3.Stats.Likes)
}
