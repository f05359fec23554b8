package category

import (
	"context"
	"testing"

	"anoa.com/socialfeed/internal/bootstrap"
	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/category/repository"
	postRepo "anoa.com/socialfeed/internal/modules/post/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(filter PostFilter) CategoryService {
	catalog := bootstrap.SeedCatalog()
	return NewCategoryService(
		repository.NewCategoryRepository(catalog.Categories),
		postRepo.NewPostRepository(catalog.Posts),
		filter,
	)
}

func ids(posts []entity.Post) []string {
	out := []string{}
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestPostsForCategoryAssignment(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	tests := map[string][]string{
		"1":       {"1", "4"},
		"2":       {"2", "5"},
		"3":       {"3", "6"},
		"4":       {"1", "2", "3"},
		"5":       {"2", "3", "4"},
		"6":       {"3", "4", "5"},
		"missing": {"1", "2", "3", "4", "5", "6"},
		"":        {"1", "2", "3", "4", "5", "6"},
	}

	for categoryID, want := range tests {
		assert.Equal(t, want, ids(svc.PostsForCategory(ctx, categoryID)), "category %q", categoryID)
	}
}

func TestPostsForCategoryIsSubsetOfFeed(t *testing.T) {
	svc := newService(nil)
	ctx := context.Background()

	feed := map[string]entity.Post{}
	for _, p := range bootstrap.SeedCatalog().Posts {
		feed[p.ID] = p
	}

	for _, c := range svc.ListCategories(ctx) {
		for _, p := range svc.PostsForCategory(ctx, c.ID) {
			original, ok := feed[p.ID]
			require.True(t, ok, "category %s returned unknown post %s", c.ID, p.ID)
			assert.Equal(t, original, p)
		}
	}
}

func TestPlaceholderFilterClampsShortFeeds(t *testing.T) {
	f := NewPlaceholderFilter()
	short := bootstrap.SeedCatalog().Posts[:2]

	assert.Equal(t, []string{"2"}, ids(f.PostsForCategory("5", short)))
	assert.Equal(t, []string{}, ids(f.PostsForCategory("6", short)))
	assert.Equal(t, []string{"1"}, ids(f.PostsForCategory("1", short)))
	assert.Empty(t, f.PostsForCategory("4", nil))
}

type onlyFirst struct{}

func (onlyFirst) PostsForCategory(categoryID string, posts []entity.Post) []entity.Post {
	return posts[:1]
}

func TestFilterIsSwappable(t *testing.T) {
	svc := newService(onlyFirst{})
	assert.Equal(t, []string{"1"}, ids(svc.PostsForCategory(context.Background(), "3")))
}

func TestFindCategory(t *testing.T) {
	svc := newService(nil)

	c, ok := svc.FindCategory(context.Background(), "3")
	require.True(t, ok)
	assert.Equal(t, "Brutalism", c.Name)

	c, ok = svc.FindCategory(context.Background(), "99")
	assert.False(t, ok)
	assert.Nil(t, c)
}
