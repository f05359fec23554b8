package search

import (
	"context"
	"strings"

	"anoa.com/socialfeed/internal/entity"
	postRepo "anoa.com/socialfeed/internal/modules/post/repository"
)

// Searcher finds catalog posts matching a free-text query. A blank query
// matches nothing.
type Searcher interface {
	Search(ctx context.Context, query string) ([]entity.Post, error)
}

type catalogSearcher struct {
	repo postRepo.PostRepository
}

// NewCatalogSearcher scans the in-memory catalog.
func NewCatalogSearcher(repo postRepo.PostRepository) Searcher {
	return &catalogSearcher{repo: repo}
}

func (s *catalogSearcher) Search(ctx context.Context, query string) ([]entity.Post, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []entity.Post{}, nil
	}

	matches := []entity.Post{}
	for _, p := range s.repo.FindAll(ctx) {
		if matchesPost(p, needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func matchesPost(p entity.Post, needle string) bool {
	for _, field := range []string{p.Author.Username, p.Author.DisplayName, p.Content.Text, p.Content.ImageAlt} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
