package search

import (
	"context"
	"encoding/json"
	"strings"

	"anoa.com/socialfeed/internal/entity"
	postRepo "anoa.com/socialfeed/internal/modules/post/repository"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/meilisearch/meilisearch-go"
	"github.com/pkg/errors"
)

const (
	postsIndex  = "posts"
	searchLimit = 20
)

type meiliPostDoc struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Text        string `json:"text"`
}

type meiliHits struct {
	Hits []struct {
		ID string `json:"id"`
	} `json:"hits"`
}

type meiliSearcher struct {
	client   meilisearch.ServiceManager
	repo     postRepo.PostRepository
	fallback Searcher
}

// NewMeiliSearcher indexes the catalog into Meilisearch and searches through
// it. Search failures are served by fallback.
func NewMeiliSearcher(ctx context.Context, client meilisearch.ServiceManager, repo postRepo.PostRepository, fallback Searcher) (Searcher, error) {
	s := &meiliSearcher{client: client, repo: repo, fallback: fallback}
	if err := s.indexCatalog(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *meiliSearcher) indexCatalog(ctx context.Context) error {
	posts := s.repo.FindAll(ctx)
	docs := make([]meiliPostDoc, 0, len(posts))
	for _, p := range posts {
		text := p.Content.Text
		if p.Content.Type == entity.ContentImage {
			text = p.Content.ImageAlt
		}
		docs = append(docs, meiliPostDoc{
			ID:          p.ID,
			Username:    p.Author.Username,
			DisplayName: p.Author.DisplayName,
			Text:        text,
		})
	}

	task, err := s.client.Index(postsIndex).AddDocuments(docs, strPtr("id"))
	if err != nil {
		return errors.Wrap(err, "index posts")
	}
	logger.Log.WithField("task_uid", task.TaskUID).Infof("indexed %d posts", len(docs))
	return nil
}

func (s *meiliSearcher) Search(ctx context.Context, query string) ([]entity.Post, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Post{}, nil
	}

	raw, err := s.client.Index(postsIndex).SearchRaw(query, &meilisearch.SearchRequest{
		Limit:                searchLimit,
		AttributesToRetrieve: []string{"id"},
	})
	if err != nil {
		logger.Log.WithError(err).Warn("meilisearch query failed, scanning catalog")
		return s.fallback.Search(ctx, query)
	}

	var res meiliHits
	if err := json.Unmarshal(*raw, &res); err != nil {
		logger.Log.WithError(err).Warn("meilisearch response unreadable, scanning catalog")
		return s.fallback.Search(ctx, query)
	}

	posts := make([]entity.Post, 0, len(res.Hits))
	for _, hit := range res.Hits {
		// Stale documents may outlive the catalog.
		if p, ok := s.repo.FindByID(ctx, hit.ID); ok {
			posts = append(posts, *p)
		}
	}
	return posts, nil
}

func strPtr(s string) *string {
	return &s
}
