package post

import (
	"context"
	"html"
	"strings"

	"anoa.com/socialfeed/internal/entity"
	postDto "anoa.com/socialfeed/internal/modules/post/dto"
	"anoa.com/socialfeed/internal/modules/post/repository"
	"anoa.com/socialfeed/pkg/apperror"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
)

const (
	MsgEmptyContent = "Please enter some content before posting."
	MsgCreated      = "Your post has been created!"
)

type PostService interface {
	ListPosts(ctx context.Context) []entity.Post
	FindPost(ctx context.Context, id string) (*entity.Post, bool)
	// CreatePost validates a composed post and returns its preview. Nothing is
	// stored; the catalog stays read-only.
	CreatePost(ctx context.Context, req postDto.CreatePostRequest) (*entity.Post, error)
}

type postService struct {
	repo      repository.PostRepository
	author    entity.Author
	sanitizer *bluemonday.Policy
}

func NewPostService(repo repository.PostRepository, author entity.Author) PostService {
	return &postService{
		repo:      repo,
		author:    author,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *postService) ListPosts(ctx context.Context) []entity.Post {
	return s.repo.FindAll(ctx)
}

func (s *postService) FindPost(ctx context.Context, id string) (*entity.Post, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *postService) CreatePost(ctx context.Context, req postDto.CreatePostRequest) (*entity.Post, error) {
	text := s.cleanContent(req.Content)
	if text == "" {
		return nil, apperror.Invalid(MsgEmptyContent)
	}

	content := entity.PostContent{Type: entity.ContentType(req.Type)}
	switch content.Type {
	case entity.ContentImage:
		content.ImageURL = req.ImageURL
		content.ImageAlt = text
	case entity.ContentText, entity.ContentQuote:
		content.Text = text
	default:
		return nil, apperror.Invalid("Post type must be one of: text, image, quote")
	}

	post := &entity.Post{
		ID:        uuid.NewString(),
		Author:    s.author,
		Content:   content,
		Timestamp: "now",
	}

	logger.Log.WithFields(logrus.Fields{
		"post_id": post.ID,
		"type":    content.Type,
	}).Info("post composed")

	return post, nil
}

// cleanContent strips markup and surrounding whitespace.
func (s *postService) cleanContent(content string) string {
	sanitized := s.sanitizer.Sanitize(content)
	return strings.TrimSpace(html.UnescapeString(sanitized))
}
