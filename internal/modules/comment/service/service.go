package comment

import (
	"context"
	"html"
	"strings"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/comment/dto"
	"anoa.com/socialfeed/internal/modules/comment/repository"
	"anoa.com/socialfeed/pkg/apperror"
	"anoa.com/socialfeed/pkg/logger"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/sirupsen/logrus"
)

const MsgEmptyComment = "Comment cannot be empty."

type CommentService interface {
	// ListCommentsForPost returns the shared thread; postID does not narrow it.
	ListCommentsForPost(ctx context.Context, postID string) []entity.Comment
	// AddComment validates and echoes the comment without storing it.
	AddComment(ctx context.Context, postID string, req dto.CreateCommentRequest) (*entity.Comment, error)
}

type commentService struct {
	repo      repository.CommentRepository
	author    entity.Author
	sanitizer *bluemonday.Policy
}

func NewCommentService(repo repository.CommentRepository, author entity.Author) CommentService {
	return &commentService{
		repo:      repo,
		author:    author,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *commentService) ListCommentsForPost(ctx context.Context, postID string) []entity.Comment {
	return s.repo.FindAll(ctx)
}

func (s *commentService) AddComment(ctx context.Context, postID string, req dto.CreateCommentRequest) (*entity.Comment, error) {
	text := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(req.Text)))
	if text == "" {
		return nil, apperror.Invalid(MsgEmptyComment)
	}

	comment := &entity.Comment{
		ID:        uuid.NewString(),
		Author:    s.author,
		Text:      text,
		Timestamp: "now",
	}

	logger.Log.WithFields(logrus.Fields{
		"post_id":    postID,
		"comment_id": comment.ID,
	}).Info("comment accepted")

	return comment, nil
}
