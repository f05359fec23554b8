package repository

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
)

// CommentRepository serves the static comment list. Comments carry no post
// association, so every post sees the same thread.
type CommentRepository interface {
	FindAll(ctx context.Context) []entity.Comment
}

type commentRepository struct {
	comments []entity.Comment
}

func NewCommentRepository(comments []entity.Comment) CommentRepository {
	return &commentRepository{comments: append([]entity.Comment(nil), comments...)}
}

func (r *commentRepository) FindAll(ctx context.Context) []entity.Comment {
	return append([]entity.Comment(nil), r.comments...)
}
