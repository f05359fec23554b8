package dto

import (
	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
)

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=500"`
}

type CommentResponse struct {
	ID         string        `json:"id"`
	Author     entity.Author `json:"author"`
	Text       string        `json:"text"`
	Timestamp  string        `json:"timestamp"`
	Likes      int           `json:"likes"`
	LikesLabel string        `json:"likes_label"`
}

func NewCommentResponse(c entity.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Author:     c.Author,
		Text:       c.Text,
		Timestamp:  c.Timestamp,
		Likes:      c.Likes,
		LikesLabel: viewmodel.FormatCount(c.Likes),
	}
}

func NewCommentResponses(comments []entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}

type CommentListResponse struct {
	PostID string            `json:"post_id"`
	Count  int               `json:"count"`
	Data   []CommentResponse `json:"data"`
}
