package dto

import "anoa.com/socialfeed/internal/entity"

type CreatePostRequest struct {
	Type     string `json:"type" binding:"required,oneof=text image quote"`
	Content  string `json:"content" binding:"max=1000"`
	ImageURL string `json:"image_url" binding:"omitempty,url"`
}

type CreatePostResponse struct {
	Message string      `json:"message"`
	Post    entity.Post `json:"post"`
}

type SearchResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Data  []entity.Post `json:"data"`
}
