package dto

import (
	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
)

type CategoryResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	ImageURL       string `json:"image_url"`
	PostCount      int    `json:"post_count"`
	PostCountLabel string `json:"post_count_label"`
}

func NewCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		PostCount:      c.PostCount,
		PostCountLabel: viewmodel.FormatCount(c.PostCount) + " posts",
	}
}

type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}
