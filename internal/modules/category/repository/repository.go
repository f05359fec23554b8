package repository

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
)

type CategoryRepository interface {
	FindAll(ctx context.Context) []entity.Category
	FindByID(ctx context.Context, id string) (*entity.Category, bool)
}

type categoryRepository struct {
	categories []entity.Category
}

func NewCategoryRepository(categories []entity.Category) CategoryRepository {
	return &categoryRepository{categories: append([]entity.Category(nil), categories...)}
}

func (r *categoryRepository) FindAll(ctx context.Context) []entity.Category {
	return append([]entity.Category(nil), r.categories...)
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, bool) {
	for _, c := range r.categories {
		if c.ID == id {
			category := c
			return &category, true
		}
	}
	return nil, false
}
