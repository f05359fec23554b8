package category

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/category/repository"
	postRepo "anoa.com/socialfeed/internal/modules/post/repository"
)

type CategoryService interface {
	ListCategories(ctx context.Context) []entity.Category
	FindCategory(ctx context.Context, id string) (*entity.Category, bool)
	// PostsForCategory never fails; an unknown id yields the full feed.
	PostsForCategory(ctx context.Context, categoryID string) []entity.Post
}

type categoryService struct {
	repo     repository.CategoryRepository
	postRepo postRepo.PostRepository
	filter   PostFilter
}

func NewCategoryService(repo repository.CategoryRepository, postRepo postRepo.PostRepository, filter PostFilter) CategoryService {
	if filter == nil {
		filter = NewPlaceholderFilter()
	}
	return &categoryService{
		repo:     repo,
		postRepo: postRepo,
		filter:   filter,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) []entity.Category {
	return s.repo.FindAll(ctx)
}

func (s *categoryService) FindCategory(ctx context.Context, id string) (*entity.Category, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *categoryService) PostsForCategory(ctx context.Context, categoryID string) []entity.Post {
	return s.filter.PostsForCategory(categoryID, s.postRepo.FindAll(ctx))
}
