package repository

import (
	"context"

	"anoa.com/socialfeed/internal/entity"
)

// PostRepository reads the static post catalog. Results are copies; the
// canonical records never change.
type PostRepository interface {
	FindAll(ctx context.Context) []entity.Post
	FindByID(ctx context.Context, id string) (*entity.Post, bool)
}

type postRepository struct {
	posts []entity.Post
	index map[string]int
}

func NewPostRepository(posts []entity.Post) PostRepository {
	r := &postRepository{
		posts: append([]entity.Post(nil), posts...),
		index: make(map[string]int, len(posts)),
	}
	for i, p := range r.posts {
		if _, dup := r.index[p.ID]; !dup {
			r.index[p.ID] = i
		}
	}
	return r
}

func (r *postRepository) FindAll(ctx context.Context) []entity.Post {
	return append([]entity.Post(nil), r.posts...)
}

func (r *postRepository) FindByID(ctx context.Context, id string) (*entity.Post, bool) {
	i, ok := r.index[id]
	if !ok {
		return nil, false
	}
	post := r.posts[i]
	return &post, true
}
