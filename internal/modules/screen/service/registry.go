package screen

import (
	"sync"

	"anoa.com/socialfeed/internal/entity"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// view is one mounted instance of a post-rendering screen. Its view-models
// live and die with it, so a remount starts from catalog state again.
type view struct {
	id          string
	destination Destination

	mu     sync.Mutex
	order  []string
	models map[string]*viewmodel.PostViewModel
}

func newView(destination Destination, posts []entity.Post) *view {
	v := &view{
		id:          uuid.NewString(),
		destination: destination,
		order:       make([]string, 0, len(posts)),
		models:      make(map[string]*viewmodel.PostViewModel, len(posts)),
	}
	for _, p := range posts {
		if _, dup := v.models[p.ID]; dup {
			continue
		}
		v.order = append(v.order, p.ID)
		v.models[p.ID] = viewmodel.NewPostViewModel(p)
	}
	return v
}

func (v *view) snapshot() []viewmodel.PostView {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]viewmodel.PostView, 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.models[id].View())
	}
	return out
}

// apply runs fn against one post of the view and returns the resulting view.
func (v *view) apply(postID string, fn func(vm *viewmodel.PostViewModel)) (viewmodel.PostView, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	vm, ok := v.models[postID]
	if !ok {
		return viewmodel.PostView{}, false
	}
	fn(vm)
	return vm.View(), true
}

// ViewRegistry holds the most recently mounted views. The oldest view is
// evicted once capacity is reached.
type ViewRegistry struct {
	cache *lru.Cache
}

func NewViewRegistry(size int) (*ViewRegistry, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "create view registry")
	}
	return &ViewRegistry{cache: cache}, nil
}

func (r *ViewRegistry) mount(destination Destination, posts []entity.Post) *view {
	v := newView(destination, posts)
	r.cache.Add(v.id, v)
	return v
}

func (r *ViewRegistry) lookup(id string) (*view, bool) {
	value, ok := r.cache.Get(id)
	if !ok {
		return nil, false
	}
	return value.(*view), true
}

// Len reports the number of live views.
func (r *ViewRegistry) Len() int {
	return r.cache.Len()
}
