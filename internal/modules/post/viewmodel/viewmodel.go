package viewmodel

import "anoa.com/socialfeed/internal/entity"

// PostViewModel is the interaction state of one rendered post. It starts from
// the catalog record and is never written back. Not safe for concurrent use;
// the owning view serializes access.
type PostViewModel struct {
	post       entity.Post
	liked      bool
	likesCount int
	bookmarked bool
}

func NewPostViewModel(post entity.Post) *PostViewModel {
	return &PostViewModel{
		post:       post,
		liked:      post.IsLiked,
		likesCount: post.Stats.Likes,
		bookmarked: post.IsBookmarked,
	}
}

// ToggleLike flips the liked flag and moves the count by one in the same
// direction. The count is not clamped at zero.
func (vm *PostViewModel) ToggleLike() {
	vm.liked = !vm.liked
	if vm.liked {
		vm.likesCount++
	} else {
		vm.likesCount--
	}
}

func (vm *PostViewModel) ToggleBookmark() {
	vm.bookmarked = !vm.bookmarked
}

func (vm *PostViewModel) ID() string       { return vm.post.ID }
func (vm *PostViewModel) Liked() bool      { return vm.liked }
func (vm *PostViewModel) LikesCount() int  { return vm.likesCount }
func (vm *PostViewModel) Bookmarked() bool { return vm.bookmarked }

// PostView is the render-ready snapshot of a post.
type PostView struct {
	ID            string        `json:"id"`
	Author        entity.Author `json:"author"`
	Timestamp     string        `json:"timestamp"`
	Content       ContentBlock  `json:"content"`
	Liked         bool          `json:"liked"`
	Bookmarked    bool          `json:"bookmarked"`
	Likes         int           `json:"likes"`
	LikesLabel    string        `json:"likes_label"`
	CommentsLabel string        `json:"comments_label"`
	SharesLabel   string        `json:"shares_label"`
}

func (vm *PostViewModel) View() PostView {
	return PostView{
		ID:            vm.post.ID,
		Author:        vm.post.Author,
		Timestamp:     vm.post.Timestamp,
		Content:       RenderContent(vm.post.Content),
		Liked:         vm.liked,
		Bookmarked:    vm.bookmarked,
		Likes:         vm.likesCount,
		LikesLabel:    FormatCount(vm.likesCount),
		CommentsLabel: FormatCount(vm.post.Stats.Comments),
		SharesLabel:   FormatCount(vm.post.Stats.Shares),
	}
}
