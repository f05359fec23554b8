package category

import "anoa.com/socialfeed/internal/entity"

// PostFilter selects the posts shown in a category feed.
type PostFilter interface {
	PostsForCategory(categoryID string, posts []entity.Post) []entity.Post
}

type selector func(posts []entity.Post) []entity.Post

// placeholderFilter reproduces the demo assignment: the first three
// categories partition the feed by index modulo 3, the next three take
// fixed windows, and anything else gets the whole feed.
type placeholderFilter struct {
	rules map[string]selector
}

func NewPlaceholderFilter() PostFilter {
	return &placeholderFilter{
		rules: map[string]selector{
			"1": byModulo(0),
			"2": byModulo(1),
			"3": byModulo(2),
			"4": window(0, 3),
			"5": window(1, 4),
			"6": window(2, 5),
		},
	}
}

func (f *placeholderFilter) PostsForCategory(categoryID string, posts []entity.Post) []entity.Post {
	rule, ok := f.rules[categoryID]
	if !ok {
		return append([]entity.Post(nil), posts...)
	}
	return rule(posts)
}

func byModulo(remainder int) selector {
	return func(posts []entity.Post) []entity.Post {
		out := make([]entity.Post, 0, len(posts)/3+1)
		for i, p := range posts {
			if i%3 == remainder {
				out = append(out, p)
			}
		}
		return out
	}
}

// window returns posts[start:end], clamped to the list length.
func window(start, end int) selector {
	return func(posts []entity.Post) []entity.Post {
		lo, hi := min(start, len(posts)), min(end, len(posts))
		return append([]entity.Post{}, posts[lo:hi]...)
	}
}
