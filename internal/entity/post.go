package entity

type ContentType string

const (
	ContentImage ContentType = "image"
	ContentText  ContentType = "text"
	ContentQuote ContentType = "quote"
)

// Author is embedded by value; it is not a managed entity.
type Author struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar,omitempty"`
}

// PostContent is a tagged variant. Type decides whether Text or ImageURL is
// meaningful; the other field is never read.
type PostContent struct {
	Type     ContentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL string      `json:"image_url,omitempty"`
	ImageAlt string      `json:"image_alt,omitempty"`
}

type PostStats struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

type Post struct {
	ID           string      `json:"id"`
	Author       Author      `json:"author"`
	Content      PostContent `json:"content"`
	Stats        PostStats   `json:"stats"`
	Timestamp    string      `json:"timestamp"` // display label such as "2h", not orderable
	IsLiked      bool        `json:"is_liked"`
	IsBookmarked bool        `json:"is_bookmarked"`
}
