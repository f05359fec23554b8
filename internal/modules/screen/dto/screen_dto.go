package dto

import (
	activity "anoa.com/socialfeed/internal/modules/activity/service"
	categoryDto "anoa.com/socialfeed/internal/modules/category/dto"
	commentDto "anoa.com/socialfeed/internal/modules/comment/dto"
	"anoa.com/socialfeed/internal/modules/post/viewmodel"
	profileDto "anoa.com/socialfeed/internal/modules/profile/dto"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
)

// Frame is embedded in every screen payload so the client can paint without
// a separate theme request.
type Frame struct {
	Destination string        `json:"destination"`
	IsDarkMode  bool          `json:"is_dark_mode"`
	Palette     theme.Palette `json:"palette"`
}

// Action is a navigation affordance rendered as a button.
type Action struct {
	Label       string `json:"label"`
	Destination string `json:"destination"`
	Icon        string `json:"icon,omitempty"`
}

// Option is a toolbar affordance with no navigation target.
type Option struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Header struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ToggleIcon  string `json:"toggle_icon,omitempty"`
	ShowBack    bool   `json:"show_back,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
}

type Hero struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type HomeScreen struct {
	Frame
	ViewID  string               `json:"view_id"`
	Header  Header               `json:"header"`
	Hero    Hero                 `json:"hero"`
	Posts   []viewmodel.PostView `json:"posts"`
	EndText string               `json:"end_text"`
}

type TrendingItem struct {
	Rank     int    `json:"rank"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type ExploreScreen struct {
	Frame
	Header            Header                         `json:"header"`
	SearchPlaceholder string                         `json:"search_placeholder"`
	Query             string                         `json:"query,omitempty"`
	Results           []viewmodel.PostView           `json:"results,omitempty"`
	Categories        []categoryDto.CategoryResponse `json:"categories"`
	Trending          []TrendingItem                 `json:"trending"`
}

type Banner struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type EmptyState struct {
	Icon     string  `json:"icon"`
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle,omitempty"`
	Action   *Action `json:"action,omitempty"`
}

// CategoryFeedScreen is either a feed or, when NotFound is set, the error
// state with a back action.
type CategoryFeedScreen struct {
	Frame
	NotFound   bool                 `json:"not_found"`
	ViewID     string               `json:"view_id,omitempty"`
	CategoryID string               `json:"category_id"`
	Title      string               `json:"title"`
	Message    string               `json:"message,omitempty"`
	Action     *Action              `json:"action,omitempty"`
	Header     *Header              `json:"header,omitempty"`
	Banner     *Banner              `json:"banner,omitempty"`
	Posts      []viewmodel.PostView `json:"posts,omitempty"`
	Empty      *EmptyState          `json:"empty,omitempty"`
	EndText    string               `json:"end_text,omitempty"`
}

type CommentsSection struct {
	Title            string                       `json:"title"`
	Comments         []commentDto.CommentResponse `json:"comments"`
	InputPlaceholder string                       `json:"input_placeholder"`
}

type PostDetailScreen struct {
	Frame
	ViewID string `json:"view_id"`
	// Fallback is set when the requested post was unknown and the first
	// catalog post is shown instead.
	Fallback bool               `json:"fallback"`
	Header   Header             `json:"header"`
	Post     viewmodel.PostView `json:"post"`
	Comments CommentsSection    `json:"comments"`
}

type ActivitySection struct {
	Title string           `json:"title"`
	Items []activity.Entry `json:"items"`
}

type ActivityScreen struct {
	Frame
	Header    Header            `json:"header"`
	Sections  []ActivitySection `json:"sections"`
	EmptyText string            `json:"empty_text"`
}

type ProfileScreen struct {
	Frame
	profileDto.ProfileResponse
	FollowLabel string `json:"follow_label"`
}

type PostTypeOption struct {
	Type     string `json:"type"`
	Icon     string `json:"icon"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type CreateScreen struct {
	Frame
	Header           Header           `json:"header"`
	CancelLabel      string           `json:"cancel_label"`
	PostTypes        []PostTypeOption `json:"post_types"`
	Placeholder      string           `json:"placeholder"`
	QuotePlaceholder string           `json:"quote_placeholder"`
	MaxLength        int              `json:"max_length"`
	Options          []Option         `json:"options"`
	SubmitPath       string           `json:"submit_path"`
}

type PostInteractionResponse struct {
	ViewID string             `json:"view_id"`
	Post   viewmodel.PostView `json:"post"`
}

type RefreshResponse struct {
	Frame
	ViewID string               `json:"view_id"`
	Posts  []viewmodel.PostView `json:"posts"`
}
