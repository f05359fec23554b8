package dto

import "anoa.com/socialfeed/internal/entity"

type ProfileQuery struct {
	Tab string `form:"tab" binding:"omitempty,oneof=photos about awards"`
}

type StatItem struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Text  string `json:"text"`
}

type TabButton struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// TabContent holds the body of the active tab. Only the fields of that tab
// are set.
type TabContent struct {
	Title     string   `json:"title"`
	Photos    []string `json:"photos,omitempty"`
	Text      string   `json:"text,omitempty"`
	EmptyText string   `json:"empty_text,omitempty"`
}

type ProfileResponse struct {
	User      entity.Author `json:"user"`
	Location  string        `json:"location"`
	Stats     []StatItem    `json:"stats"`
	Tabs      []TabButton   `json:"tabs"`
	ActiveTab string        `json:"active_tab"`
	Content   TabContent    `json:"content"`
}
