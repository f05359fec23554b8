package entity

type ActivityType string

const (
	ActivityLike    ActivityType = "like"
	ActivityComment ActivityType = "comment"
	ActivityFollow  ActivityType = "follow"
	ActivityMention ActivityType = "mention"
)

type ActivityItem struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	User      Author       `json:"user"`
	Content   string       `json:"content"`
	Timestamp string       `json:"timestamp"`
	PostImage string       `json:"post_image,omitempty"`
}
