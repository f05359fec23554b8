package activity

import (
	"anoa.com/socialfeed/internal/entity"
	theme "anoa.com/socialfeed/internal/modules/theme/service"
)

// likeColor is fixed in both modes.
const likeColor = "#ef4444"

type Icon struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IconFor picks the glyph for an activity type and resolves its color against
// the given palette. Unknown types get the generic bell.
func IconFor(t entity.ActivityType, palette theme.Palette) Icon {
	switch t {
	case entity.ActivityLike:
		return Icon{Name: "heart", Color: likeColor}
	case entity.ActivityComment:
		return Icon{Name: "chatbubble", Color: palette.Color(theme.RolePrimary)}
	case entity.ActivityFollow:
		return Icon{Name: "person-add", Color: palette.Color(theme.RoleSuccess)}
	case entity.ActivityMention:
		return Icon{Name: "at", Color: palette.Color(theme.RoleWarning)}
	default:
		return Icon{Name: "notifications", Color: palette.Color(theme.RoleTextSecondary)}
	}
}
