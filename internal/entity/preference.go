package entity

import "time"

const (
	ThemeKey   = "theme"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Preference is a single device-local key/value pair.
type Preference struct {
	Key       string    `gorm:"size:64;primaryKey" json:"key"`
	Value     string    `gorm:"size:255;not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Preference) TableName() string {
	return "preferences"
}

// ThemePreference is the observable theme state.
type ThemePreference struct {
	IsDarkMode bool `json:"is_dark_mode"`
}

// Value is the persisted string for the preference.
func (p ThemePreference) Value() string {
	if p.IsDarkMode {
		return ThemeDark
	}
	return ThemeLight
}
