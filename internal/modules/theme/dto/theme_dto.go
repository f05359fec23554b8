package dto

import theme "anoa.com/socialfeed/internal/modules/theme/service"

type ThemeResponse struct {
	IsDarkMode bool          `json:"is_dark_mode"`
	Mode       string        `json:"mode"`
	Palette    theme.Palette `json:"palette"`
}

func NewThemeResponse(store theme.ThemeStore) ThemeResponse {
	pref := store.Preference()
	return ThemeResponse{
		IsDarkMode: pref.IsDarkMode,
		Mode:       pref.Value(),
		Palette:    theme.PaletteFor(pref.IsDarkMode),
	}
}
