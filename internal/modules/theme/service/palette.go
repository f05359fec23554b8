package theme

// Palette maps every semantic color role to a concrete color.
type Palette struct {
	Primary       string `json:"primary"`
	Background    string `json:"background"`
	Card          string `json:"card"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
	Border        string `json:"border"`
	Success       string `json:"success"`
	Error         string `json:"error"`
	Warning       string `json:"warning"`
	Info          string `json:"info"`
	Accent        string `json:"accent"`
}

// Role names a palette entry.
type Role string

const (
	RolePrimary       Role = "primary"
	RoleBackground    Role = "background"
	RoleCard          Role = "card"
	RoleText          Role = "text"
	RoleTextSecondary Role = "text_secondary"
	RoleBorder        Role = "border"
	RoleSuccess       Role = "success"
	RoleError         Role = "error"
	RoleWarning       Role = "warning"
	RoleInfo          Role = "info"
	RoleAccent        Role = "accent"
)

var lightPalette = Palette{
	Primary:       "#6366f1",
	Background:    "#ffffff",
	Card:          "#ffffff",
	Text:          "#1f2937",
	TextSecondary: "#6b7280",
	Border:        "#e5e7eb",
	Success:       "#10b981",
	Error:         "#ef4444",
	Warning:       "#f59e0b",
	Info:          "#3b82f6",
	Accent:        "#fbbf24",
}

var darkPalette = Palette{
	Primary:       "#818cf8",
	Background:    "#111827",
	Card:          "#1f2937",
	Text:          "#f9fafb",
	TextSecondary: "#9ca3af",
	Border:        "#374151",
	Success:       "#34d399",
	Error:         "#f87171",
	Warning:       "#fbbf24",
	Info:          "#60a5fa",
	Accent:        "#fbbf24",
}

// PaletteFor returns the palette for the given mode. Palettes are values, so
// callers can't modify the shared tables.
func PaletteFor(isDarkMode bool) Palette {
	if isDarkMode {
		return darkPalette
	}
	return lightPalette
}

// Color resolves a role; unknown roles resolve to the primary text color.
func (p Palette) Color(role Role) string {
	switch role {
	case RolePrimary:
		return p.Primary
	case RoleBackground:
		return p.Background
	case RoleCard:
		return p.Card
	case RoleText:
		return p.Text
	case RoleTextSecondary:
		return p.TextSecondary
	case RoleBorder:
		return p.Border
	case RoleSuccess:
		return p.Success
	case RoleError:
		return p.Error
	case RoleWarning:
		return p.Warning
	case RoleInfo:
		return p.Info
	case RoleAccent:
		return p.Accent
	default:
		return p.Text
	}
}
