// Package ui provides the visual styling and widgets for the retailcast form.
// Uses a light/dark palette selected from config or the terminal.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f7f5f2")
	LightForeground = lipgloss.Color("#1d2433")
	LightPrimary    = lipgloss.Color("#1d2433") // Ink
	LightAccent     = lipgloss.Color("#e0782f") // Tangerine
	LightMuted      = lipgloss.Color("#8a8f99")
	LightBorder     = lipgloss.Color("#d4d0c8")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#121722")
	DarkForeground = lipgloss.Color("#eef0f3")
	DarkPrimary    = lipgloss.Color("#f29b55") // Tangerine (flipped)
	DarkAccent     = lipgloss.Color("#f29b55")
	DarkMuted      = lipgloss.Color("#6b7385")
	DarkBorder     = lipgloss.Color("#2e3647")
	DarkCard       = lipgloss.Color("#1b2230")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeNamed returns the theme for a config value: "light", "dark", or
// anything else for auto-detection.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	}
	return DetectTheme()
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; ANSI 0-6 and 8 are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}

	if os.Getenv("RETAILCAST_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Content lipgloss.Style
	Footer  lipgloss.Style
	Tagline lipgloss.Style

	// Form
	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldFocused lipgloss.Style
	Placeholder  lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Calendar
	CalendarTitle lipgloss.Style
	Weekday       lipgloss.Style
	Day           lipgloss.Style
	DayCursor     lipgloss.Style
	DaySelected   lipgloss.Style
	DayDisabled   lipgloss.Style

	// Modal
	Modal      lipgloss.Style
	ModalValue lipgloss.Style
	ModalText  lipgloss.Style

	// Status
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	field := lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	button := lipgloss.NewStyle().
		Foreground(theme.Foreground).
		Padding(0, 3).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Tagline: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Width(18),

		Field: field,

		FieldFocused: field.
			BorderForeground(theme.Accent),

		Placeholder: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Button: button,

		ButtonActive: button.
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			BorderForeground(theme.Accent).
			Bold(true),

		CalendarTitle: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Weekday: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Day: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		DayCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Bold(true),

		DaySelected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Underline(true).
			Bold(true),

		DayDisabled: lipgloss.NewStyle().
			Foreground(theme.Border),

		Modal: lipgloss.NewStyle().
			Background(theme.Card).
			Foreground(theme.Foreground).
			Padding(1, 4).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Align(lipgloss.Center),

		ModalValue: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		ModalText: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),
	}
}

// DefaultStyles returns styles for the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}
