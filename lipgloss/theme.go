// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.Theme = (*Theme)(nil)

// Theme names accepted by ThemeByName.
const (
	ThemeAuto  = "auto"
	ThemePaper = "paper"
	ThemeNight = "night"
)

// Theme implements scrollstory.Theme with Lipgloss-compatible colors.
type Theme struct {
	name    string
	palette scrollstory.Palette
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() scrollstory.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (light background optimized).
func DefaultTheme() *Theme {
	return PaperTheme()
}

// ThemeByName returns the named theme. "auto" picks by the terminal's
// background color.
func ThemeByName(name string) (*Theme, error) {
	switch name {
	case ThemeAuto, "":
		if lipgloss.HasDarkBackground() {
			return NightTheme(), nil
		}
		return PaperTheme(), nil
	case ThemePaper:
		return PaperTheme(), nil
	case ThemeNight:
		return NightTheme(), nil
	}
	return nil, fmt.Errorf("unknown theme %q", name)
}

// KnownTheme reports whether ThemeByName accepts name.
func KnownTheme(name string) bool {
	switch name {
	case ThemeAuto, ThemePaper, ThemeNight, "":
		return true
	}
	return false
}

// PaperTheme returns warm ink on cream, for light terminal backgrounds.
func PaperTheme() *Theme {
	return &Theme{
		name: ThemePaper,
		palette: scrollstory.Palette{
			Background: "#f7f1e3",
			Foreground: "#3b3024",

			// Narrative panel
			Paper:    "#fffaf0",
			Ink:      "#3b3024",
			Heading:  "#8c3b4a", // Wine
			Emphasis: "#6b4f8a", // Plum
			Strong:   "#8c3b4a",
			Cursor:   "#c06c84", // Rose

			// Timeline
			Track:        "#cdbfa8",
			Marker:       "#a8927a",
			MarkerActive: "#c06c84",

			Muted:  "#a8927a",
			Accent: "#c06c84",

			// UI
			UIBackground: "#ede3cf",
			UIForeground: "#7a6a58",
		},
	}
}

// NightTheme returns pale ink on deep blue, for dark terminal backgrounds.
func NightTheme() *Theme {
	return &Theme{
		name: ThemeNight,
		palette: scrollstory.Palette{
			Background: "#1b1d2a",
			Foreground: "#e6e1d6",

			// Narrative panel
			Paper:    "#24273a",
			Ink:      "#e6e1d6",
			Heading:  "#f5bde6", // Pink
			Emphasis: "#c6a0f6", // Mauve
			Strong:   "#f5bde6",
			Cursor:   "#f5bde6",

			// Timeline
			Track:        "#494d64",
			Marker:       "#6e738d",
			MarkerActive: "#f5bde6",

			Muted:  "#6e738d",
			Accent: "#f5bde6",

			// UI
			UIBackground: "#24273a",
			UIForeground: "#8087a2",
		},
	}
}
