// Package styles provides the lipgloss styles and renderers of the dozer CLI.
package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Background string
	Raised     string
	Text       string
	Muted      string
	Accent     string
	Asleep     string
	Border     string
	Error      string
	Warning    string
}

// Theme holds the colors and pre-built styles of the CLI.
type Theme struct {
	Background lipgloss.Color
	Raised     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Asleep     lipgloss.Color
	Border     lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Badges. ActiveBadge and AsleepBadge render tab states.
	Badge       lipgloss.Style
	BadgeMuted  lipgloss.Style
	ActiveBadge lipgloss.Style
	AsleepBadge lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// DefaultDarkPalette returns the built-in dark colors.
func DefaultDarkPalette() Palette {
	return Palette{
		Background: "#0a0a0b",
		Raised:     "#2d2d2d",
		Text:       "#f4f4f5",
		Muted:      "#909090",
		Accent:     "#4ade80",
		Asleep:     "#818cf8",
		Border:     "#333333",
		Error:      "#ef4444",
		Warning:    "#f59e0b",
	}
}

// NewTheme creates the default dark Theme.
func NewTheme() *Theme {
	return NewThemeFromPalette(DefaultDarkPalette())
}

// NewThemeFromPalette creates a Theme from a Palette.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Background: lipgloss.Color(p.Background),
		Raised:     lipgloss.Color(p.Raised),
		Text:       lipgloss.Color(p.Text),
		Muted:      lipgloss.Color(p.Muted),
		Accent:     lipgloss.Color(p.Accent),
		Asleep:     lipgloss.Color(p.Asleep),
		Border:     lipgloss.Color(p.Border),
	}

	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	pill := func(fg, bg lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(fg).Background(bg).Padding(0, 1)
	}

	t.Title = fg(t.Text).Bold(true)
	t.Normal = fg(t.Text)
	t.Subtle = fg(t.Muted)
	t.Highlight = fg(t.Accent).Bold(true)
	t.ErrorStyle = fg(lipgloss.Color(p.Error))
	t.WarningStyle = fg(lipgloss.Color(p.Warning))
	t.SuccessStyle = fg(t.Accent)

	t.Badge = pill(t.Background, t.Accent)
	t.BadgeMuted = pill(t.Text, t.Raised)
	t.ActiveBadge = pill(t.Background, t.Accent)
	t.AsleepBadge = pill(t.Background, t.Asleep)

	t.HelpKey = fg(t.Accent)
	t.HelpDesc = fg(t.Muted)

	return t
}

// HelpStyles returns help.Styles using the theme's key and description colors.
func (t *Theme) HelpStyles() help.Styles {
	s := help.New().Styles
	s.ShortKey = t.HelpKey
	s.FullKey = t.HelpKey
	s.ShortDesc = t.HelpDesc
	s.FullDesc = t.HelpDesc
	s.ShortSeparator = t.Subtle
	s.FullSeparator = t.Subtle
	return s
}
