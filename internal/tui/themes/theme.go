// Package themes defines the color palettes used by the terminal front-end.
package themes

import (
	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Panel         lipgloss.Style
	Card          lipgloss.Style
	TextBlock     lipgloss.Style
	Highlight     lipgloss.Style
	Button        lipgloss.Style
	ButtonActive  lipgloss.Style
	ButtonBusy    lipgloss.Style
	Alert         lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Primary       lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#2563eb",
	accent:     "#9333ea",
	success:    "#16a34a",
	warning:    "#ca8a04",
	errorColor: "#dc2626",
	info:       "#3b82f6",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	border:     "#404040",
	muted:      "#737373",
	surface:    "#262626",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#89b4fa",
	accent:     "#cba6f7",
	success:    "#a6e3a1",
	warning:    "#f9e2af",
	errorColor: "#f38ba8",
	info:       "#89dceb",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	border:     "#45475a",
	muted:      "#6c7086",
	surface:    "#313244",
})

type palette struct {
	primary, accent, success, warning, errorColor, info string
	foreground, subtle, border, muted, surface          string
}

func newTheme(p palette) Theme {
	fg := lipgloss.Color(p.foreground)
	border := lipgloss.Color(p.border)

	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Accent:     lipgloss.Color(p.accent),
		Success:    lipgloss.Color(p.success),
		Warning:    lipgloss.Color(p.warning),
		Error:      lipgloss.Color(p.errorColor),
		Info:       lipgloss.Color(p.info),
		Foreground: fg,
		Border:     border,
		Muted:      lipgloss.Color(p.muted),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)),
		Normal: lipgloss.NewStyle().
			Foreground(fg),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		Label: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.subtle)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2).
			MarginTop(1),
		TextBlock: lipgloss.NewStyle().
			Background(lipgloss.Color(p.surface)).
			Foreground(fg).
			Padding(0, 1),
		Highlight: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(p.success)).
			Bold(true).
			Foreground(fg).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.primary)).
			Padding(0, 2),
		ButtonActive: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.accent)).
			Padding(0, 2),
		ButtonBusy: lipgloss.NewStyle().
			Foreground(fg).
			Background(lipgloss.Color(p.muted)).
			Padding(0, 2),
		Alert: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(p.errorColor)).
			Foreground(fg).
			Padding(1, 3),

		StatusSuccess: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.success)).
			Bold(true),
		StatusWarning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.warning)).
			Bold(true),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errorColor)).
			Bold(true),
		StatusInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.info)).
			Bold(true),
	}
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// TierStyle returns the text style for a score tier.
func (t Theme) TierStyle(tier model.ScoreTier) lipgloss.Style {
	switch tier {
	case model.TierGood:
		return t.StatusSuccess
	case model.TierWarning:
		return t.StatusWarning
	default:
		return t.StatusError
	}
}

// CategoryColor is the accent color for a category's badge and score bar.
func (t Theme) CategoryColor(c model.Category) lipgloss.Color {
	switch c {
	case model.CategoryUtility:
		return t.Success
	case model.CategoryMarketing:
		return t.Warning
	case model.CategoryAuthentication:
		return t.Info
	default:
		return t.Muted
	}
}

// CategoryBadge renders the category label inside a colored border.
func (t Theme) CategoryBadge(c model.Category) string {
	color := t.CategoryColor(c)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Foreground(color).
		Bold(true).
		Padding(0, 1).
		Render("Category: " + c.String())
}
