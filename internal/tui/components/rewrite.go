package components

import (
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// sideBySideWidth is the narrowest card that shows both texts in columns.
const sideBySideWidth = 80

// RewriteModel renders an original message next to its Utility rewrite.
type RewriteModel struct {
	theme     themes.Theme
	original  string
	rewritten string
	width     int
}

// NewRewriteModel creates a rewrite card.
func NewRewriteModel(original, rewritten string, theme themes.Theme) RewriteModel {
	return RewriteModel{
		theme:     theme,
		original:  original,
		rewritten: rewritten,
		width:     60,
	}
}

// View renders the card.
func (m RewriteModel) View() string {
	inner := m.width - 6
	if inner < 10 {
		inner = 10
	}

	colWidth := inner
	sideBySide := m.width >= sideBySideWidth
	if sideBySide {
		colWidth = (inner - 2) / 2
	}

	original := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Original Message"),
		m.theme.TextBlock.Width(colWidth).Render(m.original),
	)
	rewritten := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Rewritten Message"),
		m.theme.Highlight.Width(colWidth-2).Render(m.rewritten),
	)

	var body string
	if sideBySide {
		body = lipgloss.JoinHorizontal(lipgloss.Top, original, "  ", rewritten)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, original, "", rewritten)
	}

	return m.theme.Card.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Rewritten as Utility"),
		body,
	))
}

// Resize sets the card's outer width.
func (m *RewriteModel) Resize(width int) {
	m.width = width
}

// Rewritten returns the rewritten text.
func (m RewriteModel) Rewritten() string {
	return m.rewritten
}
