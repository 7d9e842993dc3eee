package components

import (
	"fmt"

	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScoreRow is one rendered score bar.
type ScoreRow struct {
	Label    string
	Category model.Category
	Tier     model.ScoreTier
	Percent  float64
}

// ScoreRows derives the three score bars for a result.
func ScoreRows(result model.ClassificationResult) []ScoreRow {
	scores := result.Scores()
	rows := make([]ScoreRow, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, ScoreRow{
			Label:    s.Label(),
			Category: s.Category,
			Percent:  model.Percent(s.Score),
			Tier:     model.TierFor(s.Score),
		})
	}
	return rows
}

// ResultModel renders a classification result. It holds no state of its
// own beyond what it was built with.
type ResultModel struct {
	theme          themes.Theme
	rewrite        key.Binding
	original       string
	result         model.ClassificationResult
	width          int
	rewriteEnabled bool
	focused        bool
}

// NewResultModel creates a result card for original.
func NewResultModel(result model.ClassificationResult, original string, theme themes.Theme, rewrite key.Binding, rewriteEnabled bool) ResultModel {
	return ResultModel{
		theme:          theme,
		rewrite:        rewrite,
		original:       original,
		result:         result,
		rewriteEnabled: rewriteEnabled,
		width:          60,
	}
}

// Update handles the rewrite action.
func (m ResultModel) Update(msg tea.Msg) (ResultModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.focused && m.rewriteEnabled && key.Matches(msg, m.rewrite) {
		original := m.original
		return m, func() tea.Msg {
			return RewriteRequestedMsg{Message: original}
		}
	}
	return m, nil
}

// View renders the card.
func (m ResultModel) View() string {
	title := m.theme.Title.Render("Classification Results")
	badge := m.theme.CategoryBadge(m.result.Category)

	sections := []string{title, badge, ""}
	for _, row := range ScoreRows(m.result) {
		sections = append(sections, m.renderScore(row), "")
	}

	sections = append(sections,
		m.theme.Bold.Render("Explanation"),
		m.theme.TextBlock.Width(m.innerWidth()).Render(m.result.Explanation),
	)

	if m.rewriteEnabled {
		style := m.theme.ButtonBusy
		if m.focused {
			style = m.theme.ButtonActive
		}
		hint := lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(m.rewrite.Help().Key + " to " + m.rewrite.Help().Desc)
		sections = append(sections, "",
			lipgloss.JoinHorizontal(lipgloss.Center, style.Render("Rewrite as Utility"), "  ", hint))
	}

	return m.theme.Card.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m ResultModel) renderScore(row ScoreRow) string {
	width := m.innerWidth()

	pct := m.theme.TierStyle(row.Tier).Render(fmt.Sprintf("%.1f%%", row.Percent))
	label := m.theme.Label.Render(row.Label)
	gap := width - lipgloss.Width(label) - lipgloss.Width(pct)
	if gap < 1 {
		gap = 1
	}
	header := label + lipgloss.NewStyle().Width(gap).Render("") + pct

	bar := progress.New(
		progress.WithSolidFill(string(m.theme.CategoryColor(row.Category))),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)

	return lipgloss.JoinVertical(lipgloss.Left, header, bar.ViewAs(row.Percent/100))
}

func (m ResultModel) innerWidth() int {
	// border (2) + horizontal padding (4)
	w := m.width - 6
	if w < 10 {
		return 10
	}
	return w
}

// Resize sets the card's outer width.
func (m *ResultModel) Resize(width int) {
	m.width = width
}

// Focus lets the card receive the rewrite key.
func (m *ResultModel) Focus() {
	m.focused = true
}

// Blur stops the card from receiving keys.
func (m *ResultModel) Blur() {
	m.focused = false
}

// Focused reports whether the card receives keys.
func (m ResultModel) Focused() bool {
	return m.focused
}

// Original returns the message the result was computed for.
func (m ResultModel) Original() string {
	return m.original
}
