package components

import (
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AlertModel is a blocking notification. While visible it swallows every
// key except its dismiss binding.
type AlertModel struct {
	theme   themes.Theme
	dismiss key.Binding
	text    string
	visible bool
}

// NewAlertModel creates a hidden alert.
func NewAlertModel(theme themes.Theme, dismiss key.Binding) AlertModel {
	return AlertModel{theme: theme, dismiss: dismiss}
}

// Show displays text. A newer alert replaces an older one.
func (m *AlertModel) Show(text string) {
	m.text = text
	m.visible = true
}

// Update dismisses the alert on the dismiss key.
func (m AlertModel) Update(msg tea.Msg) (AlertModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && m.visible && key.Matches(msg, m.dismiss) {
		m.visible = false
		m.text = ""
	}
	return m, nil
}

// View renders the alert box, or nothing when hidden.
func (m AlertModel) View() string {
	if !m.visible {
		return ""
	}
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(m.dismiss.Help().Key + " to " + m.dismiss.Help().Desc)

	return m.theme.Alert.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.StatusError.Render(m.text),
		"",
		footer,
	))
}

// Visible reports whether the alert is showing.
func (m AlertModel) Visible() bool {
	return m.visible
}

// Text returns the current alert text.
func (m AlertModel) Text() string {
	return m.text
}
