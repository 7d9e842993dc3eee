package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const maxContentWidth = 100

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.alert.Visible() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
	}

	sections := []string{
		m.renderHeader(),
		m.theme.Panel.Width(m.contentWidth()).Render(m.form.View()),
	}

	switch m.state.(type) {
	case Classifying:
		sections = append(sections, m.renderBusy("Classifying message..."))
	case Classified:
		sections = append(sections, m.result.View())
	case Rewriting:
		sections = append(sections, m.result.View(), m.renderBusy("Rewriting message..."))
	case Rewritten:
		sections = append(sections, m.result.View(), m.rewrite.View())
	}

	sections = append(sections, m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("WhatsApp Template Classifier")
	subtitle := m.theme.Subtitle.Render("Classify and optimize your WhatsApp Business message templates")
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m Model) renderBusy(label string) string {
	return m.theme.StatusInfo.Render(m.spinner.View() + " " + label)
}

func (m Model) renderFooter() string {
	footer := m.help.View(m.keymap)
	if m.config.BaseURL != "" {
		service := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("service: " + m.config.BaseURL)
		footer = lipgloss.JoinVertical(lipgloss.Left, footer, service)
	}
	return footer
}

func (m Model) contentWidth() int {
	w := m.width - 2
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// resize propagates the terminal width to every component.
func (m *Model) resize() {
	w := m.contentWidth()
	// panel border and padding
	m.form.Resize(w - 4)
	m.result.Resize(w)
	m.rewrite.Resize(w)
	m.help.Width = w
}
