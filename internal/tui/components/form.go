package components

import (
	"context"
	"strings"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/service"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FormModel captures the message template and submits it for classification.
type FormModel struct {
	ctx        context.Context
	classifier service.TemplateClassifier
	theme      themes.Theme
	submit     key.Binding
	input      textarea.Model
	inFlight   string
	width      int
	loading    bool
}

// NewFormModel creates a focused, empty form.
func NewFormModel(ctx context.Context, classifier service.TemplateClassifier, theme themes.Theme, submit key.Binding) FormModel {
	input := textarea.New()
	input.Placeholder = "Paste your WhatsApp message template here..."
	// No length or line caps: the whole paste is what gets classified.
	input.CharLimit = 0
	input.MaxHeight = 0
	input.ShowLineNumbers = false
	input.SetHeight(6)
	input.Focus()

	return FormModel{
		ctx:        ctx,
		classifier: classifier,
		theme:      theme,
		submit:     submit,
		input:      input,
	}
}

// Init starts the cursor blinking.
func (m FormModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ClassifyDoneMsg:
		if !m.loading || msg.Message != m.inFlight {
			return m, nil
		}
		m.loading = false
		m.inFlight = ""
		if msg.Err != nil {
			common.LogError(msg.Err, "Error classifying message", common.Fields{
				"length": len(msg.Message),
			})
			return m, showAlert(common.UserMessage(msg.Err, common.ClassifyFailedMessage))
		}
		return m, nil

	case tea.KeyMsg:
		if m.loading || !m.input.Focused() {
			return m, nil
		}
		if key.Matches(msg, m.submit) {
			return m, m.Submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Submit sends the current text for classification. Blank input and a
// request already in flight are both ignored.
func (m *FormModel) Submit() tea.Cmd {
	if m.loading {
		return nil
	}
	message := m.input.Value()
	if strings.TrimSpace(message) == "" {
		return nil
	}

	m.loading = true
	m.inFlight = message
	return ClassifyCmd(m.ctx, m.classifier, message)
}

// View renders the form.
func (m FormModel) View() string {
	label := m.theme.Label.Render("WhatsApp Message Template")

	var button string
	switch {
	case m.loading:
		button = m.theme.ButtonBusy.Render("Classifying...")
	case strings.TrimSpace(m.input.Value()) == "":
		button = m.theme.ButtonBusy.Render("Classify Message")
	default:
		button = m.theme.Button.Render("Classify Message")
	}

	hint := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render(m.submit.Help().Key + " to " + m.submit.Help().Desc)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		label,
		m.input.View(),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, button, "  ", hint),
	)
}

// Resize adjusts the text area to the available width.
func (m *FormModel) Resize(width int) {
	m.width = width
	if width > 4 {
		m.input.SetWidth(width)
	}
}

// Focus gives keyboard input to the text area.
func (m *FormModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases keyboard input.
func (m *FormModel) Blur() {
	m.input.Blur()
}

// Focused reports whether the text area receives keys.
func (m FormModel) Focused() bool {
	return m.input.Focused()
}

// Loading reports whether a classify request is in flight.
func (m FormModel) Loading() bool {
	return m.loading
}

// InFlight returns the message currently being classified.
func (m FormModel) InFlight() string {
	return m.inFlight
}

// Value returns the current input. Submitting does not clear it.
func (m FormModel) Value() string {
	return m.input.Value()
}

// SetValue replaces the current input.
func (m *FormModel) SetValue(s string) {
	m.input.SetValue(s)
}
