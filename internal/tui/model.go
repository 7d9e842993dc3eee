// Package tui implements the interactive terminal front-end.
package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/service"
	"github.com/Veraticus/template-classifier/internal/tui/components"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focusArea is the part of the screen that receives keys.
type focusArea int

const (
	focusForm focusArea = iota
	focusResult
)

// Model holds the root TUI state.
type Model struct {
	ctx        context.Context
	state      ViewState
	classifier service.TemplateClassifier
	cancel     context.CancelFunc
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	spinner    spinner.Model
	config     Config
	alert      components.AlertModel
	rewrite    components.RewriteModel
	result     components.ResultModel
	form       components.FormModel
	focus      focusArea
	width      int
	height     int
	quitting   bool
}

// New creates the root model.
func New(ctx context.Context, opts ...Option) (Model, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Classifier == nil {
		return Model{}, fmt.Errorf("%w: classifier is required", common.ErrInvalidConfig)
	}

	ctx, cancel := context.WithCancel(ctx)
	keymap := DefaultKeyMap()
	keymap.Rewrite.SetEnabled(cfg.RewriteEnabled)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		state:      Idle{},
		classifier: cfg.Classifier,
		theme:      cfg.Theme,
		keymap:     keymap,
		help:       help.New(),
		spinner:    s,
		config:     cfg,
		alert:      components.NewAlertModel(cfg.Theme, keymap.Dismiss),
		form:       components.NewFormModel(ctx, cfg.Classifier, cfg.Theme, keymap.Submit),
		focus:      focusForm,
		width:      cfg.Width,
		height:     cfg.Height,
	}
	m.resize()

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleKeys(msg); handled {
			return m, cmd
		}

	case components.ShowAlertMsg:
		m.alert.Show(msg.Text)
		return m, nil

	case components.ClassifyDoneMsg:
		return m.handleClassifyDone(msg)

	case components.RewriteRequestedMsg:
		return m, m.startRewrite(msg.Message)

	case components.RewriteDoneMsg:
		m.handleRewriteDone(msg)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd

	wasLoading := m.form.Loading()
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)

	if !wasLoading && m.form.Loading() {
		if next, ok := Submit(m.state, m.form.InFlight()); ok {
			m.state = next
			m.syncCards()
			cmds = append(cmds, m.spinner.Tick)
		}
	}

	if _, _, ok := currentResult(m.state); ok {
		m.result, cmd = m.result.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeys processes keys that the root owns. It reports whether the key
// was consumed.
func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		return m.quit(), true
	}

	// The alert blocks everything else until dismissed.
	if m.alert.Visible() {
		m.alert, _ = m.alert.Update(msg)
		return nil, true
	}

	switch {
	case key.Matches(msg, m.keymap.ClearScreen):
		return tea.ClearScreen, true

	case key.Matches(msg, m.keymap.SwitchFocus):
		return m.toggleFocus(), true

	case m.focus == focusResult && key.Matches(msg, m.keymap.Quit):
		return m.quit(), true

	case key.Matches(msg, m.keymap.Submit):
		if !canSubmit(m.state) {
			return nil, true
		}
		if m.focus == focusResult {
			m.setFocus(focusForm)
		}
	}

	return nil, false
}

func (m *Model) handleClassifyDone(msg components.ClassifyDoneMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	c, ok := m.state.(Classifying)
	if !ok || c.Message != msg.Message {
		common.LogDebug("Dropping stale classify response", common.Fields{"state": m.state.Name()})
		return *m, cmd
	}

	if msg.Err != nil {
		m.state, _ = ClassifyFailed(m.state)
		m.syncCards()
		return *m, cmd
	}

	m.state, _ = ClassifySucceeded(m.state, *msg.Result)
	m.syncCards()
	m.setFocus(focusResult)

	return *m, cmd
}

func (m *Model) startRewrite(message string) tea.Cmd {
	if !m.config.RewriteEnabled {
		return nil
	}
	if _, classified, ok := currentResult(m.state); !ok || classified != message {
		return nil
	}

	next, ok := StartRewrite(m.state)
	if !ok {
		return nil
	}
	m.state = next
	m.syncCards()

	return tea.Batch(
		components.RewriteCmd(m.ctx, m.classifier, message),
		m.spinner.Tick,
	)
}

func (m *Model) handleRewriteDone(msg components.RewriteDoneMsg) {
	r, ok := m.state.(Rewriting)
	if !ok || r.Message != msg.Message {
		common.LogDebug("Dropping stale rewrite response", common.Fields{"state": m.state.Name()})
		return
	}

	if msg.Err != nil {
		common.LogError(msg.Err, "Error rewriting message", common.Fields{
			"length": len(msg.Message),
		})
		m.state, _ = RewriteFailed(m.state)
		m.alert.Show(common.UserMessage(msg.Err, common.RewriteFailedMessage))
	} else {
		m.state, _ = RewriteSucceeded(m.state, msg.Result.Rewritten)
	}
	m.syncCards()
}

// syncCards rebuilds the result and rewrite cards from the current state.
func (m *Model) syncCards() {
	result, message, ok := currentResult(m.state)
	if !ok {
		m.result = components.ResultModel{}
		if m.focus == focusResult {
			m.setFocus(focusForm)
		}
	} else {
		m.result = components.NewResultModel(result, message, m.theme, m.keymap.Rewrite, m.config.RewriteEnabled)
	}

	if st, ok := m.state.(Rewritten); ok {
		m.rewrite = components.NewRewriteModel(st.Message, st.Rewritten, m.theme)
	} else {
		m.rewrite = components.RewriteModel{}
	}

	m.resize()
	if m.focus == focusResult {
		m.result.Focus()
	}
}

func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusForm {
		if _, _, ok := currentResult(m.state); ok {
			m.setFocus(focusResult)
		}
		return nil
	}
	return m.setFocus(focusForm)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	if f == focusResult {
		m.form.Blur()
		m.result.Focus()
		return nil
	}
	m.result.Blur()
	return m.form.Focus()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.cancel != nil {
		m.cancel()
	}
	return tea.Quit
}

// busy reports whether a request is in flight.
func (m Model) busy() bool {
	switch m.state.(type) {
	case Classifying, Rewriting:
		return true
	default:
		return false
	}
}

func canSubmit(s ViewState) bool {
	_, ok := Submit(s, "")
	return ok
}

// State returns the current view state.
func (m Model) State() ViewState {
	return m.state
}

// AlertText returns the visible alert text, or "" when none is showing.
func (m Model) AlertText() string {
	if !m.alert.Visible() {
		return ""
	}
	return m.alert.Text()
}
