package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/Veraticus/template-classifier/internal/tui/components"
	tuitest "github.com/Veraticus/template-classifier/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClassifier struct {
	classifyErr error
	rewriteErr  error
	result      *model.ClassificationResult
	rewrite     *model.RewriteResult
	classified  []string
	rewritten   []string
	mu          sync.Mutex
}

func (f *fakeClassifier) Classify(_ context.Context, message string) (*model.ClassificationResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classified = append(f.classified, message)
	if f.classifyErr != nil {
		return nil, f.classifyErr
	}
	return f.result, nil
}

func (f *fakeClassifier) RewriteAsUtility(_ context.Context, message string) (*model.RewriteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rewritten = append(f.rewritten, message)
	if f.rewriteErr != nil {
		return nil, f.rewriteErr
	}
	return f.rewrite, nil
}

func utilityResult() *model.ClassificationResult {
	return &model.ClassificationResult{
		Category:       model.CategoryUtility,
		UtilityScore:   0.92,
		MarketingScore: 0.05,
		AuthScore:      0.03,
		Explanation:    "Shipping notification for an existing order.",
	}
}

func newTestModel(t *testing.T, classifier *fakeClassifier, opts ...Option) Model {
	t.Helper()
	opts = append([]Option{WithClassifier(classifier), WithSize(100, 40)}, opts...)
	m, err := New(context.Background(), opts...)
	require.NoError(t, err)
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// settle runs cmd and feeds the resulting messages back into the model,
// following up to depth levels of follow-on commands.
func settle(m Model, cmd tea.Cmd, depth int) Model {
	if depth == 0 {
		return m
	}
	for _, msg := range tuitest.Exec(cmd) {
		var next tea.Cmd
		m, next = update(m, msg)
		m = settle(m, next, depth-1)
	}
	return m
}

func typeText(m Model, text string) Model {
	for _, msg := range tuitest.Type(text) {
		m, _ = update(m, msg)
	}
	return m
}

func submit(t *testing.T, m Model, text string) Model {
	t.Helper()
	m = typeText(m, text)
	m, cmd := update(m, tuitest.KeyCtrlS())
	require.NotNil(t, cmd)
	_, ok := m.State().(Classifying)
	require.True(t, ok, "state after submit is %s", m.State().Name())
	return settle(m, cmd, 3)
}

func TestModel_ClassifyFlow(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)

	m = submit(t, m, "Your order has shipped")

	assert.Equal(t, []string{"Your order has shipped"}, classifier.classified)
	require.Equal(t, Classified{Message: "Your order has shipped", Result: *utilityResult()}, m.State())

	view := tuitest.PlainText(m.View())
	assert.True(t, tuitest.ContainsInOrder(view,
		"WhatsApp Template Classifier",
		"Classification Results",
		"Category: Utility",
		"Utility Score", "92.0%",
		"Marketing Score", "5.0%",
		"Authentication Score", "3.0%",
		"Explanation",
		"Shipping notification for an existing order.",
		"Rewrite as Utility",
	), view)
}

func TestModel_SubmitWhileClassifyingIsRefused(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)

	m = typeText(m, "hello")
	m, first := update(m, tuitest.KeyCtrlS())
	require.NotNil(t, first)

	m, second := update(m, tuitest.KeyCtrlS())
	assert.Nil(t, second)
	assert.Contains(t, tuitest.PlainText(m.View()), "Classifying message...")

	settle(m, first, 3)
	assert.Len(t, classifier.classified, 1)
}

func TestModel_BlankMessageIssuesNoRequest(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)

	m = typeText(m, "   ")
	m, cmd := update(m, tuitest.KeyCtrlS())
	m = settle(m, cmd, 3)

	assert.Empty(t, classifier.classified)
	assert.Equal(t, Idle{}, m.State())
}

func TestModel_ClassifyFailureKeepsPreviousResult(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)
	m = submit(t, m, "first")
	before := m.State()

	classifier.classifyErr = errors.New("connection refused")
	m, cmd := update(m, tuitest.KeyCtrlS())
	require.NotNil(t, cmd)
	m = settle(m, cmd, 3)

	assert.Equal(t, before, m.State())
	assert.Equal(t, common.ClassifyFailedMessage, m.AlertText())
	assert.Contains(t, tuitest.PlainText(m.View()), common.ClassifyFailedMessage)
}

func TestModel_AlertBlocksInput(t *testing.T) {
	classifier := &fakeClassifier{classifyErr: errors.New("boom")}
	m := newTestModel(t, classifier)
	m = submit(t, m, "hello")
	require.Equal(t, Idle{}, m.State())
	require.NotEmpty(t, m.AlertText())

	// Typing and submitting are swallowed while the alert is up.
	m = typeText(m, "more")
	m, cmd := update(m, tuitest.KeyCtrlS())
	assert.Nil(t, cmd)
	assert.Len(t, classifier.classified, 1)
	assert.Equal(t, "hello", m.form.Value())

	m, _ = update(m, tuitest.KeyEnter())
	assert.Empty(t, m.AlertText())
	assert.NotContains(t, tuitest.PlainText(m.View()), common.ClassifyFailedMessage)
}

func TestModel_RewriteFlow(t *testing.T) {
	classifier := &fakeClassifier{
		result:  utilityResult(),
		rewrite: &model.RewriteResult{Rewritten: "Your order is ready for pickup."},
	}
	m := newTestModel(t, classifier)
	m = submit(t, m, "Buy now and save 50%!")

	m, cmd := update(m, tuitest.KeyPress("r"))
	require.NotNil(t, cmd)
	m = settle(m, cmd, 3)

	assert.Equal(t, []string{"Buy now and save 50%!"}, classifier.rewritten)
	require.Equal(t, Rewritten{
		Message:   "Buy now and save 50%!",
		Rewritten: "Your order is ready for pickup.",
		Result:    *utilityResult(),
	}, m.State())

	view := tuitest.PlainText(m.View())
	assert.True(t, tuitest.ContainsInOrder(view,
		"Classification Results",
		"Rewritten as Utility",
		"Original Message",
	), view)
	assert.Contains(t, view, "Buy now and save 50%!")
	assert.Contains(t, view, "Your order is ready for pickup.")
}

func TestModel_RewriteFailureReturnsToClassified(t *testing.T) {
	classifier := &fakeClassifier{
		result:     utilityResult(),
		rewriteErr: errors.New("upstream 500"),
	}
	m := newTestModel(t, classifier)
	m = submit(t, m, "Buy now")

	m = settle(m, func() tea.Msg { return components.RewriteRequestedMsg{Message: "Buy now"} }, 3)

	assert.Equal(t, Classified{Message: "Buy now", Result: *utilityResult()}, m.State())
	assert.Equal(t, common.RewriteFailedMessage, m.AlertText())
}

func TestModel_NewClassificationClearsRewrite(t *testing.T) {
	classifier := &fakeClassifier{
		result:  utilityResult(),
		rewrite: &model.RewriteResult{Rewritten: "Your order is ready."},
	}
	m := newTestModel(t, classifier)
	m = submit(t, m, "Buy now")
	m = settle(m, func() tea.Msg { return components.RewriteRequestedMsg{Message: "Buy now"} }, 3)
	_, ok := m.State().(Rewritten)
	require.True(t, ok)

	m, cmd := update(m, tuitest.KeyCtrlS())
	require.NotNil(t, cmd)
	m = settle(m, cmd, 3)

	assert.Equal(t, Classified{Message: "Buy now", Result: *utilityResult()}, m.State())
	assert.NotContains(t, tuitest.PlainText(m.View()), "Rewritten as Utility")
}

func TestModel_RewriteDisabled(t *testing.T) {
	classifier := &fakeClassifier{
		result:  utilityResult(),
		rewrite: &model.RewriteResult{Rewritten: "unused"},
	}
	m := newTestModel(t, classifier, WithRewrite(false))
	m = submit(t, m, "Buy now")

	assert.NotContains(t, tuitest.PlainText(m.View()), "Rewrite as Utility")

	m, cmd := update(m, tuitest.KeyPress("r"))
	m = settle(m, cmd, 3)
	m = settle(m, func() tea.Msg { return components.RewriteRequestedMsg{Message: "Buy now"} }, 3)

	assert.Empty(t, classifier.rewritten)
	_, ok := m.State().(Classified)
	assert.True(t, ok)
}

func TestModel_StaleRewriteResponseDropped(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)
	m = submit(t, m, "Buy now")

	m, _ = update(m, components.RewriteDoneMsg{
		Message: "something else",
		Result:  &model.RewriteResult{Rewritten: "late"},
	})
	assert.Equal(t, Classified{Message: "Buy now", Result: *utilityResult()}, m.State())
}

func TestModel_WindowResize(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)
	m = submit(t, m, "hello")

	m, cmd := update(m, tuitest.WindowSize(60, 30))
	assert.Nil(t, cmd)
	assert.Equal(t, 60, m.width)
	assert.Contains(t, tuitest.PlainText(m.View()), "92.0%")
}

func TestModel_QuitCancelsContext(t *testing.T) {
	m := newTestModel(t, &fakeClassifier{})

	m, cmd := update(m, tuitest.KeyCtrlC())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.ctx.Err(), context.Canceled)
	assert.Empty(t, m.View())
}

func TestModel_QuitKeyOnlyFromResult(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)

	// In the form "q" is text.
	m, _ = update(m, tuitest.KeyPress("q"))
	assert.Equal(t, "q", m.form.Value())
	assert.False(t, m.quitting)

	m = submit(t, m, "uit")
	_, cmd := update(m, tuitest.KeyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_SwitchFocus(t *testing.T) {
	classifier := &fakeClassifier{result: utilityResult()}
	m := newTestModel(t, classifier)

	// Nothing to focus but the form before a result exists.
	m, _ = update(m, tuitest.KeyTab())
	assert.Equal(t, focusForm, m.focus)

	m = submit(t, m, "hello")
	assert.Equal(t, focusResult, m.focus)

	m, _ = update(m, tuitest.KeyTab())
	assert.Equal(t, focusForm, m.focus)
	assert.True(t, m.form.Focused())
	assert.False(t, m.result.Focused())
}

func TestNew_RequiresClassifier(t *testing.T) {
	_, err := New(context.Background())
	assert.Error(t, err)
}
