package components

import (
	"context"
	"sync"

	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/key"
)

// mockClassifier implements service.TemplateClassifier for testing.
type mockClassifier struct {
	classifyErr error
	rewriteErr  error
	result      *model.ClassificationResult
	rewrite     *model.RewriteResult
	classified  []string
	rewritten   []string
	mu          sync.Mutex
}

func (m *mockClassifier) Classify(_ context.Context, message string) (*model.ClassificationResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classified = append(m.classified, message)
	if m.classifyErr != nil {
		return nil, m.classifyErr
	}
	return m.result, nil
}

func (m *mockClassifier) RewriteAsUtility(_ context.Context, message string) (*model.RewriteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rewritten = append(m.rewritten, message)
	if m.rewriteErr != nil {
		return nil, m.rewriteErr
	}
	return m.rewrite, nil
}

func utilityResult() model.ClassificationResult {
	return model.ClassificationResult{
		Category:       model.CategoryUtility,
		UtilityScore:   0.92,
		MarketingScore: 0.05,
		AuthScore:      0.03,
		Explanation:    "Shipping update for an existing order.",
	}
}

var (
	testTheme  = themes.Default
	submitKey  = key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "classify"))
	rewriteKey = key.NewBinding(key.WithKeys("r", "enter"), key.WithHelp("r", "rewrite"))
	dismissKey = key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss"))
)
