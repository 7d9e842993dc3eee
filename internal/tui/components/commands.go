package components

import (
	"context"
	"errors"
	"fmt"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	errNoClassifier = errors.New("classifier not configured")
	errEmptyResult  = fmt.Errorf("%w: empty result", common.ErrMalformedResponse)
)

// ClassifyCmd issues a classify request off the event loop.
func ClassifyCmd(ctx context.Context, classifier service.TemplateClassifier, message string) tea.Cmd {
	return func() tea.Msg {
		if classifier == nil {
			return ClassifyDoneMsg{
				Message: message,
				Err:     common.NewUserError(common.ClassifyFailedMessage, errNoClassifier),
			}
		}

		result, err := classifier.Classify(ctx, message)
		if err == nil && result == nil {
			err = errEmptyResult
		}
		if err != nil {
			return ClassifyDoneMsg{
				Message: message,
				Err:     common.NewUserError(common.ClassifyFailedMessage, err),
			}
		}
		return ClassifyDoneMsg{Message: message, Result: result}
	}
}

// RewriteCmd issues a rewrite request off the event loop.
func RewriteCmd(ctx context.Context, classifier service.TemplateClassifier, message string) tea.Cmd {
	return func() tea.Msg {
		if classifier == nil {
			return RewriteDoneMsg{
				Message: message,
				Err:     common.NewUserError(common.RewriteFailedMessage, errNoClassifier),
			}
		}

		result, err := classifier.RewriteAsUtility(ctx, message)
		if err == nil && result == nil {
			err = errEmptyResult
		}
		if err != nil {
			return RewriteDoneMsg{
				Message: message,
				Err:     common.NewUserError(common.RewriteFailedMessage, err),
			}
		}
		return RewriteDoneMsg{Message: message, Result: result}
	}
}

func showAlert(text string) tea.Cmd {
	return func() tea.Msg {
		return ShowAlertMsg{Text: text}
	}
}
