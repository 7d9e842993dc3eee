// Package components implements the form, result and rewrite cards of the terminal front-end.
package components

import "github.com/Veraticus/template-classifier/internal/model"

// ClassifyDoneMsg reports the outcome of a classify request.
type ClassifyDoneMsg struct {
	Err     error
	Result  *model.ClassificationResult
	Message string
}

// RewriteRequestedMsg asks the parent to rewrite Message as a Utility template.
type RewriteRequestedMsg struct {
	Message string
}

// RewriteDoneMsg reports the outcome of a rewrite request.
type RewriteDoneMsg struct {
	Err     error
	Result  *model.RewriteResult
	Message string
}

// ShowAlertMsg asks the parent to display a blocking notification.
type ShowAlertMsg struct {
	Text string
}
