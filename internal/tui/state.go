package tui

import "github.com/Veraticus/template-classifier/internal/model"

// ViewState is the root's view state. Exactly one variant is active, and
// each carries only the data valid in that state.
type ViewState interface {
	Name() string
	viewState()
}

// Idle shows only the form.
type Idle struct{}

// Classifying waits on a classify request. Previous is restored if the
// request fails.
type Classifying struct {
	Previous ViewState
	Message  string
}

// Classified shows a result.
type Classified struct {
	Message string
	Result  model.ClassificationResult
}

// Rewriting shows a result while a rewrite request is in flight.
type Rewriting struct {
	Message string
	Result  model.ClassificationResult
}

// Rewritten shows a result and its Utility rewrite.
type Rewritten struct {
	Message   string
	Rewritten string
	Result    model.ClassificationResult
}

func (Idle) viewState()        {}
func (Classifying) viewState() {}
func (Classified) viewState()  {}
func (Rewriting) viewState()   {}
func (Rewritten) viewState()   {}

// Name implements ViewState.
func (Idle) Name() string { return "idle" }

// Name implements ViewState.
func (Classifying) Name() string { return "classifying" }

// Name implements ViewState.
func (Classified) Name() string { return "classified" }

// Name implements ViewState.
func (Rewriting) Name() string { return "rewriting" }

// Name implements ViewState.
func (Rewritten) Name() string { return "rewritten" }

// Submit starts classifying message. Allowed from every state that is not
// already waiting on the network.
func Submit(s ViewState, message string) (ViewState, bool) {
	switch s.(type) {
	case Idle, Classified, Rewritten:
		return Classifying{Message: message, Previous: s}, true
	default:
		return s, false
	}
}

// ClassifySucceeded stores result. Any earlier rewrite is discarded.
func ClassifySucceeded(s ViewState, result model.ClassificationResult) (ViewState, bool) {
	c, ok := s.(Classifying)
	if !ok {
		return s, false
	}
	return Classified{Message: c.Message, Result: result}, true
}

// ClassifyFailed returns to whatever was showing before the submit.
func ClassifyFailed(s ViewState) (ViewState, bool) {
	c, ok := s.(Classifying)
	if !ok {
		return s, false
	}
	if c.Previous == nil {
		return Idle{}, true
	}
	return c.Previous, true
}

// StartRewrite begins rewriting the classified message.
func StartRewrite(s ViewState) (ViewState, bool) {
	switch st := s.(type) {
	case Classified:
		return Rewriting{Message: st.Message, Result: st.Result}, true
	case Rewritten:
		return Rewriting{Message: st.Message, Result: st.Result}, true
	default:
		return s, false
	}
}

// RewriteSucceeded stores the rewritten text.
func RewriteSucceeded(s ViewState, rewritten string) (ViewState, bool) {
	r, ok := s.(Rewriting)
	if !ok {
		return s, false
	}
	return Rewritten{Message: r.Message, Result: r.Result, Rewritten: rewritten}, true
}

// RewriteFailed keeps the result visible without a rewrite.
func RewriteFailed(s ViewState) (ViewState, bool) {
	r, ok := s.(Rewriting)
	if !ok {
		return s, false
	}
	return Classified{Message: r.Message, Result: r.Result}, true
}

// currentResult returns the result the state displays, if any.
func currentResult(s ViewState) (model.ClassificationResult, string, bool) {
	switch st := s.(type) {
	case Classified:
		return st.Result, st.Message, true
	case Rewriting:
		return st.Result, st.Message, true
	case Rewritten:
		return st.Result, st.Message, true
	default:
		return model.ClassificationResult{}, "", false
	}
}
