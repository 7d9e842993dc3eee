package tui

import (
	"testing"

	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() model.ClassificationResult {
	return model.ClassificationResult{
		Category:       model.CategoryMarketing,
		UtilityScore:   0.12,
		MarketingScore: 0.85,
		AuthScore:      0.01,
		Explanation:    "Promotional discount.",
	}
}

func TestStateTransitions_HappyPath(t *testing.T) {
	var s ViewState = Idle{}

	s, ok := Submit(s, "Buy now and save 50%!")
	require.True(t, ok)
	assert.Equal(t, "classifying", s.Name())

	s, ok = ClassifySucceeded(s, sampleResult())
	require.True(t, ok)
	assert.Equal(t, Classified{Message: "Buy now and save 50%!", Result: sampleResult()}, s)

	s, ok = StartRewrite(s)
	require.True(t, ok)
	assert.Equal(t, Rewriting{Message: "Buy now and save 50%!", Result: sampleResult()}, s)

	s, ok = RewriteSucceeded(s, "Your order is ready for pickup.")
	require.True(t, ok)
	assert.Equal(t, Rewritten{
		Message:   "Buy now and save 50%!",
		Result:    sampleResult(),
		Rewritten: "Your order is ready for pickup.",
	}, s)
}

func TestStateTransitions_NewClassifyClearsRewrite(t *testing.T) {
	var s ViewState = Rewritten{Message: "old", Result: sampleResult(), Rewritten: "old rewrite"}

	s, ok := Submit(s, "new message")
	require.True(t, ok)

	utility := sampleResult()
	utility.Category = model.CategoryUtility
	s, ok = ClassifySucceeded(s, utility)
	require.True(t, ok)
	assert.Equal(t, Classified{Message: "new message", Result: utility}, s)
}

func TestStateTransitions_ClassifyFailureRestoresPrevious(t *testing.T) {
	previous := Classified{Message: "old", Result: sampleResult()}

	s, ok := Submit(previous, "new")
	require.True(t, ok)
	s, ok = ClassifyFailed(s)
	require.True(t, ok)
	assert.Equal(t, previous, s)

	s, ok = Submit(Idle{}, "new")
	require.True(t, ok)
	s, _ = ClassifyFailed(s)
	assert.Equal(t, Idle{}, s)

	s, _ = ClassifyFailed(Classifying{Message: "orphan"})
	assert.Equal(t, Idle{}, s)
}

func TestStateTransitions_RewriteFailureKeepsResult(t *testing.T) {
	s, _ := StartRewrite(Classified{Message: "m", Result: sampleResult()})
	s, ok := RewriteFailed(s)
	require.True(t, ok)
	assert.Equal(t, Classified{Message: "m", Result: sampleResult()}, s)
}

func TestStateTransitions_Rejected(t *testing.T) {
	tests := []struct {
		state ViewState
		apply func(ViewState) (ViewState, bool)
		name  string
	}{
		{name: "submit while classifying", state: Classifying{Message: "m"}, apply: func(s ViewState) (ViewState, bool) { return Submit(s, "x") }},
		{name: "submit while rewriting", state: Rewriting{Message: "m"}, apply: func(s ViewState) (ViewState, bool) { return Submit(s, "x") }},
		{name: "classify result when idle", state: Idle{}, apply: func(s ViewState) (ViewState, bool) { return ClassifySucceeded(s, sampleResult()) }},
		{name: "classify failure when classified", state: Classified{}, apply: ClassifyFailed},
		{name: "rewrite from idle", state: Idle{}, apply: StartRewrite},
		{name: "rewrite while classifying", state: Classifying{}, apply: StartRewrite},
		{name: "rewrite while rewriting", state: Rewriting{}, apply: StartRewrite},
		{name: "rewrite result when classified", state: Classified{}, apply: func(s ViewState) (ViewState, bool) { return RewriteSucceeded(s, "x") }},
		{name: "rewrite failure when idle", state: Idle{}, apply: RewriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := tt.apply(tt.state)
			assert.False(t, ok)
			assert.Equal(t, tt.state, next)
		})
	}
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "idle", Idle{}.Name())
	assert.Equal(t, "classifying", Classifying{}.Name())
	assert.Equal(t, "classified", Classified{}.Name())
	assert.Equal(t, "rewriting", Rewriting{}.Name())
	assert.Equal(t, "rewritten", Rewritten{}.Name())
}
