package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMessage(t *testing.T) {
	tests := []struct {
		name     string
		stdin    io.Reader
		expected string
		args     []string
		wantErr  error
	}{
		{
			name:     "from args",
			args:     []string{"Your", "order", "shipped"},
			expected: "Your order shipped",
		},
		{
			name:     "from stdin",
			stdin:    strings.NewReader("Your code is 123456\n"),
			expected: "Your code is 123456",
		},
		{
			name:     "multi-line stdin keeps inner newlines",
			stdin:    strings.NewReader("Hi {{1}},\nYour order shipped.\n"),
			expected: "Hi {{1}},\nYour order shipped.",
		},
		{
			name:    "blank args",
			args:    []string{"  "},
			wantErr: common.ErrEmptyMessage,
		},
		{
			name:    "blank stdin",
			stdin:   strings.NewReader("\n\n"),
			wantErr: common.ErrEmptyMessage,
		},
		{
			name:    "no input at all",
			wantErr: common.ErrEmptyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadMessage(context.Background(), tt.args, tt.stdin)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReadMessage_ContextCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := ReadMessage(ctx, nil, pr)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestSpinner_NonTerminalIsSilent(t *testing.T) {
	var buf bytes.Buffer
	s := StartSpinner(&buf, "Classifying message...")
	s.Stop()
	s.Stop()

	assert.Empty(t, buf.String())
	assert.False(t, IsTerminal(&buf))
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("done"), "done")
	assert.Contains(t, FormatError("failed"), ErrorIcon)
	assert.Contains(t, RenderBox("Title", "body"), "body")
}
