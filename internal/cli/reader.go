package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/template-classifier/internal/common"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// ReadMessage returns the message given on the command line, or reads it
// from r when no arguments are given. Blank messages are rejected.
func ReadMessage(ctx context.Context, args []string, r io.Reader) (string, error) {
	var message string
	if len(args) > 0 {
		message = strings.Join(args, " ")
	} else {
		if r == nil {
			return "", fmt.Errorf("%w: no message given", common.ErrEmptyMessage)
		}
		read, err := readAll(ctx, r)
		if err != nil {
			return "", err
		}
		message = strings.TrimRight(read, "\r\n")
	}

	if strings.TrimSpace(message) == "" {
		return "", common.ErrEmptyMessage
	}
	return message, nil
}

// readAll reads r to EOF, returning early if ctx is done.
func readAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		b, err := io.ReadAll(r)
		resultCh <- result{value: string(b), err: err}
	}()

	// The reading goroutine keeps running until r returns; we don't wait.
	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("failed to read message: %w", res.err)
		}
		return res.value, nil
	}
}
