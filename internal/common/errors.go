// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Service errors.
	ErrRequestFailed     = errors.New("request failed")
	ErrMalformedResponse = errors.New("malformed response")

	// Input errors.
	ErrEmptyMessage = errors.New("message is empty")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// User-facing notifications for failed actions.
const (
	ClassifyFailedMessage = "Failed to classify message. Please try again."
	RewriteFailedMessage  = "Failed to rewrite message. Please try again."
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the notification text for err. Errors that were not
// wrapped in a UserError fall back to the given default.
func UserMessage(err error, fallback string) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return fallback
}
