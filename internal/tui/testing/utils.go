// Package testing provides test utilities for TUI components.
package testing

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// StripANSI removes all ANSI escape codes from a string.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// NormalizeWhitespace converts all whitespace sequences to single spaces and trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// PlainText strips styling and collapses whitespace, so assertions are not
// sensitive to borders, padding or wrapping width.
func PlainText(s string) string {
	s = StripANSI(s)
	s = strings.NewReplacer(
		"│", " ", "─", " ", "╭", " ", "╮", " ", "╰", " ", "╯", " ",
		"┃", " ", "━", " ", "┏", " ", "┓", " ", "┗", " ", "┛", " ",
		"║", " ", "═", " ", "╔", " ", "╗", " ", "╚", " ", "╝", " ",
	).Replace(s)
	return NormalizeWhitespace(s)
}

// ContainsInOrder checks if the output contains all specified strings in order.
func ContainsInOrder(output string, expected ...string) bool {
	lastIndex := 0
	for _, exp := range expected {
		index := strings.Index(output[lastIndex:], exp)
		if index == -1 {
			return false
		}
		lastIndex += index + len(exp)
	}
	return true
}

// Exec runs cmd synchronously and returns its message, or nil for a nil
// command. Batches are flattened and the non-nil messages returned in order.
func Exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, Exec(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}
