package tui

import (
	"github.com/Veraticus/template-classifier/internal/service"
	"github.com/Veraticus/template-classifier/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Classifier     service.TemplateClassifier
	Theme          themes.Theme
	BaseURL        string
	Width          int
	Height         int
	RewriteEnabled bool
	AltScreen      bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		Width:          80,
		Height:         24,
		RewriteEnabled: true,
		AltScreen:      true,
	}
}

// WithClassifier sets the classification service.
func WithClassifier(classifier service.TemplateClassifier) Option {
	return func(c *Config) {
		c.Classifier = classifier
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithRewrite enables or disables the rewrite-as-Utility flow.
func WithRewrite(enabled bool) Option {
	return func(c *Config) {
		c.RewriteEnabled = enabled
	}
}

// WithBaseURL records the service address shown in the footer.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithAltScreen controls whether the program takes over the full terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
