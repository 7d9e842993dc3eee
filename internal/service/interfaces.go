// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/Veraticus/template-classifier/internal/model"
)

// TemplateClassifier is the remote service that labels message templates.
type TemplateClassifier interface {
	// Classify assigns a category and per-category scores to message.
	Classify(ctx context.Context, message string) (*model.ClassificationResult, error)
	// RewriteAsUtility rephrases message so it fits the Utility category.
	RewriteAsUtility(ctx context.Context, message string) (*model.RewriteResult, error)
}

// HealthChecker reports whether the remote service is reachable.
type HealthChecker interface {
	Health(ctx context.Context) (string, error)
}
