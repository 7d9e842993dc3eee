package model

import (
	"errors"
	"fmt"
	"math"
)

// ClassificationResult is the service's verdict for one message template.
// Scores are independent confidences in [0,1] and need not sum to 1.
type ClassificationResult struct {
	Category       Category `json:"category"`
	Explanation    string   `json:"explanation"`
	UtilityScore   float64  `json:"utility_score"`
	MarketingScore float64  `json:"marketing_score"`
	AuthScore      float64  `json:"auth_score"`
}

// Validate checks that a decoded result is complete and in range.
func (r ClassificationResult) Validate() error {
	if !r.Category.IsValid() {
		return fmt.Errorf("invalid category %q", r.Category)
	}

	var errs []error
	for _, s := range r.Scores() {
		if err := validateScore(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Scores returns the three category scores in display order.
func (r ClassificationResult) Scores() []CategoryScore {
	return []CategoryScore{
		{Category: CategoryUtility, Score: r.UtilityScore},
		{Category: CategoryMarketing, Score: r.MarketingScore},
		{Category: CategoryAuthentication, Score: r.AuthScore},
	}
}

// CategoryScore pairs a category with its confidence.
type CategoryScore struct {
	Category Category
	Score    float64
}

// Label is the human-readable name of the score row.
func (s CategoryScore) Label() string {
	return s.Category.String() + " Score"
}

func validateScore(s CategoryScore) error {
	if math.IsNaN(s.Score) || s.Score < 0 || s.Score > 1 {
		return fmt.Errorf("%s score %v out of range [0,1]", s.Category, s.Score)
	}
	return nil
}

// RewriteResult holds a message rephrased to fit the Utility category.
type RewriteResult struct {
	Rewritten string `json:"rewritten"`
}
