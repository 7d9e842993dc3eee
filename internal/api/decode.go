package api

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/model"
)

// wireClassification uses pointers so absent fields can be told apart
// from zero values.
type wireClassification struct {
	Category       *string  `json:"category"`
	UtilityScore   *float64 `json:"utility_score"`
	MarketingScore *float64 `json:"marketing_score"`
	AuthScore      *float64 `json:"auth_score"`
	Explanation    *string  `json:"explanation"`
}

type wireRewrite struct {
	Rewritten *string `json:"rewritten"`
}

func decodeClassification(body []byte) (*model.ClassificationResult, error) {
	var w wireClassification
	if err := unmarshal(body, &w); err != nil {
		return nil, err
	}

	var missing []string
	if w.Category == nil {
		missing = append(missing, "category")
	}
	if w.UtilityScore == nil {
		missing = append(missing, "utility_score")
	}
	if w.MarketingScore == nil {
		missing = append(missing, "marketing_score")
	}
	if w.AuthScore == nil {
		missing = append(missing, "auth_score")
	}
	if w.Explanation == nil {
		missing = append(missing, "explanation")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing fields %v", common.ErrMalformedResponse, missing)
	}

	category, err := model.ParseCategory(*w.Category)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}

	result := &model.ClassificationResult{
		Category:       category,
		UtilityScore:   *w.UtilityScore,
		MarketingScore: *w.MarketingScore,
		AuthScore:      *w.AuthScore,
		Explanation:    *w.Explanation,
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return result, nil
}

func decodeRewrite(body []byte) (*model.RewriteResult, error) {
	var w wireRewrite
	if err := unmarshal(body, &w); err != nil {
		return nil, err
	}
	if w.Rewritten == nil {
		return nil, fmt.Errorf("%w: missing fields [rewritten]", common.ErrMalformedResponse)
	}
	return &model.RewriteResult{Rewritten: *w.Rewritten}, nil
}

// unmarshal decodes a JSON object, rejecting anything that is not one.
func unmarshal(body []byte, v any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected a JSON object", common.ErrMalformedResponse)
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return fmt.Errorf("%w: %v", common.ErrMalformedResponse, err)
	}
	return nil
}
