package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/gin-gonic/gin"
)

const indexTemplate = "index.html"

// scoreView is one score bar as the template renders it.
type scoreView struct {
	Label    string
	Category string
	Tier     string
	Percent  string
	Width    template.CSS
}

type resultView struct {
	Category    string
	BadgeClass  string
	Explanation string
	Encoded     string
	Scores      []scoreView
}

type rewriteView struct {
	Original  string
	Rewritten string
}

type pageData struct {
	Result         *resultView
	Rewrite        *rewriteView
	Message        string
	Alert          string
	ServiceURL     string
	RewriteEnabled bool
}

func (s *Server) page(message string) pageData {
	return pageData{
		Message:        message,
		ServiceURL:     s.serviceURL,
		RewriteEnabled: s.rewriteEnabled,
	}
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, s.page(""))
}

func (s *Server) handleClassify(c *gin.Context) {
	message := c.PostForm("message")
	data := s.page(message)

	if strings.TrimSpace(message) == "" {
		c.HTML(http.StatusOK, indexTemplate, data)
		return
	}

	result, err := s.classifier.Classify(c.Request.Context(), message)
	if err != nil {
		s.logger.Error("Error classifying message", "error", err, "length", len(message))
		data.Alert = common.ClassifyFailedMessage
		c.HTML(http.StatusBadGateway, indexTemplate, data)
		return
	}

	data.Result = newResultView(*result)
	c.HTML(http.StatusOK, indexTemplate, data)
}

func (s *Server) handleRewrite(c *gin.Context) {
	message := c.PostForm("message")
	data := s.page(message)

	if strings.TrimSpace(message) == "" {
		c.HTML(http.StatusOK, indexTemplate, data)
		return
	}

	// The result card travels with the form so it survives the round trip.
	if prior, err := decodeResult(c.PostForm("result")); err == nil {
		data.Result = newResultView(prior)
	} else {
		s.logger.Debug("Discarding posted result", "error", err)
	}

	rewrite, err := s.classifier.RewriteAsUtility(c.Request.Context(), message)
	if err != nil {
		s.logger.Error("Error rewriting message", "error", err, "length", len(message))
		data.Alert = common.RewriteFailedMessage
		c.HTML(http.StatusBadGateway, indexTemplate, data)
		return
	}

	data.Rewrite = &rewriteView{Original: message, Rewritten: rewrite.Rewritten}
	c.HTML(http.StatusOK, indexTemplate, data)
}

func newResultView(result model.ClassificationResult) *resultView {
	encoded, _ := json.Marshal(result)

	view := &resultView{
		Category:    result.Category.String(),
		BadgeClass:  strings.ToLower(result.Category.String()),
		Explanation: result.Explanation,
		Encoded:     string(encoded),
	}
	for _, score := range result.Scores() {
		pct := model.Percent(score.Score)
		view.Scores = append(view.Scores, scoreView{
			Label:    score.Label(),
			Category: strings.ToLower(score.Category.String()),
			Tier:     string(model.TierFor(score.Score)),
			Percent:  fmt.Sprintf("%.1f%%", pct),
			Width:    template.CSS(fmt.Sprintf("%.1f%%", pct)),
		})
	}
	return view
}

func decodeResult(raw string) (model.ClassificationResult, error) {
	var result model.ClassificationResult
	if raw == "" {
		return result, fmt.Errorf("%w: no result posted", common.ErrMalformedResponse)
	}
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return result, fmt.Errorf("%w: %w", common.ErrMalformedResponse, err)
	}
	if err := result.Validate(); err != nil {
		return result, err
	}
	return result, nil
}
