// Package api is the HTTP client for the template classification service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Veraticus/template-classifier/internal/common"
	"github.com/Veraticus/template-classifier/internal/model"
	"github.com/Veraticus/template-classifier/internal/service"
	"github.com/google/uuid"
)

var (
	_ service.TemplateClassifier = (*Client)(nil)
	_ service.HealthChecker      = (*Client)(nil)
)

// Endpoint paths, relative to the base URL.
const (
	ClassifyPath = "/classify"
	RewritePath  = "/rewrite-utility"
	HealthPath   = "/"
)

// RequestIDHeader carries a per-call correlation ID.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// MessageRequest is the body of both POST endpoints.
type MessageRequest struct {
	Message string `json:"message"`
}

// Client talks to the classification service.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The client is not
// modified.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets an overall per-request timeout. Zero leaves the
// transport default in place.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// BaseURL returns the resolved service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Classify sends message to the classify endpoint.
func (c *Client) Classify(ctx context.Context, message string) (*model.ClassificationResult, error) {
	body, err := c.post(ctx, ClassifyPath, message)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	result, err := decodeClassification(body)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	return result, nil
}

// RewriteAsUtility sends message to the rewrite endpoint.
func (c *Client) RewriteAsUtility(ctx context.Context, message string) (*model.RewriteResult, error) {
	body, err := c.post(ctx, RewritePath, message)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}

	result, err := decodeRewrite(body)
	if err != nil {
		return nil, fmt.Errorf("rewrite: %w", err)
	}
	return result, nil
}

// Health fetches the service banner.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+HealthPath, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("health: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("health: %w", err)
	}

	var banner struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &banner); err != nil {
		return "", fmt.Errorf("health: %w: %v", common.ErrMalformedResponse, err)
	}
	return banner.Message, nil
}

func (c *Client) post(ctx context.Context, path, message string) ([]byte, error) {
	payload, err := json.Marshal(MessageRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// do executes req and returns the body of a 2xx response. Every other
// outcome is reported as ErrRequestFailed.
func (c *Client) do(req *http.Request) ([]byte, error) {
	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("service request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"request_id", requestID,
			"error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", common.ErrRequestFailed, err)
	}

	c.logger.Debug("service request",
		"method", req.Method,
		"url", req.URL.String(),
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: truncate(string(body), maxErrorBody)}
	}

	return body, nil
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%v: service returned status %d", common.ErrRequestFailed, e.StatusCode)
	}
	return fmt.Sprintf("%v: service returned status %d: %s", common.ErrRequestFailed, e.StatusCode, e.Body)
}

// Unwrap lets errors.Is match ErrRequestFailed.
func (e *StatusError) Unwrap() error {
	return common.ErrRequestFailed
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
