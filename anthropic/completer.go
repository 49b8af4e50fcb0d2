// Package anthropic provides an implementation of storegen.Completer
// backed by the Anthropic Messages API.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/storegen"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the Anthropic Messages API endpoint.
	DefaultBaseURL = "https://api.anthropic.com/v1/messages"

	// DefaultModel is the model used when none is configured.
	DefaultModel = "claude-sonnet-4-20250514"

	apiVersion   = "2023-06-01"
	maxTokens    = 4096
	requestLimit = rate.Limit(2) // requests per second
)

// Ensure Completer implements storegen.Completer at compile time.
var _ storegen.Completer = (*Completer)(nil)

// Completer sends prompts to the Anthropic Messages API and returns the
// text of the first text content block.
type Completer struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	limiter *rate.Limiter
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel sets the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) Option {
	return func(c *Completer) {
		c.baseURL = url
	}
}

// WithHTTPClient sets the HTTP client. Defaults to a client with a
// 120s timeout, generous enough for long generations.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Completer) {
		c.client = client
	}
}

// WithRateLimit overrides the client-side request rate limit.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Completer) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewCompleter creates a new Completer using the given API key.
func NewCompleter(apiKey string, opts ...Option) *Completer {
	c := &Completer{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		client:  &http.Client{Timeout: 120 * time.Second},
		limiter: rate.NewLimiter(requestLimit, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends the system and user prompts as a single-turn message
// and returns the concatenated text content of the response.
func (c *Completer) Complete(ctx context.Context, system, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", storegen.Errorf(storegen.EINVALID, "API key required")
	}
	if prompt == "" {
		return "", storegen.Errorf(storegen.EINVALID, "prompt required")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	reqBody := apiRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []apiMessage{{Role: "user", Content: prompt}},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", storegen.Errorf(storegen.EINTERNAL, "marshaling request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(jsonBody))
	if err != nil {
		return "", storegen.Errorf(storegen.EINTERNAL, "creating request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", storegen.Errorf(storegen.EUNAVAILABLE, "API request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", storegen.Errorf(storegen.EUNAVAILABLE, "reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", storegen.Errorf(storegen.EUNAVAILABLE, "API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", storegen.Errorf(storegen.EUNAVAILABLE, "API error (%d): %s", resp.StatusCode, string(body))
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return "", storegen.Errorf(storegen.EINTERNAL, "parsing response: %v", err)
	}

	// The response is taken from the first text-typed content block.
	for _, block := range apiResp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	return "", nil
}

// API request/response types

type apiRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	System    string       `json:"system,omitempty"`
	Messages  []apiMessage `json:"messages"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type apiResponse struct {
	Content []apiContentBlock `json:"content"`
}

type apiContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
