package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Completer sends one prompt to a text-generation backend and returns the
// reply. Implementations must be total over HTTP-level failures: any
// non-success outcome comes back as an error, never as sentinel text.
type Completer interface {
	Complete(ctx context.Context, prompt string, opts ...CompleteOption) (string, error)
}

// CompleteOption overrides per-call generation parameters.
type CompleteOption func(*completeParams)

type completeParams struct {
	maxTokens   int
	temperature float64
}

// WithMaxTokens caps the completion length for a single call.
func WithMaxTokens(n int) CompleteOption {
	return func(p *completeParams) { p.maxTokens = n }
}

// WithTemperature sets the sampling temperature for a single call.
func WithTemperature(t float64) CompleteOption {
	return func(p *completeParams) { p.temperature = t }
}

// --- wire types (OpenAI-compatible chat completions) ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat-completion endpoint
// (Mistral's /v1/chat/completions by default) with bearer-token auth.
// A 429 response is retried exactly once after a fixed wait; everything
// else fails fast with an *APIError or a transport error.
type Client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	retryWait   time.Duration
	httpClient  *http.Client
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client (and its timeout).
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryWait sets the backoff before the single rate-limit retry.
func WithRetryWait(d time.Duration) ClientOption {
	return func(c *Client) { c.retryWait = d }
}

// WithDefaultMaxTokens sets the token budget used when a call passes no override.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) { c.maxTokens = n }
}

// WithDefaultTemperature sets the temperature used when a call passes no override.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// NewClient creates a chat-completion client for the given endpoint.
func NewClient(baseURL, apiKey, model string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		model:       model,
		maxTokens:   3000,
		temperature: 0.2,
		retryWait:   5 * time.Second,
		httpClient:  &http.Client{Timeout: 45 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends one prompt and returns the first choice's message content.
func (c *Client) Complete(ctx context.Context, prompt string, opts ...CompleteOption) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("llm: API key is not configured")
	}

	p := completeParams{maxTokens: c.maxTokens, temperature: c.temperature}
	for _, opt := range opts {
		opt(&p)
	}

	body, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   p.maxTokens,
		Temperature: p.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("llm: marshal request: %w", err)
	}

	rc := RetryConfig{MaxRetries: 1, Wait: c.retryWait}
	return RetryDo(ctx, rc, func() (string, error) {
		return c.send(ctx, body)
	})
}

func (c *Client) send(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Body: Truncate(string(data), 200)}
	}

	var out chatResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("llm: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("llm: response contains no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// CallLLM sends a prompt through the configured client and tracks metrics.
func CallLLM(ctx context.Context, prompt string, opts ...CompleteOption) (string, error) {
	metrics.LLMCalls.Add(1)
	resp, err := cfg.LLMClient.Complete(ctx, prompt, opts...)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(resp), nil
}
