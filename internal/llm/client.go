// Package llm provides the chat-completions client and the recipe
// segmentation layer built on top of it.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Role constants.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the body sent to the chat-completions endpoint.
type chatRequest struct {
	Model       string        `json:"model,omitempty"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel overrides the default model name.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// WithMaxTokens sets the response token limit.
func WithMaxTokens(n int) ClientOption {
	return func(c *Client) { c.maxTokens = n }
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.rc.SetTimeout(d) }
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	rc          *resty.Client
	model       string
	temperature float64
	maxTokens   int
	log         *zap.SugaredLogger
}

// NewClient creates a chat client. baseURL is the API root; the
// chat/completions path is appended per request.
func NewClient(baseURL, apiKey string, log *zap.SugaredLogger, opts ...ClientOption) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	c := &Client{
		rc:          rc,
		model:       "gpt-4o-mini",
		temperature: 0.2,
		maxTokens:   2000,
		log:         log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Chat sends one system+user exchange and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, system, user string) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	c.log.Debugw("llm request", "model", c.model, "user_chars", len(user))

	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("llm: request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("llm: API %s: %s", resp.Status(), truncate(resp.String(), 200))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("llm: unmarshal response: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("llm: empty response (no choices)")
	}

	reply := result.Choices[0].Message.Content
	c.log.Debugw("llm reply", "chars", len(reply))
	return reply, nil
}

// truncate caps s at roughly n bytes, cutting on a rune boundary so
// multi-byte characters in error bodies never get split.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
