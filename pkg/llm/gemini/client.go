// Package gemini implements the llm.TextModel port on top of the Google GenAI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultModel           = "gemini-2.0-flash"
	defaultMaxOutputTokens = 1000
)

// Config carries the transport configuration. The API key is injected here at
// construction and never read from the environment inside core logic.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// Client wraps the GenAI client for simple prompt-in, text-out calls.
type Client struct {
	client *genai.Client
	cfg    Config
}

// New creates a Client configured for the Gemini API backend.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = defaultMaxOutputTokens
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, cfg: cfg}, nil
}

// Complete sends the prompt and returns the concatenated candidate text. The
// low sampling temperature and bounded output budget bias the model toward the
// strict JSON replies the caller expects.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", errors.New("gemini client is not initialized")
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.cfg.Temperature),
		MaxOutputTokens: c.cfg.MaxOutputTokens,
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(part.Text)
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return out, nil
}

// Model reports the configured model identifier.
func (c *Client) Model() string {
	if c == nil {
		return ""
	}
	return c.cfg.Model
}
