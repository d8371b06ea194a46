// Package openai wraps the OpenAI chat API behind the narrow interface the
// formatting pipeline needs.
package openai

import (
	"context"
	"fmt"
	"time"

	"corlog/internal/config"

	"github.com/sashabaranov/go-openai"
)

// Client is a thin wrapper around the OpenAI API that exposes a single
// prompt-in, text-out call. The request timeout from config is imposed
// here so callers never hang on a slow upstream.
type Client struct {
	api     *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a client from config. It errors when no API key is
// configured so the caller can decide whether to run degraded.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return &Client{
		api:     openai.NewClient(cfg.OpenAIKey),
		model:   string(openai.GPT4oMini),
		timeout: time.Duration(cfg.OpenAITimeout) * time.Second,
	}, nil
}

// Complete sends a single-message chat completion and returns the raw
// response text. Temperature is pinned to zero: the prompt asks for strict
// JSON and creative drift only produces validation failures downstream.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Model returns the model name requests are sent with.
func (c *Client) Model() string {
	return c.model
}
