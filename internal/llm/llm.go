// Package llm talks to the upstream language model behind the proxy endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

var ErrEmptyCompletion = errors.New("llm: empty completion")

// Generator produces a completion for prompt using the caller's API key.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// OpenAICompatible calls any chat-completions endpoint that follows the
// OpenAI wire format, Gemini's compatibility endpoint included.
type OpenAICompatible struct {
	baseURL string
	model   string
}

func NewOpenAICompatible(baseURL, model string) *OpenAICompatible {
	return &OpenAICompatible{baseURL: baseURL, model: model}
}

func (g *OpenAICompatible) Model() string {
	return g.model
}

func (g *OpenAICompatible) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	cfg := openai.DefaultConfig(apiKey)
	if g.baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(g.baseURL, "/")
	}
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

// StatusCode extracts the upstream HTTP status from a Generate error, or 0.
func StatusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}
