package analyzer

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the language-model collaborator: one prompt in, one completion
// out. Failure (unreachable, timeout, empty completion) comes back as an
// error for the caller to pattern-match into its fallback chain.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient speaks the OpenAI-compatible chat-completions API. Pointing
// BaseURL at Ollama's /v1 endpoint keeps everything local.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIClient(baseURL, apiKey, model string, maxTokens int) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     model,
		maxTokens: maxTokens,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in response")
	}
	return content, nil
}
