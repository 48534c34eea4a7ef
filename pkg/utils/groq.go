package utils

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	groqBaseURL      = "https://api.groq.com/openai/v1"
	defaultGroqModel = "llama-3.3-70b-versatile"
)

// GroqChatClient talks to Groq's OpenAI-compatible chat-completions endpoint.
type GroqChatClient struct {
	client *openai.Client
	model  string
}

func NewGroqChatClient(apiKey, model string) *GroqChatClient {
	if model == "" {
		model = defaultGroqModel
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	config.HTTPClient = &http.Client{Timeout: 60 * time.Second}

	return &GroqChatClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (c *GroqChatClient) Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, maxTokens int) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("groq API call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content returned by Groq")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
