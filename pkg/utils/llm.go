package utils

import (
	"context"
	"fmt"
	"strings"
)

// ChatClientInterface is the single contract the AI layer has on a language
// model: one synchronous completion call returning raw text. The text may
// contain prose, fences, or a truncated body; callers run it through
// ExtractBalancedJSON before parsing.
type ChatClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, temperature float32, maxTokens int) (string, error)
}

// NewChatClient Factory function to create either a Groq or Gemini client based on config
func NewChatClient(provider, apiKey, model string) (ChatClientInterface, error) {
	switch strings.ToLower(provider) {
	case "", "groq":
		return NewGroqChatClient(apiKey, model), nil
	case "gemini":
		return NewGeminiChatClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
