package llm

import (
	"context"
)

// Provider defines the interface that all LLM providers must implement.
// It provides a unified abstraction for interacting with different LLM
// services (OpenAI GPT, Anthropic Claude, local models).
type Provider interface {
	// Name returns the provider name (e.g., "openai", "anthropic", "ollama")
	Name() string

	// Complete sends a completion request and returns the full response.
	// This is a blocking call that waits for the entire response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
}
