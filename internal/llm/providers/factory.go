package providers

import (
	"fmt"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// NewProvider creates a new LLM provider based on the configuration
func NewProvider(cfg llm.ProviderConfig) (llm.Provider, error) {
	switch cfg.Type {
	case llm.ProviderOpenAI:
		return NewOpenAIProvider(cfg)

	case llm.ProviderAnthropic:
		return NewAnthropicProvider(cfg)

	case llm.ProviderOllama:
		return NewOllamaProvider(cfg)

	case llm.ProviderMock:
		return NewMockProvider(nil), nil

	default:
		return nil, types.NewError(
			llm.ErrProviderNotFound,
			fmt.Sprintf("unknown provider type: %s", cfg.Type),
		)
	}
}
