package providers

import (
	"context"

	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
)

// OllamaProvider implements llm.Provider for local Ollama models
type OllamaProvider struct {
	client *ollama.LLM
	config llm.ProviderConfig
}

// NewOllamaProvider creates a new Ollama provider. No API key is required;
// the server URL defaults to the local Ollama daemon.
func NewOllamaProvider(cfg llm.ProviderConfig) (*OllamaProvider, error) {
	opts := []ollama.Option{}

	if cfg.DefaultModel != "" {
		opts = append(opts, ollama.WithModel(cfg.DefaultModel))
	}

	if cfg.BaseURL != "" {
		opts = append(opts, ollama.WithServerURL(cfg.BaseURL))
	}

	client, err := ollama.New(opts...)
	if err != nil {
		return nil, llm.TranslateError("ollama", err)
	}

	return &OllamaProvider{
		client: client,
		config: cfg,
	}, nil
}

// Name returns the provider name
func (p *OllamaProvider) Name() string {
	return "ollama"
}

// Complete sends a completion request
func (p *OllamaProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	messages := toSchemaMessages(req.Messages)
	resp, err := p.client.GenerateContent(ctx, messages, buildCallOptions(req)...)
	if err != nil {
		return nil, llm.TranslateError("ollama", err)
	}

	return fromLangchainResponse(resp, req.Model), nil
}
