package llm

import (
	"fmt"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// ProviderType represents the type of LLM provider.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOllama    ProviderType = "ollama"
	ProviderMock      ProviderType = "mock"
)

// Config contains the root LLM provider configuration. It specifies which
// provider to use by default and provides detailed configuration for each
// available provider.
type Config struct {
	DefaultProvider string                    `mapstructure:"default_provider" yaml:"default_provider" validate:"required"`
	Providers       map[string]ProviderConfig `mapstructure:"providers" yaml:"providers" validate:"required,dive"`
}

// Validate performs validation on the Config. It ensures that the default
// provider exists in the providers map and that all provider configurations
// are valid.
func (c *Config) Validate() error {
	if c.DefaultProvider == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "llm.default_provider cannot be empty")
	}

	if len(c.Providers) == 0 {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "llm.providers map cannot be empty")
	}

	if _, exists := c.Providers[c.DefaultProvider]; !exists {
		return types.NewError(
			types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("llm.default_provider '%s' not found in providers map", c.DefaultProvider),
		)
	}

	for name, provider := range c.Providers {
		if err := provider.Validate(); err != nil {
			return types.WrapError(
				types.CONFIG_VALIDATION_FAILED,
				fmt.Sprintf("llm provider '%s' validation failed", name),
				err,
			)
		}
	}

	return nil
}

// ProviderConfig contains configuration for a specific LLM provider.
type ProviderConfig struct {
	Type         ProviderType `mapstructure:"type" yaml:"type" validate:"required,oneof=openai anthropic ollama mock"`
	APIKey       string       `mapstructure:"api_key" yaml:"api_key"`
	BaseURL      string       `mapstructure:"base_url" yaml:"base_url"`
	DefaultModel string       `mapstructure:"default_model" yaml:"default_model" validate:"required"`
}

// Validate performs validation on the ProviderConfig.
func (p *ProviderConfig) Validate() error {
	if p.Type == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "provider type cannot be empty")
	}
	if p.DefaultModel == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "provider default_model cannot be empty")
	}
	switch p.Type {
	case ProviderOpenAI, ProviderAnthropic, ProviderOllama, ProviderMock:
		return nil
	default:
		return types.NewError(
			types.CONFIG_VALIDATION_FAILED,
			fmt.Sprintf("unknown provider type '%s'", p.Type),
		)
	}
}
