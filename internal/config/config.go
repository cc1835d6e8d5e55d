package config

import (
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/image"
	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/transcribe"
)

// Config is the root configuration for the travel planner.
type Config struct {
	Core          CoreConfig               `mapstructure:"core" yaml:"core" validate:"required"`
	LLM           llm.Config               `mapstructure:"llm" yaml:"llm" validate:"required"`
	Search        SearchConfig             `mapstructure:"search" yaml:"search" validate:"required"`
	Image         ImageConfig              `mapstructure:"image" yaml:"image"`
	Transcription transcribe.WhisperConfig `mapstructure:"transcription" yaml:"transcription"`
	Document      DocumentConfig           `mapstructure:"document" yaml:"document"`
	Logging       LoggingConfig            `mapstructure:"logging" yaml:"logging"`
}

// CoreConfig contains core application settings.
type CoreConfig struct {
	HomeDir string        `mapstructure:"home_dir" yaml:"home_dir"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=1s"`
	Debug   bool          `mapstructure:"debug" yaml:"debug"`
}

// SearchConfig contains travel search configuration.
type SearchConfig struct {
	Tavily search.TavilyConfig `mapstructure:"tavily" yaml:"tavily"`

	// Timeout bounds the combined category fan-out, not a single request.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"min=1s"`
}

// ImageConfig contains destination photo lookup configuration.
// Image lookup is best effort; disabling it never blocks plan generation.
type ImageConfig struct {
	Enabled bool               `mapstructure:"enabled" yaml:"enabled"`
	Pexels  image.PexelsConfig `mapstructure:"pexels" yaml:"pexels"`
}

// DocumentConfig contains itinerary rendering configuration.
type DocumentConfig struct {
	Format    string `mapstructure:"format" yaml:"format" validate:"oneof=pdf md"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}
