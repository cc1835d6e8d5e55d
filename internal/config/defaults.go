package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/image"
	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/transcribe"
)

// DefaultConfig returns a Config with sensible default values. API keys are
// left empty so the clients fall back to their environment variables.
func DefaultConfig() *Config {
	homeDir := getDefaultHomeDir()

	return &Config{
		Core: CoreConfig{
			HomeDir: homeDir,
			Timeout: 5 * time.Minute,
			Debug:   false,
		},
		LLM: llm.Config{
			DefaultProvider: "openai",
			Providers: map[string]llm.ProviderConfig{
				"openai": {
					Type:         llm.ProviderOpenAI,
					DefaultModel: "gpt-4o-mini",
				},
			},
		},
		Search: SearchConfig{
			Tavily: search.TavilyConfig{
				Timeout: 30 * time.Second,
			},
			Timeout: 60 * time.Second,
		},
		Image: ImageConfig{
			Enabled: true,
			Pexels: image.PexelsConfig{
				Timeout: 15 * time.Second,
			},
		},
		Transcription: transcribe.WhisperConfig{
			Model:   "whisper-1",
			Timeout: 60 * time.Second,
		},
		Document: DocumentConfig{
			Format:    "pdf",
			OutputDir: filepath.Join(homeDir, "plans"),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// getDefaultHomeDir returns the default application home directory.
func getDefaultHomeDir() string {
	userHome, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".travelplanner")
	}
	return filepath.Join(userHome, ".travelplanner")
}
