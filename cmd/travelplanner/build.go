package main

import (
	"log/slog"
	"os"

	"github.com/mcallisters/AI-powered-travel-planner/cmd/travelplanner/internal"
	"github.com/mcallisters/AI-powered-travel-planner/internal/config"
	"github.com/mcallisters/AI-powered-travel-planner/internal/document"
	"github.com/mcallisters/AI-powered-travel-planner/internal/image"
	"github.com/mcallisters/AI-powered-travel-planner/internal/llm/providers"
	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/transcribe"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/util"
)

// loadPlannerConfig resolves the config file path from flags and environment
// and loads it, falling back to defaults when no file exists.
func loadPlannerConfig() (*config.Config, error) {
	homeDir := globalFlags.HomeDir
	if homeDir == "" {
		homeDir = os.Getenv("TRAVELPLANNER_HOME")
	}
	if homeDir == "" {
		homeDir = config.DefaultHomeDir()
	}
	homeDir, err := util.ExpandPath(homeDir)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "invalid home directory", err)
	}

	configFile := globalFlags.ConfigFile
	if configFile == "" {
		configFile = config.DefaultConfigPath(homeDir)
	}
	configFile, err = util.ExpandPath(configFile)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "invalid config path", err)
	}

	loader := config.NewConfigLoader(config.NewValidator())
	return loader.LoadWithDefaults(configFile)
}

// buildPlanner wires the full planning pipeline from configuration: the LLM
// provider, search aggregator, synthesizer, renderer, and the optional image
// and transcription clients.
func buildPlanner(cfg *config.Config, logger *slog.Logger) (*planner.Planner, error) {
	providerCfg, ok := cfg.LLM.Providers[cfg.LLM.DefaultProvider]
	if !ok {
		return nil, internal.NewCLIError(internal.ExitConfigError,
			"llm.default_provider does not name a configured provider")
	}

	llmProvider, err := providers.NewProvider(providerCfg)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "failed to create LLM provider", err)
	}

	tavily, err := search.NewTavilyClient(cfg.Search.Tavily)
	if err != nil {
		return nil, internal.WrapError(internal.ExitConfigError, "failed to create search client", err)
	}

	opts := []planner.Option{
		planner.WithDocumentFormat(document.Format(cfg.Document.Format)),
	}

	if cfg.Image.Enabled {
		pexels, err := image.NewPexelsClient(cfg.Image.Pexels)
		if err != nil {
			logger.Warn("image lookup disabled", "error", err)
		} else {
			opts = append(opts, planner.WithImageLookup(pexels))
		}
	}

	// Transcription shares the OpenAI key; wire it when a key is reachable.
	whisper, err := transcribe.NewWhisperClient(cfg.Transcription)
	if err != nil {
		logger.Debug("transcription disabled", "error", err)
	} else {
		opts = append(opts, planner.WithTranscriber(whisper))
	}

	return planner.New(
		trip.NewExtractor(llmProvider, logger),
		search.NewAggregator(tavily, cfg.Search.Timeout, logger),
		plan.NewSynthesizer(llmProvider, logger),
		document.NewRenderer(logger),
		logger,
		opts...,
	), nil
}
