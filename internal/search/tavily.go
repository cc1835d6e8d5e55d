package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

const defaultTavilyBaseURL = "https://api.tavily.com"

// TavilyConfig configures the Tavily search client.
type TavilyConfig struct {
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// TavilyClient implements Provider against the Tavily search REST API.
type TavilyClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewTavilyClient creates a Tavily search client. The API key falls back to
// the TAVILY_API_KEY environment variable when not configured.
func NewTavilyClient(cfg TavilyConfig) (*TavilyClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("TAVILY_API_KEY")
	}
	if apiKey == "" {
		return nil, types.NewError(types.SEARCH_PROVIDER_FAILED, "tavily: missing API key")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTavilyBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &TavilyClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider identifier
func (c *TavilyClient) Name() string {
	return "tavily"
}

type tavilyRequest struct {
	APIKey      string `json:"api_key"`
	Query       string `json:"query"`
	SearchDepth string `json:"search_depth"`
	MaxResults  int    `json:"max_results"`
}

type tavilyResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs one query against the Tavily /search endpoint.
func (c *TavilyClient) Search(ctx context.Context, query string, depth Depth, max int) ([]ProviderResult, error) {
	body, err := json.Marshal(tavilyRequest{
		APIKey:      c.apiKey,
		Query:       query,
		SearchDepth: string(depth),
		MaxResults:  max,
	})
	if err != nil {
		return nil, types.WrapError(types.SEARCH_PROVIDER_FAILED, "tavily: encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, types.WrapError(types.SEARCH_PROVIDER_FAILED, "tavily: create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, types.WrapRetryableError(types.SEARCH_PROVIDER_FAILED, "tavily: request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, types.NewError(
			types.SEARCH_PROVIDER_FAILED,
			fmt.Sprintf("tavily: status %d: %s", resp.StatusCode, string(raw)),
		)
	}

	var parsed tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, types.WrapError(types.SEARCH_PROVIDER_FAILED, "tavily: parse response", err)
	}

	results := make([]ProviderResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		results = append(results, ProviderResult{
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
		})
		if max > 0 && len(results) >= max {
			break
		}
	}

	return results, nil
}
