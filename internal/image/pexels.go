package image

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultPexelsBaseURL = "https://api.pexels.com/v1"

// maxImageBytes bounds how much image data is downloaded.
const maxImageBytes = 8 << 20

// PexelsConfig configures the Pexels image client.
type PexelsConfig struct {
	APIKey  string        `mapstructure:"api_key" yaml:"api_key"`
	BaseURL string        `mapstructure:"base_url" yaml:"base_url"`
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// PexelsClient implements Lookup against the Pexels photo search API.
type PexelsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewPexelsClient creates a Pexels client. The API key falls back to the
// PEXELS_API_KEY environment variable.
func NewPexelsClient(cfg PexelsConfig) (*PexelsClient, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("PEXELS_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("pexels: missing API key")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultPexelsBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &PexelsClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Name returns the provider identifier
func (c *PexelsClient) Name() string {
	return "pexels"
}

type pexelsResponse struct {
	Photos []struct {
		Src struct {
			Large string `json:"large"`
		} `json:"src"`
	} `json:"photos"`
}

// Lookup searches for one landscape photo of the query and downloads it.
func (c *PexelsClient) Lookup(ctx context.Context, query string) (*Result, error) {
	searchURL := fmt.Sprintf("%s/search?query=%s&per_page=1&orientation=landscape",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pexels: search status %d", resp.StatusCode)
	}

	var parsed pexelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("pexels: parse response: %w", err)
	}
	if len(parsed.Photos) == 0 {
		return nil, fmt.Errorf("pexels: no photos for %q", query)
	}

	imageURL := parsed.Photos[0].Src.Large
	data, err := c.fetch(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	return &Result{URL: imageURL, Data: data}, nil
}

// fetch downloads the image bytes.
func (c *PexelsClient) fetch(ctx context.Context, imageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("pexels: create image request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pexels: image download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("pexels: image status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("pexels: read image: %w", err)
	}

	return data, nil
}
