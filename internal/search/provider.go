package search

import (
	"context"
)

// Depth is the search depth hint passed to the provider.
type Depth string

const (
	DepthBasic    Depth = "basic"
	DepthAdvanced Depth = "advanced"
)

// ProviderResult is one raw result record returned by a search provider.
type ProviderResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// Provider is the interface all web search providers must implement.
type Provider interface {
	// Name returns the provider identifier (e.g., "tavily")
	Name() string

	// Search runs a free-text query and returns results in relevance order,
	// at most max records.
	Search(ctx context.Context, query string, depth Depth, max int) ([]ProviderResult, error)
}
