package image

import (
	"context"
)

// Result is a fetched destination image.
type Result struct {
	URL  string
	Data []byte
}

// Lookup finds a representative image for a query string. The contract is
// fully best-effort: callers treat any error as "no image" and never abort
// a planning request over it.
type Lookup interface {
	// Name returns the provider identifier (e.g., "pexels")
	Name() string

	// Lookup returns an image for the query, or an error when none could
	// be fetched.
	Lookup(ctx context.Context, query string) (*Result, error)
}
