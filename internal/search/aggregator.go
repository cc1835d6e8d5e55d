package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// DefaultDepartureCity is the fallback origin used when a request does not
// name one.
const DefaultDepartureCity = "San Francisco"

// Request carries the parameters a category search is built from.
type Request struct {
	Destination string
	Departure   string
	StartDate   *time.Time
	EndDate     *time.Time
}

// Aggregator issues the four category queries against a search provider and
// assembles the per-category result lists.
//
// The categories fan out concurrently under one bounded timeout. A failed
// category is isolated: its list stays empty and the category is reported in
// Results.Failed. The aggregation errors only when every category fails.
type Aggregator struct {
	provider Provider
	timeout  time.Duration
	logger   *slog.Logger
}

// NewAggregator creates a new Aggregator.
func NewAggregator(provider Provider, timeout time.Duration, logger *slog.Logger) *Aggregator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Aggregator{
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Aggregate runs all category searches for one request.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) (*Results, error) {
	if strings.TrimSpace(req.Destination) == "" {
		return nil, types.NewError(types.SEARCH_PROVIDER_FAILED, "destination cannot be empty")
	}
	if req.Departure == "" {
		req.Departure = DefaultDepartureCity
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results Results
	)

	for _, category := range Categories() {
		wg.Add(1)
		go func(category Category) {
			defer wg.Done()

			query := buildQuery(category, req)
			items, err := a.searchCategory(ctx, category, query)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				a.logger.Warn("category search failed",
					"provider", a.provider.Name(),
					"category", category,
					"query", query,
					"error", err)
				results.Failed = append(results.Failed, category)
				results.setCategory(category, []Item{})
				return
			}
			results.setCategory(category, items)
		}(category)
	}

	wg.Wait()

	if len(results.Failed) == len(Categories()) {
		return nil, types.NewError(
			types.SEARCH_ALL_CATEGORIES_FAILED,
			fmt.Sprintf("all category searches failed for %q", req.Destination),
		)
	}

	return &results, nil
}

// searchCategory runs one provider call and converts its records to items,
// attaching normalized prices where the snippet carries one.
func (a *Aggregator) searchCategory(ctx context.Context, category Category, query string) ([]Item, error) {
	limit := maxResults(category)

	records, err := a.provider.Search(ctx, query, DepthAdvanced, limit)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, limit)
	for _, r := range records {
		if len(items) >= limit {
			break
		}
		item := Item{
			Name:    r.Title,
			URL:     r.URL,
			Snippet: r.Content,
		}
		if category != CategoryAttractions {
			item.Price = NormalizePrice(r.Content)
		}
		items = append(items, item)
	}

	return items, nil
}

// buildQuery renders the category-specific query text. Flights and hotels
// include the date range when both dates are present; cars and attractions
// are destination-only.
func buildQuery(category Category, req Request) string {
	var query string

	switch category {
	case CategoryFlights:
		query = fmt.Sprintf("Flights from %s to %s", req.Departure, req.Destination)
	case CategoryHotels:
		query = fmt.Sprintf("Hotels in %s", req.Destination)
	case CategoryCars:
		return fmt.Sprintf("Car rentals in %s", req.Destination)
	case CategoryAttractions:
		return fmt.Sprintf("Top attractions in %s", req.Destination)
	}

	if req.StartDate != nil && req.EndDate != nil {
		query += fmt.Sprintf(" %s to %s",
			req.StartDate.Format("2006-01-02"),
			req.EndDate.Format("2006-01-02"))
	}

	return query
}
