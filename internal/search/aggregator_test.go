package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// fakeProvider returns canned results per query substring and records the
// queries it receives.
type fakeProvider struct {
	mu         sync.Mutex
	queries    []string
	numResults int
	failWhen   func(query string) error
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Search(ctx context.Context, query string, depth Depth, max int) ([]ProviderResult, error) {
	p.mu.Lock()
	p.queries = append(p.queries, query)
	p.mu.Unlock()

	if p.failWhen != nil {
		if err := p.failWhen(query); err != nil {
			return nil, err
		}
	}

	n := p.numResults
	if n == 0 {
		n = 10
	}
	results := make([]ProviderResult, 0, n)
	for i := 0; i < n; i++ {
		results = append(results, ProviderResult{
			Title:   fmt.Sprintf("Result %d for %s", i+1, query),
			URL:     fmt.Sprintf("https://example.com/%d", i+1),
			Content: fmt.Sprintf("Option %d from $1,%d99", i+1, i+1),
		})
	}
	return results, nil
}

func (p *fakeProvider) recordedQueries() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.queries))
	copy(out, p.queries)
	return out
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestAggregator_CategoryCaps(t *testing.T) {
	provider := &fakeProvider{numResults: 10}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	results, err := agg.Aggregate(context.Background(), Request{Destination: "Tokyo, Japan"})
	require.NoError(t, err)

	assert.Len(t, results.Flights, 3)
	assert.Len(t, results.Hotels, 3)
	assert.Len(t, results.Cars, 3)
	assert.Len(t, results.Attractions, 5)
	assert.Empty(t, results.Failed)
}

func TestAggregator_QueryTemplates(t *testing.T) {
	provider := &fakeProvider{numResults: 1}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	_, err := agg.Aggregate(context.Background(), Request{
		Destination: "Paris, France",
		Departure:   "Boston",
		StartDate:   date("2025-06-01"),
		EndDate:     date("2025-06-05"),
	})
	require.NoError(t, err)

	queries := provider.recordedQueries()
	require.Len(t, queries, 4)
	assert.Contains(t, queries, "Flights from Boston to Paris, France 2025-06-01 to 2025-06-05")
	assert.Contains(t, queries, "Hotels in Paris, France 2025-06-01 to 2025-06-05")
	assert.Contains(t, queries, "Car rentals in Paris, France")
	assert.Contains(t, queries, "Top attractions in Paris, France")
}

func TestAggregator_DefaultDeparture(t *testing.T) {
	provider := &fakeProvider{numResults: 1}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	_, err := agg.Aggregate(context.Background(), Request{Destination: "Lisbon, Portugal"})
	require.NoError(t, err)

	assert.Contains(t, provider.recordedQueries(),
		"Flights from San Francisco to Lisbon, Portugal")
}

func TestAggregator_PricesNormalized(t *testing.T) {
	provider := &fakeProvider{numResults: 2}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	results, err := agg.Aggregate(context.Background(), Request{Destination: "Rome, Italy"})
	require.NoError(t, err)

	require.NotEmpty(t, results.Flights)
	require.NotNil(t, results.Flights[0].Price)
	assert.InDelta(t, 1199, *results.Flights[0].Price, 0.001)

	// attractions carry no price by contract
	for _, item := range results.Attractions {
		assert.Nil(t, item.Price)
	}
}

func TestAggregator_PartialFailureIsolated(t *testing.T) {
	provider := &fakeProvider{
		numResults: 2,
		failWhen: func(query string) error {
			if query == "Car rentals in Oslo, Norway" {
				return types.NewError(types.SEARCH_PROVIDER_FAILED, "cars query failed")
			}
			return nil
		},
	}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	results, err := agg.Aggregate(context.Background(), Request{Destination: "Oslo, Norway"})
	require.NoError(t, err)

	assert.NotEmpty(t, results.Flights)
	assert.NotEmpty(t, results.Hotels)
	assert.NotEmpty(t, results.Attractions)
	assert.Empty(t, results.Cars)
	assert.Equal(t, []Category{CategoryCars}, results.Failed)
	assert.True(t, results.HasFailed(CategoryCars))
	assert.False(t, results.HasFailed(CategoryHotels))
}

func TestAggregator_AllCategoriesFailed(t *testing.T) {
	provider := &fakeProvider{
		failWhen: func(string) error {
			return types.NewError(types.SEARCH_PROVIDER_FAILED, "provider down")
		},
	}
	agg := NewAggregator(provider, 5*time.Second, testLogger())

	_, err := agg.Aggregate(context.Background(), Request{Destination: "Madrid, Spain"})
	require.Error(t, err)
	assert.Equal(t, types.SEARCH_ALL_CATEGORIES_FAILED, types.ErrorCodeOf(err))
}

func TestAggregator_EmptyDestination(t *testing.T) {
	agg := NewAggregator(&fakeProvider{}, 5*time.Second, testLogger())

	_, err := agg.Aggregate(context.Background(), Request{Destination: "   "})
	require.Error(t, err)
}
