package plan

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm/providers"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

func testParams(t *testing.T) trip.Parameters {
	t.Helper()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	params, err := trip.Parameters{
		Destination:   "Paris, France",
		DepartureCity: "Boston",
		StartDate:     &start,
		EndDate:       &end,
		Budget:        "$3000",
		Travelers:     2,
		Preferences:   []string{"museums"},
		TripType:      "vacation",
	}.Finalize()
	require.NoError(t, err)
	return params
}

func testResults() *search.Results {
	price := 450.0
	return &search.Results{
		Flights: []search.Item{
			{Name: "Boston to Paris nonstop", URL: "https://example.com/f", Snippet: "from $450", Price: &price},
		},
		Hotels:      []search.Item{{Name: "Hotel Lutetia", Snippet: "left bank"}},
		Cars:        []search.Item{},
		Attractions: []search.Item{{Name: "Louvre"}, {Name: "Musée d'Orsay"}},
		Failed:      []search.Category{search.CategoryCars},
	}
}

const sampleNarrative = `## Overview
A four-night stay in Paris.

## Flights
- Boston to Paris nonstop, from $450

## Hotels
- Hotel Lutetia

## Cars
- No rental options were found.

## Attractions
- Louvre
- Musée d'Orsay

## Budget
Your $3000 budget is comfortable.

## Tips
- Buy museum passes in advance.
`

func TestSynthesizer_PromptEmbedsBothInputs(t *testing.T) {
	mock := providers.NewMockProvider([]string{sampleNarrative})
	syn := NewSynthesizer(mock, slog.Default())

	_, err := syn.Synthesize(context.Background(), testParams(t), testResults())
	require.NoError(t, err)

	prompt, err := mock.LastPrompt()
	require.NoError(t, err)

	assert.Contains(t, prompt, "TRIP DETAILS:")
	assert.Contains(t, prompt, "SEARCH RESULTS:")
	assert.Contains(t, prompt, `"Paris, France"`)
	assert.Contains(t, prompt, "Boston to Paris nonstop")
	assert.Contains(t, prompt, "Overview, Flights, Hotels, Cars, Attractions, Budget, Tips")
	assert.Contains(t, prompt, "4-night stay")
	assert.Contains(t, prompt, `"##"`)
}

func TestSynthesizer_NoDayBreakdownWithoutDuration(t *testing.T) {
	mock := providers.NewMockProvider([]string{sampleNarrative})
	syn := NewSynthesizer(mock, slog.Default())

	params, err := trip.Parameters{Destination: "Lisbon, Portugal"}.Finalize()
	require.NoError(t, err)

	_, err = syn.Synthesize(context.Background(), params, &search.Results{})
	require.NoError(t, err)

	prompt, err := mock.LastPrompt()
	require.NoError(t, err)
	assert.NotContains(t, prompt, "day by day")
}

func TestSynthesizer_StructuralSections(t *testing.T) {
	mock := providers.NewMockProvider([]string{sampleNarrative})
	syn := NewSynthesizer(mock, slog.Default())

	tripPlan, err := syn.Synthesize(context.Background(), testParams(t), testResults())
	require.NoError(t, err)

	// structure, not exact text: the backend output is non-deterministic
	for _, section := range RequiredSections() {
		assert.True(t, tripPlan.HasSection(section), "missing section %q", section)
	}
}

func TestSynthesizer_BackendFailurePropagates(t *testing.T) {
	mock := providers.NewMockProvider(nil)
	syn := NewSynthesizer(mock, slog.Default())

	_, err := syn.Synthesize(context.Background(), testParams(t), testResults())
	require.Error(t, err)
	assert.Equal(t, types.SYNTHESIS_FAILED, types.ErrorCodeOf(err))
}

func TestSynthesizer_EmptyNarrativeRejected(t *testing.T) {
	mock := providers.NewMockProvider([]string{"   \n  "})
	syn := NewSynthesizer(mock, slog.Default())

	_, err := syn.Synthesize(context.Background(), testParams(t), testResults())
	require.Error(t, err)
}

func TestTripPlan_HasSection(t *testing.T) {
	p := TripPlan("## Overview\ntext\n### Day 1\nmore")
	assert.True(t, p.HasSection("Overview"))
	assert.True(t, p.HasSection("day 1"))
	assert.False(t, p.HasSection("Budget"))

	// plain mention outside a heading does not count
	assert.False(t, TripPlan("the budget is fine").HasSection("Budget"))
}
