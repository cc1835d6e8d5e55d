package wizard

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/document"
	"github.com/mcallisters/AI-powered-travel-planner/internal/llm/providers"
	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
)

const wizardNarrative = `## Overview
ok
## Flights
- f
## Hotels
- h
## Cars
- c
## Attractions
- a
## Budget
fine
## Tips
- t
`

type cannedSearch struct{}

func (cannedSearch) Name() string { return "canned" }

func (cannedSearch) Search(ctx context.Context, query string, depth search.Depth, max int) ([]search.ProviderResult, error) {
	return []search.ProviderResult{{Title: "r", URL: "u", Content: "from $100"}}, nil
}

func newTestController(t *testing.T) *Controller {
	t.Helper()
	logger := slog.Default()
	mockLLM := providers.NewMockProvider([]string{wizardNarrative})

	p := planner.New(
		trip.NewExtractor(mockLLM, logger),
		search.NewAggregator(cannedSearch{}, 5*time.Second, logger),
		plan.NewSynthesizer(mockLLM, logger),
		document.NewRenderer(logger),
		logger,
		planner.WithDocumentFormat(document.FormatMarkdown),
	)
	return NewController(p, logger)
}

func walkToPreferences(t *testing.T, c *Controller) Fields {
	t.Helper()

	fields := validLocationFields()
	require.NoError(t, c.Next(fields))

	fields = c.State().Fields
	fields.Budget = "$3000"
	fields.Travelers = 2
	require.NoError(t, c.Next(fields))

	fields = c.State().Fields
	fields.Preferences = []string{"museums"}
	return fields
}

func TestController_FullFlow(t *testing.T) {
	c := newTestController(t)
	fields := walkToPreferences(t, c)

	result, err := c.Generate(context.Background(), fields)
	require.NoError(t, err)

	assert.Equal(t, StepSubmitted, c.State().Step)
	assert.Equal(t, result, c.Result())
	assert.Equal(t, "Paris, France", result.Params.Destination)
	require.NotNil(t, result.Document)
	assert.Equal(t, "trip-plan-paris-france.md", result.Document.Filename())
}

func TestController_SubmissionCommitsOnComplete(t *testing.T) {
	c := newTestController(t)
	fields := walkToPreferences(t, c)

	params, err := c.Prepare(fields)
	require.NoError(t, err)
	assert.Equal(t, "Paris, France", params.Destination)
	assert.Equal(t, StepPreferences, c.State().Step, "Prepare must not advance the step")
	assert.Nil(t, c.Result())

	result, err := c.Plan(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, StepPreferences, c.State().Step, "Plan must not advance the step")

	require.NoError(t, c.Complete(fields, result))
	assert.Equal(t, StepSubmitted, c.State().Step)
	assert.Equal(t, result, c.Result())
}

func TestController_PrepareRejectsInvalidFields(t *testing.T) {
	c := newTestController(t)
	fields := walkToPreferences(t, c)
	fields.EndDate = "not-a-date"

	_, err := c.Prepare(fields)
	require.Error(t, err)
	assert.Equal(t, StepPreferences, c.State().Step)
}

func TestController_ValidationErrorKeepsState(t *testing.T) {
	c := newTestController(t)

	err := c.Next(Fields{Destination: "", Travelers: 1})
	require.Error(t, err)
	assert.Equal(t, StepLocation, c.State().Step)
	assert.Empty(t, c.State().Fields.Destination)
}

func TestController_PlanAnotherResets(t *testing.T) {
	c := newTestController(t)
	fields := walkToPreferences(t, c)

	_, err := c.Generate(context.Background(), fields)
	require.NoError(t, err)

	c.PlanAnother()
	assert.Equal(t, StepLocation, c.State().Step)
	assert.Empty(t, c.State().Fields.Destination)
	assert.Nil(t, c.Result())
}

func TestController_GenerateFailureStaysOnPreferences(t *testing.T) {
	logger := slog.Default()
	mockLLM := providers.NewMockProvider(nil) // synthesis will fail

	p := planner.New(
		trip.NewExtractor(mockLLM, logger),
		search.NewAggregator(cannedSearch{}, 5*time.Second, logger),
		plan.NewSynthesizer(mockLLM, logger),
		document.NewRenderer(logger),
		logger,
	)
	c := NewController(p, logger)
	fields := walkToPreferences(t, c)

	_, err := c.Generate(context.Background(), fields)
	require.Error(t, err)
	assert.Equal(t, StepPreferences, c.State().Step, "failed submission must not reach Submitted")
	assert.Nil(t, c.Result())
}
