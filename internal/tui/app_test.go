package tui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/document"
	"github.com/mcallisters/AI-powered-travel-planner/internal/llm/providers"
	"github.com/mcallisters/AI-powered-travel-planner/internal/plan"
	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

const appNarrative = `## Overview
A short city break.
## Flights
- option
## Hotels
- option
## Cars
- option
## Attractions
- option
## Budget
Within range.
## Tips
- pack light
`

type staticSearch struct{}

func (staticSearch) Name() string { return "static" }

func (staticSearch) Search(ctx context.Context, query string, depth search.Depth, max int) ([]search.ProviderResult, error) {
	return []search.ProviderResult{{Title: "r", URL: "u", Content: "from $250"}}, nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	logger := slog.Default()

	p := planner.New(
		trip.NewExtractor(providers.NewMockProvider([]string{appNarrative}), logger),
		search.NewAggregator(staticSearch{}, 5*time.Second, logger),
		plan.NewSynthesizer(providers.NewMockProvider([]string{appNarrative}), logger),
		document.NewRenderer(logger),
		logger,
		planner.WithDocumentFormat(document.FormatMarkdown),
	)

	app := NewApp(context.Background(), AppConfig{
		Controller: wizard.NewController(p, logger),
		OutputDir:  t.TempDir(),
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// drainCmd executes a command tree until a pipeline result message appears.
func drainCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}

		switch msg := next().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case PlanReadyMsg:
			return msg
		case PlanFailedMsg:
			return msg
		}
	}
	t.Fatal("no pipeline result message produced")
	return nil
}

func TestApp_WizardFlow(t *testing.T) {
	app := newTestApp(t)

	app.locationView.SetFields(wizard.Fields{
		Destination: "Lisbon, Portugal",
		StartDate:   "2026-09-12",
		EndDate:     "2026-09-16",
	})
	_, _ = app.Update(enterKey())
	require.Equal(t, wizard.StepBudget, app.ctrl.State().Step)

	app.budgetView.SetFields(wizard.Fields{Budget: "$2500", Travelers: 2})
	_, _ = app.Update(enterKey())
	require.Equal(t, wizard.StepPreferences, app.ctrl.State().Step)

	_, cmd := app.Update(enterKey())
	assert.True(t, app.generating)

	msg := drainCmd(t, cmd)
	ready, ok := msg.(PlanReadyMsg)
	require.True(t, ok, "expected a successful plan, got %T", msg)

	app.Update(ready)
	assert.False(t, app.generating)
	assert.Equal(t, wizard.StepSubmitted, app.ctrl.State().Step)
	assert.Contains(t, app.View(), "Lisbon, Portugal")
}

func TestApp_PipelineCommandLeavesWizardUntouched(t *testing.T) {
	app := newTestApp(t)

	app.locationView.SetFields(wizard.Fields{Destination: "Oslo, Norway"})
	_, _ = app.Update(enterKey())
	app.budgetView.SetFields(wizard.Fields{Travelers: 1})
	_, _ = app.Update(enterKey())
	require.Equal(t, wizard.StepPreferences, app.ctrl.State().Step)

	_, cmd := app.Update(enterKey())
	require.True(t, app.generating)

	// Running the command plays the whole pipeline; the wizard must not
	// move until the result message reaches Update on the event loop.
	msg := drainCmd(t, cmd)
	ready, ok := msg.(PlanReadyMsg)
	require.True(t, ok, "expected a successful plan, got %T", msg)
	assert.Equal(t, wizard.StepPreferences, app.ctrl.State().Step)
	assert.Nil(t, app.ctrl.Result())

	app.Update(ready)
	assert.Equal(t, wizard.StepSubmitted, app.ctrl.State().Step)
	require.NotNil(t, app.ctrl.Result())
	assert.Equal(t, "Oslo, Norway", app.ctrl.Result().Params.Destination)
}

func TestApp_ValidationKeepsStep(t *testing.T) {
	app := newTestApp(t)

	// No destination entered.
	_, _ = app.Update(enterKey())
	assert.Equal(t, wizard.StepLocation, app.ctrl.State().Step)
}

func TestApp_BackRetainsValues(t *testing.T) {
	app := newTestApp(t)

	app.locationView.SetFields(wizard.Fields{Destination: "Kyoto, Japan"})
	_, _ = app.Update(enterKey())
	require.Equal(t, wizard.StepBudget, app.ctrl.State().Step)

	_, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, wizard.StepLocation, app.ctrl.State().Step)
	assert.Equal(t, "Kyoto, Japan", app.ctrl.State().Fields.Destination)
}

func TestApp_ViewRenders(t *testing.T) {
	app := newTestApp(t)
	out := app.View()

	assert.Contains(t, out, "TRAVEL PLANNER")
	assert.Contains(t, out, "Location")
}
