package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

const (
	synthesisTemperature = 0.3
	synthesisMaxTokens   = 2500
)

// Synthesizer combines trip parameters and aggregated search results into a
// single narrative itinerary by delegating to a language-generation backend.
// It performs no validation of the generated narrative's structure; the
// renderer must tolerate arbitrary formatting.
type Synthesizer struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewSynthesizer creates a new Synthesizer.
func NewSynthesizer(provider llm.Provider, logger *slog.Logger) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		logger:   logger,
	}
}

// Synthesize generates the narrative plan. Both inputs are embedded in the
// prompt as JSON; struct field order keeps the serialization deterministic
// even though the backend itself is not.
func (s *Synthesizer) Synthesize(ctx context.Context, params trip.Parameters, results *search.Results) (TripPlan, error) {
	prompt, err := buildSynthesisPrompt(params, results)
	if err != nil {
		return "", err
	}

	req := llm.CompletionRequest{
		Messages:    []llm.Message{llm.NewUserMessage(prompt)},
		Temperature: synthesisTemperature,
		MaxTokens:   synthesisMaxTokens,
	}

	resp, err := llm.CompleteWithRetry(ctx, s.provider, req, s.logger)
	if err != nil {
		return "", types.WrapError(types.SYNTHESIS_FAILED, "plan generation failed", err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		return "", types.NewError(types.SYNTHESIS_FAILED, "plan generation returned empty narrative")
	}

	s.logger.Debug("synthesized trip plan",
		"destination", params.Destination,
		"chars", len(resp.Content))

	return TripPlan(resp.Content), nil
}

// buildSynthesisPrompt renders the generation prompt with both structured
// inputs embedded verbatim.
func buildSynthesisPrompt(params trip.Parameters, results *search.Results) (string, error) {
	detailsJSON, err := json.MarshalIndent(params, "", "  ")
	if err != nil {
		return "", types.WrapError(types.SYNTHESIS_FAILED, "encode trip details", err)
	}
	resultsJSON, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", types.WrapError(types.SYNTHESIS_FAILED, "encode search results", err)
	}

	var b strings.Builder
	b.WriteString("Create a comprehensive trip plan using the following information:\n\n")
	b.WriteString("TRIP DETAILS:\n")
	b.Write(detailsJSON)
	b.WriteString("\n\nSEARCH RESULTS:\n")
	b.Write(resultsJSON)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Include sections: %s.\n", strings.Join(RequiredSections(), ", "))
	if params.DurationNights != nil && *params.DurationNights > 0 {
		fmt.Fprintf(&b, "Organize the itinerary day by day for the %d-night stay (Day 1, Day 2, ...).\n",
			*params.DurationNights)
	}
	fmt.Fprintf(&b, "Start each section heading with %q and each list item with %q.\n",
		HeadingMarker, BulletMarker)

	return b.String(), nil
}
