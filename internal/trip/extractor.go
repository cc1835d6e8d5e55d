package trip

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

const (
	extractTemperature = 0.1
	extractMaxTokens   = 500
)

const extractSystemPrompt = `You are a travel assistant. Extract trip details from the text and return a JSON object:
{
    "destination": "City, Country",
    "departure_city": "City or null",
    "start_date": "YYYY-MM-DD or null",
    "end_date": "YYYY-MM-DD or null",
    "duration_nights": number or null,
    "budget": "string or null",
    "travelers": number or null,
    "preferences": ["list of preferences"],
    "trip_type": "vacation/business/etc",
    "food_preferences": ["list of food preferences"]
}
Today is %s.
Do not invent values that are not present in the text; use null for anything unspecified.
Return ONLY the JSON object.`

// Extractor converts unstructured natural-language trip descriptions into
// Parameters by delegating interpretation to an LLM with a fixed schema
// prompt. It holds no state between invocations.
type Extractor struct {
	provider llm.Provider
	logger   *slog.Logger
}

// NewExtractor creates a new Extractor.
func NewExtractor(provider llm.Provider, logger *slog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		logger:   logger,
	}
}

// extractedDetails is the wire shape of the extraction response.
type extractedDetails struct {
	Destination     string   `json:"destination"`
	DepartureCity   *string  `json:"departure_city"`
	StartDate       *string  `json:"start_date"`
	EndDate         *string  `json:"end_date"`
	DurationNights  *int     `json:"duration_nights"`
	Budget          *string  `json:"budget"`
	Travelers       *int     `json:"travelers"`
	Preferences     []string `json:"preferences"`
	TripType        string   `json:"trip_type"`
	FoodPreferences []string `json:"food_preferences"`
}

// Extract parses a trip description relative to the given reference date.
// A malformed LLM response yields an EXTRACT_PARSE_FAILED error; it is the
// caller's job to surface it, never to substitute defaults.
func (e *Extractor) Extract(ctx context.Context, text string, today time.Time) (*Parameters, error) {
	req := llm.CompletionRequest{
		Messages: []llm.Message{
			llm.NewSystemMessage(fmt.Sprintf(extractSystemPrompt, today.Format(DateFormat))),
			llm.NewUserMessage(text),
		},
		Temperature: extractTemperature,
		MaxTokens:   extractMaxTokens,
	}

	resp, err := llm.CompleteWithRetry(ctx, e.provider, req, e.logger)
	if err != nil {
		return nil, err
	}

	raw, err := llm.ExtractJSON(resp.Content)
	if err != nil {
		return nil, types.WrapError(types.EXTRACT_PARSE_FAILED, "extraction response is not valid JSON", err)
	}

	var details extractedDetails
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		return nil, types.WrapError(types.EXTRACT_PARSE_FAILED, "extraction response does not match schema", err)
	}

	params, err := details.toParameters()
	if err != nil {
		return nil, err
	}

	finalized, err := params.Finalize()
	if err != nil {
		return nil, err
	}

	e.logger.Debug("extracted trip details",
		"destination", finalized.Destination,
		"dates", finalized.DateRange(),
		"trip_type", finalized.TripType)

	return &finalized, nil
}

// toParameters converts the wire shape to Parameters, parsing dates and
// keeping absent fields absent.
func (d extractedDetails) toParameters() (Parameters, error) {
	params := Parameters{
		Destination:     d.Destination,
		DurationNights:  d.DurationNights,
		Preferences:     d.Preferences,
		TripType:        d.TripType,
		FoodPreferences: d.FoodPreferences,
	}

	if d.DepartureCity != nil {
		params.DepartureCity = *d.DepartureCity
	}
	if d.Budget != nil {
		params.Budget = *d.Budget
	}
	if d.Travelers != nil {
		params.Travelers = *d.Travelers
	}

	var err error
	if params.StartDate, err = parseDate(d.StartDate); err != nil {
		return params, err
	}
	if params.EndDate, err = parseDate(d.EndDate); err != nil {
		return params, err
	}

	return params, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" || *s == "null" {
		return nil, nil
	}
	t, err := time.Parse(DateFormat, *s)
	if err != nil {
		return nil, types.WrapError(
			types.EXTRACT_PARSE_FAILED,
			fmt.Sprintf("invalid date %q in extraction response", *s),
			err,
		)
	}
	return &t, nil
}
