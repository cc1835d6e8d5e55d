package trip

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallisters/AI-powered-travel-planner/internal/llm/providers"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

func today() time.Time {
	return time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestExtractor_Extract(t *testing.T) {
	mock := providers.NewMockProvider([]string{`{
		"destination": "Paris, France",
		"departure_city": "Boston",
		"start_date": "2025-06-01",
		"end_date": "2025-06-05",
		"duration_nights": null,
		"budget": "$3000",
		"travelers": 2,
		"preferences": ["museums", "food"],
		"trip_type": "vacation",
		"food_preferences": ["french", "vegetarian"]
	}`})
	extractor := NewExtractor(mock, slog.Default())

	params, err := extractor.Extract(context.Background(), "We want to visit Paris in June", today())
	require.NoError(t, err)

	assert.Equal(t, "Paris, France", params.Destination)
	assert.Equal(t, "Boston", params.DepartureCity)
	assert.Equal(t, "2025-06-01 to 2025-06-05", params.DateRange())
	require.NotNil(t, params.DurationNights)
	assert.Equal(t, 4, *params.DurationNights)
	assert.Equal(t, "$3000", params.Budget)
	assert.Equal(t, 2, params.Travelers)
	assert.Equal(t, []string{"museums", "food"}, params.Preferences)
	assert.Equal(t, "vacation", params.TripType)
	assert.Equal(t, []string{"french", "vegetarian"}, params.FoodPreferences)
}

func TestExtractor_PromptCarriesTodayAndText(t *testing.T) {
	mock := providers.NewMockProvider([]string{`{"destination": "Oslo, Norway", "trip_type": "vacation"}`})
	extractor := NewExtractor(mock, slog.Default())

	_, err := extractor.Extract(context.Background(), "a week in Oslo", today())
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	msgs := calls[0].Request.Messages
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "Today is 2025-03-15")
	assert.Contains(t, msgs[0].Content, "Return ONLY the JSON object")
	assert.Equal(t, "a week in Oslo", msgs[1].Content)
	assert.InDelta(t, extractTemperature, calls[0].Request.Temperature, 0.0001)
}

func TestExtractor_AbsentFieldsStayAbsent(t *testing.T) {
	mock := providers.NewMockProvider([]string{`{
		"destination": "Oslo, Norway",
		"departure_city": null,
		"start_date": null,
		"end_date": null,
		"duration_nights": null,
		"budget": null,
		"trip_type": "vacation"
	}`})
	extractor := NewExtractor(mock, slog.Default())

	params, err := extractor.Extract(context.Background(), "somewhere nordic", today())
	require.NoError(t, err)

	assert.Nil(t, params.StartDate)
	assert.Nil(t, params.EndDate)
	assert.Nil(t, params.DurationNights)
	assert.Empty(t, params.Budget)
	// defaults applied, not fabricated from the text
	assert.Equal(t, "San Francisco", params.DepartureCity)
	assert.Equal(t, 1, params.Travelers)
}

func TestExtractor_MalformedResponsePropagates(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not json", "Sorry, I could not understand that request."},
		{"truncated json", `{"destination": "Paris`},
		{"bad date", `{"destination": "Paris, France", "start_date": "June 1st"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := providers.NewMockProvider([]string{tt.response})
			extractor := NewExtractor(mock, slog.Default())

			_, err := extractor.Extract(context.Background(), "trip text", today())
			require.Error(t, err)
			assert.Equal(t, types.EXTRACT_PARSE_FAILED, types.ErrorCodeOf(err))
		})
	}
}

func TestExtractor_InvalidDateOrderRejected(t *testing.T) {
	mock := providers.NewMockProvider([]string{`{
		"destination": "Paris, France",
		"start_date": "2025-06-05",
		"end_date": "2025-06-01"
	}`})
	extractor := NewExtractor(mock, slog.Default())

	_, err := extractor.Extract(context.Background(), "backwards dates", today())
	require.Error(t, err)
	assert.Equal(t, types.EXTRACT_VALIDATION_FAILED, types.ErrorCodeOf(err))
}

func TestExtractor_MarkdownWrappedJSON(t *testing.T) {
	mock := providers.NewMockProvider([]string{"Here you go:\n```json\n{\"destination\": \"Rome, Italy\", \"trip_type\": \"vacation\"}\n```"})
	extractor := NewExtractor(mock, slog.Default())

	params, err := extractor.Extract(context.Background(), "rome please", today())
	require.NoError(t, err)
	assert.Equal(t, "Rome, Italy", params.Destination)
}
