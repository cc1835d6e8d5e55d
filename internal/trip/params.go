package trip

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/search"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// DateFormat is the calendar date layout used across the planner.
const DateFormat = "2006-01-02"

// Parameters is the structured record of a planning request. It is built
// once per request, either by the extractor from a text blob or by the
// wizard from validated form state, and is immutable afterwards.
type Parameters struct {
	Destination     string     `json:"destination"`
	DepartureCity   string     `json:"departure_city"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	DurationNights  *int       `json:"duration_nights,omitempty"`
	Budget          string     `json:"budget,omitempty"`
	Travelers       int        `json:"travelers"`
	Preferences     []string   `json:"preferences,omitempty"`
	TripType        string     `json:"trip_type,omitempty"`
	FoodPreferences []string   `json:"food_preferences,omitempty"`
}

// Finalize applies defaults, derives the nightly duration from the dates
// when it is absent, and validates the invariants. It returns the finalized
// copy, leaving the receiver untouched.
func (p Parameters) Finalize() (Parameters, error) {
	if strings.TrimSpace(p.Destination) == "" {
		return p, types.NewError(types.EXTRACT_VALIDATION_FAILED, "destination is required")
	}

	if p.DepartureCity == "" {
		p.DepartureCity = search.DefaultDepartureCity
	}
	if p.Travelers < 1 {
		p.Travelers = 1
	}

	if p.StartDate != nil && p.EndDate != nil {
		days := int(p.EndDate.Sub(*p.StartDate).Hours() / 24)
		if days <= 0 {
			return p, types.NewError(
				types.EXTRACT_VALIDATION_FAILED,
				fmt.Sprintf("end date %s must be after start date %s",
					p.EndDate.Format(DateFormat), p.StartDate.Format(DateFormat)),
			)
		}
		if p.DurationNights == nil {
			p.DurationNights = &days
		} else if *p.DurationNights != days {
			return p, types.NewError(
				types.EXTRACT_VALIDATION_FAILED,
				fmt.Sprintf("duration of %d nights does not match date range of %d days",
					*p.DurationNights, days),
			)
		}
	}

	if p.DurationNights != nil && *p.DurationNights < 0 {
		return p, types.NewError(types.EXTRACT_VALIDATION_FAILED, "duration cannot be negative")
	}

	return p, nil
}

// DateRange formats the trip dates for display, or returns "flexible" when
// either date is absent.
func (p Parameters) DateRange() string {
	if p.StartDate == nil || p.EndDate == nil {
		return "flexible"
	}
	return fmt.Sprintf("%s to %s", p.StartDate.Format(DateFormat), p.EndDate.Format(DateFormat))
}

// SearchRequest maps the parameters onto a category search request.
func (p Parameters) SearchRequest() search.Request {
	return search.Request{
		Destination: p.Destination,
		Departure:   p.DepartureCity,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}
