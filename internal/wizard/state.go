package wizard

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/types"
)

// Step identifies a wizard step.
type Step int

const (
	// StepLocation collects destination, departure, and dates.
	StepLocation Step = iota + 1
	// StepBudget collects budget, traveler count, and trip style.
	StepBudget
	// StepPreferences collects activity and food preferences.
	StepPreferences
	// StepSubmitted is the terminal step reached by Generate.
	StepSubmitted
)

// String returns a display name for the step.
func (s Step) String() string {
	switch s {
	case StepLocation:
		return "Location & Dates"
	case StepBudget:
		return "Budget & Style"
	case StepPreferences:
		return "Preferences"
	case StepSubmitted:
		return "Submitted"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

// Input widget range constraints for step 2.
const (
	BudgetMin    = 0
	BudgetMax    = 100000
	TravelersMin = 1
	TravelersMax = 16
)

// Fields is the accumulated form state across all wizard steps. Values are
// kept as entered so nothing is lost on backward navigation; parsing happens
// at validation and assembly time.
type Fields struct {
	Destination     string   `json:"destination"`
	Departure       string   `json:"departure"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Budget          string   `json:"budget"`
	Travelers       int      `json:"travelers"`
	TripStyle       string   `json:"trip_style"`
	Preferences     []string `json:"preferences"`
	FoodPreferences []string `json:"food_preferences"`
}

// State is the wizard's explicit, serializable state: the current step and
// the accumulated fields. It is owned exclusively by the Controller and
// passed through value-semantics transition functions; no other component
// mutates it.
type State struct {
	Step   Step   `json:"step"`
	Fields Fields `json:"fields"`
}

// NewState returns the initial wizard state: step 1 with empty fields.
func NewState() State {
	return State{Step: StepLocation, Fields: Fields{Travelers: TravelersMin}}
}

// Next validates the current step and advances. On validation failure the
// returned state equals the input state and the error describes the problem.
func (s State) Next(fields Fields) (State, error) {
	switch s.Step {
	case StepLocation:
		if err := validateLocation(fields); err != nil {
			return s, err
		}
		s.Fields = fields
		s.Step = StepBudget
		return s, nil

	case StepBudget:
		if err := validateBudget(fields); err != nil {
			return s, err
		}
		s.Fields = fields
		s.Step = StepPreferences
		return s, nil

	default:
		return s, types.NewError(
			types.WIZARD_INVALID_TRANSITION,
			fmt.Sprintf("cannot advance from %s", s.Step),
		)
	}
}

// Back moves to the previous step. Values are persisted as-is; backward
// navigation never validates.
func (s State) Back(fields Fields) State {
	s.Fields = fields
	switch s.Step {
	case StepBudget:
		s.Step = StepLocation
	case StepPreferences:
		s.Step = StepBudget
	}
	return s
}

// Submit validates the full accumulated state from step 3 and transitions
// to the terminal Submitted step, returning the assembled trip parameters.
func (s State) Submit(fields Fields) (State, trip.Parameters, error) {
	if s.Step != StepPreferences {
		return s, trip.Parameters{}, types.NewError(
			types.WIZARD_INVALID_TRANSITION,
			fmt.Sprintf("cannot submit from %s", s.Step),
		)
	}

	s.Fields = fields
	params, err := s.Fields.assemble()
	if err != nil {
		return s, trip.Parameters{}, err
	}

	s.Step = StepSubmitted
	return s, params, nil
}

// Reset returns to step 1 with all fields cleared, the "plan another trip"
// action.
func (s State) Reset() State {
	return NewState()
}

// validateLocation gates step 1: destination non-empty and, when both dates
// are entered, end strictly after start.
func validateLocation(fields Fields) error {
	if strings.TrimSpace(fields.Destination) == "" {
		return types.NewError(types.WIZARD_VALIDATION_FAILED, "destination is required")
	}

	start, err := parseOptionalDate(fields.StartDate)
	if err != nil {
		return err
	}
	end, err := parseOptionalDate(fields.EndDate)
	if err != nil {
		return err
	}

	if (start == nil) != (end == nil) {
		return types.NewError(types.WIZARD_VALIDATION_FAILED, "enter both dates or neither")
	}
	if start != nil && !end.After(*start) {
		return types.NewError(types.WIZARD_VALIDATION_FAILED, "end date must be after start date")
	}

	return nil
}

// validateBudget gates step 2: budget and traveler count within the fixed
// input ranges.
func validateBudget(fields Fields) error {
	if fields.Budget != "" {
		amount, err := parseBudget(fields.Budget)
		if err != nil {
			return err
		}
		if amount < BudgetMin || amount > BudgetMax {
			return types.NewError(
				types.WIZARD_VALIDATION_FAILED,
				fmt.Sprintf("budget must be between $%d and $%d", BudgetMin, BudgetMax),
			)
		}
	}

	if fields.Travelers < TravelersMin || fields.Travelers > TravelersMax {
		return types.NewError(
			types.WIZARD_VALIDATION_FAILED,
			fmt.Sprintf("travelers must be between %d and %d", TravelersMin, TravelersMax),
		)
	}

	return nil
}

// assemble builds the immutable trip parameters from the accumulated form
// state. Finalize derives the duration and re-checks the date invariant.
func (f Fields) assemble() (trip.Parameters, error) {
	start, err := parseOptionalDate(f.StartDate)
	if err != nil {
		return trip.Parameters{}, err
	}
	end, err := parseOptionalDate(f.EndDate)
	if err != nil {
		return trip.Parameters{}, err
	}

	budget := strings.TrimSpace(f.Budget)
	if budget != "" && !strings.HasPrefix(budget, "$") {
		budget = "$" + budget
	}

	params := trip.Parameters{
		Destination:     strings.TrimSpace(f.Destination),
		DepartureCity:   strings.TrimSpace(f.Departure),
		StartDate:       start,
		EndDate:         end,
		Budget:          budget,
		Travelers:       f.Travelers,
		TripType:        f.TripStyle,
		Preferences:     f.Preferences,
		FoodPreferences: f.FoodPreferences,
	}

	finalized, err := params.Finalize()
	if err != nil {
		return trip.Parameters{}, types.WrapError(
			types.WIZARD_VALIDATION_FAILED, "assembled parameters are invalid", err)
	}
	return finalized, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(trip.DateFormat, s)
	if err != nil {
		return nil, types.NewError(
			types.WIZARD_VALIDATION_FAILED,
			fmt.Sprintf("date %q must be in YYYY-MM-DD form", s),
		)
	}
	return &t, nil
}

func parseBudget(s string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, types.NewError(
			types.WIZARD_VALIDATION_FAILED,
			fmt.Sprintf("budget %q is not a number", s),
		)
	}
	return amount, nil
}
