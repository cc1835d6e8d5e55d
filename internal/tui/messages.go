package tui

import (
	"time"

	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
)

// PlanReadyMsg is sent when plan generation completes successfully.
type PlanReadyMsg struct {
	Result    *planner.Result
	Timestamp time.Time
}

// PlanFailedMsg is sent when plan generation fails.
type PlanFailedMsg struct {
	Err       error
	Timestamp time.Time
}

// PlanSavedMsg is sent when the itinerary document has been written to disk.
type PlanSavedMsg struct {
	Path      string
	Timestamp time.Time
}

// SaveFailedMsg is sent when writing the itinerary document fails.
type SaveFailedMsg struct {
	Err       error
	Timestamp time.Time
}
