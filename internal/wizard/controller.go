package wizard

import (
	"context"
	"log/slog"

	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
)

// Controller owns the wizard state and, on submission, drives the planning
// pipeline. It is the only component that mutates the state; the UI layer
// sends it events and reads the state back. The controller is not safe for
// concurrent use: callers keep all calls on a single goroutine, except Plan,
// which touches no controller state and may run elsewhere.
type Controller struct {
	state   State
	planner *planner.Planner
	logger  *slog.Logger

	result *planner.Result
}

// NewController creates a Controller at the initial step.
func NewController(p *planner.Planner, logger *slog.Logger) *Controller {
	return &Controller{
		state:   NewState(),
		planner: p,
		logger:  logger,
	}
}

// State returns the current wizard state.
func (c *Controller) State() State {
	return c.state
}

// Result returns the outcome of the last successful submission, or nil.
func (c *Controller) Result() *planner.Result {
	return c.result
}

// Next stores the entered fields and advances one step after validation.
// On validation failure the state is unchanged and the error is returned
// for the UI to surface; it never propagates further.
func (c *Controller) Next(fields Fields) error {
	next, err := c.state.Next(fields)
	if err != nil {
		c.logger.Debug("wizard validation failed", "step", c.state.Step, "error", err)
		return err
	}
	c.state = next
	return nil
}

// Back stores the entered fields and moves one step back without
// validation.
func (c *Controller) Back(fields Fields) {
	c.state = c.state.Back(fields)
}

// Prepare validates the accumulated fields and assembles the trip
// parameters without changing the step. It is the read-only half of a
// submission; Complete commits the transition once the pipeline finishes.
func (c *Controller) Prepare(fields Fields) (trip.Parameters, error) {
	_, params, err := c.state.Submit(fields)
	if err != nil {
		c.logger.Debug("wizard submission rejected", "error", err)
		return trip.Parameters{}, err
	}
	return params, nil
}

// Plan runs the planning pipeline on prepared parameters. It reads no
// controller state, so it may run off the caller's goroutine.
func (c *Controller) Plan(ctx context.Context, params trip.Parameters) (*planner.Result, error) {
	return c.planner.PlanFromParameters(ctx, params)
}

// Complete commits a successful submission: the wizard transitions to the
// terminal Submitted step and the result is retained for display.
func (c *Controller) Complete(fields Fields, result *planner.Result) error {
	submitted, _, err := c.state.Submit(fields)
	if err != nil {
		return err
	}
	c.state = submitted
	c.result = result
	return nil
}

// Generate assembles the trip parameters from the accumulated state and
// runs the planning pipeline. On success the wizard transitions to the
// terminal Submitted step and the result is retained for display. On
// pipeline failure the step is unchanged so the user can retry.
func (c *Controller) Generate(ctx context.Context, fields Fields) (*planner.Result, error) {
	params, err := c.Prepare(fields)
	if err != nil {
		return nil, err
	}

	result, err := c.Plan(ctx, params)
	if err != nil {
		return nil, err
	}

	if err := c.Complete(fields, result); err != nil {
		return nil, err
	}
	return result, nil
}

// PlanAnother resets the wizard to step 1 with empty fields and discards
// the previous result.
func (c *Controller) PlanAnother() {
	c.state = c.state.Reset()
	c.result = nil
}
