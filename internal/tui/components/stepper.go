package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
)

// Stepper renders a horizontal breadcrumb of wizard steps, marking the
// active step and the completed steps.
type Stepper struct {
	labels []string
	active int
	theme  *styles.Theme
}

// NewStepper creates a stepper over the given step labels.
func NewStepper(labels []string) *Stepper {
	return &Stepper{
		labels: labels,
		theme:  styles.DefaultTheme(),
	}
}

// SetActive sets the index of the active step. Out of range values are clamped.
func (s *Stepper) SetActive(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(s.labels) {
		index = len(s.labels) - 1
	}
	s.active = index
}

// Render renders the stepper to a single line.
func (s *Stepper) Render() string {
	sep := lipgloss.NewStyle().Foreground(s.theme.Muted).Render(" › ")

	parts := make([]string, 0, len(s.labels))
	for i, label := range s.labels {
		parts = append(parts, s.theme.StepStyle(i, s.active).Render(label))
	}
	return " " + strings.Join(parts, sep)
}
