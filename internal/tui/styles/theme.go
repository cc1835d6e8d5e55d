package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and styles for the TUI.
type Theme struct {
	// Color palette
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color

	// Panel styles
	PanelStyle        lipgloss.Style
	FocusedPanelStyle lipgloss.Style
	TitleStyle        lipgloss.Style

	// Form styles
	LabelStyle        lipgloss.Style
	FocusedLabelStyle lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style

	// Step indicator styles
	StepActive  lipgloss.Style
	StepDone    lipgloss.Style
	StepPending lipgloss.Style
}

// DefaultTheme returns a theme with default colors and styles.
func DefaultTheme() *Theme {
	theme := &Theme{
		// Sky and sand palette
		Primary: lipgloss.Color("#4FC3F7"),
		Success: lipgloss.Color("#81C784"),
		Warning: lipgloss.Color("#FFB74D"),
		Danger:  lipgloss.Color("#E57373"),
		Muted:   lipgloss.Color("#607D8B"),
	}

	theme.PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(1, 2)

	theme.FocusedPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2)

	theme.TitleStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.LabelStyle = lipgloss.NewStyle().
		Foreground(theme.Muted)

	theme.FocusedLabelStyle = lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	theme.HintStyle = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Italic(true)

	theme.ErrorStyle = lipgloss.NewStyle().
		Foreground(theme.Danger).
		Bold(true)

	theme.StepActive = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#000000")).
		Background(theme.Primary).
		Bold(true).
		Padding(0, 1)

	theme.StepDone = lipgloss.NewStyle().
		Foreground(theme.Success).
		Padding(0, 1)

	theme.StepPending = lipgloss.NewStyle().
		Foreground(theme.Muted).
		Padding(0, 1)

	return theme
}

// StepStyle returns the style for a wizard step indicator given its position
// relative to the active step.
func (t *Theme) StepStyle(step, active int) lipgloss.Style {
	switch {
	case step == active:
		return t.StepActive
	case step < active:
		return t.StepDone
	default:
		return t.StepPending
	}
}
