package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
)

// StatusBar displays a status line at the bottom of the screen: the current
// step on the left, a status or error message in the middle, and key hints
// on the right.
type StatusBar struct {
	mode     string
	message  string
	keyHints string
	width    int
	theme    *styles.Theme
	isError  bool
}

// NewStatusBar creates a new status bar.
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		mode:     "Location",
		keyHints: "? help | q quit",
		width:    width,
		theme:    styles.DefaultTheme(),
	}
}

// SetMode sets the current mode to display.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// SetMessage sets the status message to display.
func (s *StatusBar) SetMessage(message string) {
	s.message = message
	s.isError = false
}

// SetError sets an error message to display.
func (s *StatusBar) SetError(message string) {
	s.message = message
	s.isError = true
}

// SetKeyHints sets the key hints to display on the right.
func (s *StatusBar) SetKeyHints(hints string) {
	s.keyHints = hints
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// Render renders the status bar to a string.
func (s *StatusBar) Render() string {
	left := lipgloss.NewStyle().
		Background(s.theme.Primary).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 1).
		Render(s.mode)

	right := lipgloss.NewStyle().
		Foreground(s.theme.Muted).
		Padding(0, 1).
		Render(s.keyHints)

	available := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if available < 1 {
		available = 1
	}

	message := s.message
	if len(message) > available {
		if available > 3 {
			message = message[:available-3] + "..."
		} else {
			message = message[:available]
		}
	}

	centerStyle := lipgloss.NewStyle().
		Foreground(s.theme.Muted).
		Width(available).
		Align(lipgloss.Center).
		Padding(0, 1)
	if s.isError {
		centerStyle = centerStyle.Foreground(s.theme.Danger).Bold(true)
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, centerStyle.Render(message), right)
	if pad := s.width - lipgloss.Width(bar); pad > 0 {
		bar += strings.Repeat(" ", pad)
	}
	return bar
}
