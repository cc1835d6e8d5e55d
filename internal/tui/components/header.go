package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
)

// Header displays the application title bar at the top of the screen.
type Header struct {
	title    string
	subtitle string
	width    int
	theme    *styles.Theme
}

// NewHeader creates a new header with the given title.
func NewHeader(title string) *Header {
	return &Header{
		title: title,
		width: 80,
		theme: styles.DefaultTheme(),
	}
}

// SetSubtitle sets an optional subtitle displayed next to the title.
func (h *Header) SetSubtitle(subtitle string) {
	h.subtitle = subtitle
}

// SetWidth sets the width of the header.
func (h *Header) SetWidth(width int) {
	if width > 0 {
		h.width = width
	}
}

// Render renders the header to a string.
func (h *Header) Render() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(h.theme.Primary)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted)

	content := titleStyle.Render(h.title)
	if h.subtitle != "" {
		content += subtitleStyle.Render(" | " + h.subtitle)
	}

	line := " " + content
	if pad := h.width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	border := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Render(strings.Repeat("─", h.width))

	return line + "\n" + border
}

// Height returns the height of the header in lines.
func (h *Header) Height() int {
	return 2
}
