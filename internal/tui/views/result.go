package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/planner"
	"github.com/mcallisters/AI-powered-travel-planner/internal/trip"
	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
)

// ResultView shows the generated trip plan in a scrollable viewport along
// with a short summary of the trip parameters.
type ResultView struct {
	viewport viewport.Model
	theme    *styles.Theme
	result   *planner.Result
	savedTo  string
	width    int
	height   int
}

// NewResultView creates the result view.
func NewResultView(theme *styles.Theme) *ResultView {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Padding(0, 1)

	return &ResultView{
		viewport: vp,
		theme:    theme,
		width:    80,
		height:   24,
	}
}

// SetSize updates the view dimensions.
func (v *ResultView) SetSize(width, height int) {
	v.width = width
	v.height = height

	vpHeight := height - 5
	if vpHeight < 3 {
		vpHeight = 3
	}
	v.viewport.Width = width - 2
	v.viewport.Height = vpHeight
}

// SetResult installs a freshly generated plan and scrolls back to the top.
func (v *ResultView) SetResult(result *planner.Result) {
	v.result = result
	v.savedTo = ""
	v.viewport.SetContent(string(result.Plan))
	v.viewport.GotoTop()
}

// SetSavedTo records where the itinerary document was written.
func (v *ResultView) SetSavedTo(path string) {
	v.savedTo = path
}

// Update forwards messages to the viewport for scrolling.
func (v *ResultView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the result.
func (v *ResultView) View() string {
	if v.result == nil {
		return v.theme.HintStyle.Render("No plan generated yet.")
	}

	title := v.theme.TitleStyle.Render("Your trip to " + v.result.Params.Destination)
	summary := v.theme.LabelStyle.Render(summarize(v.result.Params))

	lines := []string{title, summary, v.viewport.View()}
	if v.savedTo != "" {
		lines = append(lines, v.theme.HintStyle.Render("Saved to "+v.savedTo))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// summarize builds a one-line description of the trip parameters.
func summarize(params trip.Parameters) string {
	parts := []string{fmt.Sprintf("%d traveler(s)", params.Travelers)}
	if params.StartDate != nil && params.EndDate != nil {
		parts = append(parts, fmt.Sprintf("%s to %s",
			params.StartDate.Format(trip.DateFormat),
			params.EndDate.Format(trip.DateFormat)))
	}
	if params.Budget != "" {
		parts = append(parts, "budget "+params.Budget)
	}
	return strings.Join(parts, " | ")
}
