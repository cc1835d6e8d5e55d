package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

// LocationView is the first wizard step: where the trip goes and when.
type LocationView struct {
	form  *form
	theme *styles.Theme
}

const (
	locDestination = iota
	locDeparture
	locStartDate
	locEndDate
)

// NewLocationView creates the location step view.
func NewLocationView(theme *styles.Theme) *LocationView {
	return &LocationView{
		theme: theme,
		form: newForm(theme,
			newField("Destination", "Paris, France", "required"),
			newField("Departure city", "San Francisco", "leave empty for the default"),
			newField("Start date", "2026-09-12", "YYYY-MM-DD, optional"),
			newField("End date", "2026-09-16", "YYYY-MM-DD, optional"),
		),
	}
}

// SetSize updates the view dimensions.
func (v *LocationView) SetSize(width, height int) {
	v.form.SetWidth(width)
}

// SetFields populates the inputs from previously entered values.
func (v *LocationView) SetFields(fields wizard.Fields) {
	v.form.SetValue(locDestination, fields.Destination)
	v.form.SetValue(locDeparture, fields.Departure)
	v.form.SetValue(locStartDate, fields.StartDate)
	v.form.SetValue(locEndDate, fields.EndDate)
}

// Fields merges this step's inputs into the given field set.
func (v *LocationView) Fields(fields wizard.Fields) wizard.Fields {
	fields.Destination = v.form.Value(locDestination)
	fields.Departure = v.form.Value(locDeparture)
	fields.StartDate = v.form.Value(locStartDate)
	fields.EndDate = v.form.Value(locEndDate)
	return fields
}

// Focus moves focus to the first input.
func (v *LocationView) Focus() tea.Cmd {
	return v.form.FocusFirst()
}

// Update forwards messages to the form.
func (v *LocationView) Update(msg tea.Msg) tea.Cmd {
	return v.form.Update(msg)
}

// View renders the step.
func (v *LocationView) View() string {
	title := v.theme.TitleStyle.Render("Where are you headed?")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", v.form.View())
}
