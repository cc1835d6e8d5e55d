package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

// PreferencesView is the third wizard step: taste and style of the trip.
type PreferencesView struct {
	form  *form
	theme *styles.Theme
}

const (
	prefStyle = iota
	prefInterests
	prefFood
)

// NewPreferencesView creates the preferences step view.
func NewPreferencesView(theme *styles.Theme) *PreferencesView {
	return &PreferencesView{
		theme: theme,
		form: newForm(theme,
			newField("Trip style", "relaxed", "e.g. relaxed, adventure, luxury"),
			newField("Interests", "museums, food tours", "comma separated"),
			newField("Food preferences", "vegetarian", "comma separated"),
		),
	}
}

// SetSize updates the view dimensions.
func (v *PreferencesView) SetSize(width, height int) {
	v.form.SetWidth(width)
}

// SetFields populates the inputs from previously entered values.
func (v *PreferencesView) SetFields(fields wizard.Fields) {
	v.form.SetValue(prefStyle, fields.TripStyle)
	v.form.SetValue(prefInterests, strings.Join(fields.Preferences, ", "))
	v.form.SetValue(prefFood, strings.Join(fields.FoodPreferences, ", "))
}

// Fields merges this step's inputs into the given field set.
func (v *PreferencesView) Fields(fields wizard.Fields) wizard.Fields {
	fields.TripStyle = v.form.Value(prefStyle)
	fields.Preferences = splitList(v.form.Value(prefInterests))
	fields.FoodPreferences = splitList(v.form.Value(prefFood))
	return fields
}

// Focus moves focus to the first input.
func (v *PreferencesView) Focus() tea.Cmd {
	return v.form.FocusFirst()
}

// Update forwards messages to the form.
func (v *PreferencesView) Update(msg tea.Msg) tea.Cmd {
	return v.form.Update(msg)
}

// View renders the step.
func (v *PreferencesView) View() string {
	title := v.theme.TitleStyle.Render("Any preferences?")
	hint := v.theme.HintStyle.Render("Press enter to generate your trip plan.")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", v.form.View(), "", hint)
}

// splitList splits a comma separated input into trimmed, non-empty items.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
