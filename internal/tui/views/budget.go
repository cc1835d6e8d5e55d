package views

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
	"github.com/mcallisters/AI-powered-travel-planner/internal/wizard"
)

// BudgetView is the second wizard step: how much to spend and for how many.
type BudgetView struct {
	form  *form
	theme *styles.Theme
}

const (
	budgetAmount = iota
	budgetTravelers
)

// NewBudgetView creates the budget step view.
func NewBudgetView(theme *styles.Theme) *BudgetView {
	return &BudgetView{
		theme: theme,
		form: newForm(theme,
			newField("Total budget", "$3000", "optional, in USD"),
			newField("Travelers", "2", ""),
		),
	}
}

// SetSize updates the view dimensions.
func (v *BudgetView) SetSize(width, height int) {
	v.form.SetWidth(width)
}

// SetFields populates the inputs from previously entered values.
func (v *BudgetView) SetFields(fields wizard.Fields) {
	v.form.SetValue(budgetAmount, fields.Budget)
	if fields.Travelers > 0 {
		v.form.SetValue(budgetTravelers, strconv.Itoa(fields.Travelers))
	}
}

// Fields merges this step's inputs into the given field set. A blank
// traveler count defaults to one; a non-numeric one becomes zero and is
// rejected by the wizard's validation.
func (v *BudgetView) Fields(fields wizard.Fields) wizard.Fields {
	fields.Budget = v.form.Value(budgetAmount)

	switch raw := v.form.Value(budgetTravelers); raw {
	case "":
		fields.Travelers = 1
	default:
		travelers, err := strconv.Atoi(raw)
		if err != nil {
			travelers = 0
		}
		fields.Travelers = travelers
	}
	return fields
}

// Focus moves focus to the first input.
func (v *BudgetView) Focus() tea.Cmd {
	return v.form.FocusFirst()
}

// Update forwards messages to the form.
func (v *BudgetView) Update(msg tea.Msg) tea.Cmd {
	return v.form.Update(msg)
}

// View renders the step.
func (v *BudgetView) View() string {
	title := v.theme.TitleStyle.Render("What is your budget?")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", v.form.View())
}
