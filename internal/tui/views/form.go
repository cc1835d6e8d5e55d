package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mcallisters/AI-powered-travel-planner/internal/tui/styles"
)

// formField couples a text input with its label and an optional hint shown
// below the field.
type formField struct {
	label string
	hint  string
	input textinput.Model
}

// form is a vertical stack of labeled text inputs with a single focused
// field. Tab and shift+tab move focus; all other keys go to the focused
// input.
type form struct {
	fields []formField
	focus  int
	theme  *styles.Theme
	width  int
}

func newForm(theme *styles.Theme, fields ...formField) *form {
	f := &form{
		fields: fields,
		theme:  theme,
		width:  60,
	}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

func newField(label, placeholder, hint string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 40
	return formField{label: label, hint: hint, input: ti}
}

func (f *form) SetWidth(width int) {
	if width > 0 {
		f.width = width
	}
}

// Value returns the trimmed value of the field at index i.
func (f *form) Value(i int) string {
	return strings.TrimSpace(f.fields[i].input.Value())
}

// SetValue sets the value of the field at index i.
func (f *form) SetValue(i int, value string) {
	f.fields[i].input.SetValue(value)
}

// FocusFirst moves focus to the first field.
func (f *form) FocusFirst() tea.Cmd {
	return f.setFocus(0)
}

func (f *form) setFocus(i int) tea.Cmd {
	for j := range f.fields {
		f.fields[j].input.Blur()
	}
	f.focus = i
	return f.fields[i].input.Focus()
}

// Update handles focus cycling and forwards other keys to the focused input.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.setFocus((f.focus + 1) % len(f.fields))
		case "shift+tab", "up":
			return f.setFocus((f.focus + len(f.fields) - 1) % len(f.fields))
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

// View renders the form fields vertically.
func (f *form) View() string {
	var b strings.Builder
	for i, field := range f.fields {
		labelStyle := f.theme.LabelStyle
		if i == f.focus {
			labelStyle = f.theme.FocusedLabelStyle
		}
		b.WriteString(labelStyle.Render(field.label))
		b.WriteString("\n")
		b.WriteString(field.input.View())
		b.WriteString("\n")
		if field.hint != "" {
			b.WriteString(f.theme.HintStyle.Render(field.hint))
			b.WriteString("\n")
		}
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.NewStyle().Width(f.width).Render(b.String())
}
