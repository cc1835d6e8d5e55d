package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	// Global keys
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding

	// Wizard navigation
	Next key.Binding
	Back key.Binding
	Tab  key.Binding

	// Result actions
	Save    key.Binding
	NewPlan key.Binding
}

// DefaultKeyMap returns a KeyMap with default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next step"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "previous step"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save itinerary"),
		),
		NewPlan: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "plan another trip"),
		),
	}
}

// HelpText returns a structured help text for all key bindings.
func (k KeyMap) HelpText() map[string][]key.Binding {
	return map[string][]key.Binding{
		"Global": {
			k.Quit,
			k.Help,
		},
		"Wizard": {
			k.Next,
			k.Back,
			k.Tab,
		},
		"Result": {
			k.Save,
			k.NewPlan,
		},
	}
}
