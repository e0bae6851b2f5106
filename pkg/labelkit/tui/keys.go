package tui

import (
	"github.com/BrandonKowalski/labelkit/pkg/labelkit/internal"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Select      key.Binding
	Back        key.Binding
	ToggleNone  key.Binding
	ToggleNames key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", internal.Localize(internal.MsgFooterSelect, "Select")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", internal.Localize(internal.MsgFooterBack, "Back")),
		),
		ToggleNone: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "none row"),
		),
		ToggleNames: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "names"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Back}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Select, k.Back, k.ToggleNone, k.ToggleNames},
	}
}
