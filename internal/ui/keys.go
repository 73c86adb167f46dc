package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the screen's key bindings
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Dismiss   key.Binding
	Focus     key.Binding
	Details   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select city"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close results"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus search"),
		),
		Details: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "forecast details"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Dismiss, k.Focus, k.Details, k.Help, k.ForceQuit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Dismiss},
		{k.Focus, k.Details},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// updateEnabled toggles bindings for the current screen state
func (k *KeyMap) updateEnabled(panelVisible, inputFocused, hasSnapshot bool) {
	k.Up.SetEnabled(panelVisible)
	k.Down.SetEnabled(panelVisible)
	k.Select.SetEnabled(panelVisible)
	k.Dismiss.SetEnabled(panelVisible)
	if inputFocused {
		k.Focus.SetHelp("tab", "leave search")
	} else {
		k.Focus.SetHelp("tab", "focus search")
	}
	k.Details.SetEnabled(!inputFocused && hasSnapshot)
	k.Help.SetEnabled(!inputFocused)
	k.Quit.SetEnabled(!inputFocused)
}
