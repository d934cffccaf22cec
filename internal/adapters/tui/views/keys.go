package views

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the non-character keys the session reacts to, plus the
// character keys shown in hint lines
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Enter     key.Binding
	Newline   key.Binding
	Back      key.Binding
	Backspace key.Binding
	Quit      key.Binding

	// Hint-only: delivered to the session as runes
	Command key.Binding
	Toggle  key.Binding
	Mark    key.Binding
	Help    key.Binding
}

var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("j/↓", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select/edit"),
	),
	Newline: key.NewBinding(
		key.WithKeys("alt+enter"),
		key.WithHelp("alt+enter", "newline"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("backspace", "delete char"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q", "ctrl+c"),
		key.WithHelp("ctrl+q", "quit"),
	),
	Command: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "command"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle done"),
	),
	Mark: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "mark"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
