package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"termnotes/internal/adapters/tui/views"
	"termnotes/internal/session"
)

// translateKey maps a terminal key event to session keys. Pasted text
// arrives as one message with several runes.
func translateKey(msg tea.KeyMsg) []session.Key {
	switch {
	case key.Matches(msg, views.Keys.Quit):
		return []session.Key{{Code: session.KeyCtrlQ}}
	case key.Matches(msg, views.Keys.Newline):
		return []session.Key{{Code: session.KeyNewline}}
	case key.Matches(msg, views.Keys.Enter):
		return []session.Key{{Code: session.KeyEnter}}
	case key.Matches(msg, views.Keys.Back):
		return []session.Key{{Code: session.KeyEsc}}
	case key.Matches(msg, views.Keys.Backspace):
		return []session.Key{{Code: session.KeyBackspace}}
	case key.Matches(msg, views.Keys.Up):
		return []session.Key{{Code: session.KeyUp}}
	case key.Matches(msg, views.Keys.Down):
		return []session.Key{{Code: session.KeyDown}}
	}

	switch msg.Type {
	case tea.KeySpace:
		return []session.Key{session.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		keys := make([]session.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.RuneKey(r))
		}
		return keys
	}
	return nil
}
