package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Launch  key.Binding
	Confirm key.Binding
	Escape  key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "A"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "D"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" "),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game key.
// Returns the key (KeyUnknown if unbound) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyUnknown, true
	case key.Matches(msg, k.Escape):
		return core.KeyEscape, false
	case key.Matches(msg, k.Left):
		if msg.String() == "left" {
			return core.KeyLeft, false
		}
		return core.KeyA, false
	case key.Matches(msg, k.Right):
		if msg.String() == "right" {
			return core.KeyRight, false
		}
		return core.KeyD, false
	case key.Matches(msg, k.Launch):
		return core.KeySpace, false
	case key.Matches(msg, k.Confirm):
		return core.KeyEnter, false
	}
	return core.KeyUnknown, false
}
