package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"vtable/internal/viewport"
)

// keyMap holds the table's key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Space     key.Binding
	SpaceBack key.Binding
	Help      key.Binding
	Pager     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
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
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "page down"),
		),
		// Terminals do not report shift with space, so b stands in for shift+space
		SpaceBack: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "page back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Pager: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "all rows in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Space, k.SpaceBack, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Space, k.SpaceBack},
		{k.Pager, k.Help, k.Quit},
	}
}

// navigationKey translates a key press into a viewport key
func (k keyMap) navigationKey(msg tea.KeyMsg) viewport.KeyEvent {
	switch {
	case key.Matches(msg, k.Up):
		return viewport.KeyEvent{Key: viewport.KeyArrowUp}
	case key.Matches(msg, k.Down):
		return viewport.KeyEvent{Key: viewport.KeyArrowDown}
	case key.Matches(msg, k.PageUp):
		return viewport.KeyEvent{Key: viewport.KeyPageUp}
	case key.Matches(msg, k.PageDown):
		return viewport.KeyEvent{Key: viewport.KeyPageDown}
	case key.Matches(msg, k.Space):
		return viewport.KeyEvent{Key: viewport.KeySpace}
	case key.Matches(msg, k.SpaceBack):
		return viewport.KeyEvent{Key: viewport.KeySpace, Shift: true}
	}
	return viewport.KeyEvent{Key: viewport.KeyOther}
}
