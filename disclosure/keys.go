package disclosure

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap declares the key bindings a controller responds to. Bindings carry
// help text so hosts can surface them with bubbles/help.
type KeyMap struct {
	Toggle key.Binding
	Close  key.Binding
}

// DefaultKeyMap binds enter/space to toggle and esc to close.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Close}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle, k.Close}}
}

// NavKeyMap declares the focus-navigation bindings handled by a Group.
type NavKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultNavKeyMap binds tab and shift+tab.
func DefaultNavKeyMap() NavKeyMap {
	return NavKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k NavKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev}
}

// FullHelp implements help.KeyMap.
func (k NavKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev}}
}

func keyMatches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
