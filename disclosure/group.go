package disclosure

import (
	tea "github.com/charmbracelet/bubbletea"
)

// FocusMsg is emitted when group focus moves to a widget.
type FocusMsg struct {
	ID string
}

// BlurMsg is emitted for the widget that lost focus.
type BlurMsg struct {
	ID string
}

// Group coordinates keyboard focus across an ordered set of widgets and
// implements focus-return: when a disclosure opens it records where focus
// was, and when it closes (other than by dismissal) focus goes back there.
type Group struct {
	order    []string
	focused  int
	keys     NavKeyMap
	returnTo map[string]string
}

// NewGroup creates a focus group over the given widget IDs. The first widget
// starts focused.
func NewGroup(ids ...string) *Group {
	g := &Group{
		order:    append([]string(nil), ids...),
		focused:  -1,
		keys:     DefaultNavKeyMap(),
		returnTo: make(map[string]string),
	}
	if len(g.order) > 0 {
		g.focused = 0
	}
	return g
}

// WithKeyMap replaces the group's navigation keymap.
func (g *Group) WithKeyMap(keys NavKeyMap) *Group {
	g.keys = keys
	return g
}

// Add appends a widget to the focus order.
func (g *Group) Add(id string) {
	g.order = append(g.order, id)
	if g.focused < 0 {
		g.focused = 0
	}
}

// Focused returns the ID of the focused widget, or "" when none.
func (g *Group) Focused() string {
	if g.focused < 0 || g.focused >= len(g.order) {
		return ""
	}
	return g.order[g.focused]
}

// IsFocused reports whether the given widget holds focus.
func (g *Group) IsFocused(id string) bool {
	return id != "" && g.Focused() == id
}

// Focus moves focus to the given widget. It reports whether the widget is in
// the group, and returns commands for the blur and focus notifications.
func (g *Group) Focus(id string) (bool, tea.Cmd) {
	for i, candidate := range g.order {
		if candidate == id {
			return true, g.moveTo(i)
		}
	}
	return false, nil
}

// Next advances focus, wrapping at the end.
func (g *Group) Next() tea.Cmd {
	if len(g.order) == 0 {
		return nil
	}
	return g.moveTo((g.focused + 1) % len(g.order))
}

// Prev moves focus backwards, wrapping at the start.
func (g *Group) Prev() tea.Cmd {
	if len(g.order) == 0 {
		return nil
	}
	return g.moveTo((g.focused - 1 + len(g.order)) % len(g.order))
}

// Blur clears focus entirely.
func (g *Group) Blur() tea.Cmd {
	if g.focused < 0 {
		return nil
	}
	prev := g.Focused()
	g.focused = -1
	return func() tea.Msg { return BlurMsg{ID: prev} }
}

// HandleKey processes tab navigation. It reports whether the key was consumed.
func (g *Group) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case keyMatches(msg, g.keys.Next):
		return true, g.Next()
	case keyMatches(msg, g.keys.Prev):
		return true, g.Prev()
	}
	return false, nil
}

// RecordOpen stores the currently focused widget as the focus-return target
// for the given disclosure.
func (g *Group) RecordOpen(openID string) {
	g.returnTo[openID] = g.Focused()
}

// HandleChanged applies focus-return for close notifications. Dismissals drop
// the recorded target without moving focus.
func (g *Group) HandleChanged(msg ChangedMsg) tea.Cmd {
	if msg.Open {
		g.RecordOpen(msg.ID)
		return nil
	}

	target, ok := g.returnTo[msg.ID]
	delete(g.returnTo, msg.ID)
	if msg.Dismissed || !ok || target == "" {
		return nil
	}
	_, cmd := g.Focus(target)
	return cmd
}

func (g *Group) moveTo(index int) tea.Cmd {
	if index == g.focused {
		return nil
	}
	prev := g.Focused()
	g.focused = index
	next := g.Focused()

	var cmds []tea.Cmd
	if prev != "" && prev != next {
		cmds = append(cmds, func() tea.Msg { return BlurMsg{ID: prev} })
	}
	if next != "" {
		cmds = append(cmds, func() tea.Msg { return FocusMsg{ID: next} })
	}
	return tea.Batch(cmds...)
}
