// Package disclosure implements the open/closed state machine shared by every
// petal widget with a hidden panel: Dropdown, Accordion, Tooltip, Swap and
// Modal. A Controller owns the boolean, emits change messages through the
// Bubble Tea command channel, and handles the toggle/close keys. A Group
// coordinates focus across sibling widgets and restores focus when a panel
// closes.
package disclosure

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ChangedMsg is emitted whenever a controller flips between open and closed.
type ChangedMsg struct {
	// ID identifies the controller that changed.
	ID string
	// Open is the new state.
	Open bool
	// Dismissed is set when the panel was closed by an outside interaction
	// (blur) rather than an explicit close, in which case focus is not
	// restored to the trigger.
	Dismissed bool
}

// Controller owns the open/closed state of a single disclosure widget.
type Controller struct {
	id       string
	open     bool
	disabled bool
	keys     KeyMap
}

// NewController creates a closed controller with the default keymap.
func NewController(id string) *Controller {
	return &Controller{id: id, keys: DefaultKeyMap()}
}

// WithKeyMap replaces the controller's keymap.
func (c *Controller) WithKeyMap(keys KeyMap) *Controller {
	c.keys = keys
	return c
}

// WithOpen sets the initial state.
func (c *Controller) WithOpen(open bool) *Controller {
	c.open = open
	return c
}

// ID returns the controller's identifier.
func (c *Controller) ID() string { return c.id }

// IsOpen reports whether the panel is shown.
func (c *Controller) IsOpen() bool { return c.open }

// Disabled reports whether the controller ignores transitions.
func (c *Controller) Disabled() bool { return c.disabled }

// SetDisabled toggles the disabled state. Disabling an open controller closes
// it silently.
func (c *Controller) SetDisabled(disabled bool) {
	c.disabled = disabled
	if disabled {
		c.open = false
	}
}

// KeyMap returns the controller's keymap, for help surfaces.
func (c *Controller) KeyMap() KeyMap { return c.keys }

// Open shows the panel. The returned command is nil when nothing changed.
func (c *Controller) Open() tea.Cmd {
	if c.disabled || c.open {
		return nil
	}
	c.open = true
	return c.changed(false)
}

// Close hides the panel. The returned command is nil when nothing changed.
func (c *Controller) Close() tea.Cmd {
	if c.disabled || !c.open {
		return nil
	}
	c.open = false
	return c.changed(false)
}

// Toggle flips the state.
func (c *Controller) Toggle() tea.Cmd {
	if c.open {
		return c.Close()
	}
	return c.Open()
}

// Dismiss hides the panel in response to an outside interaction. Unlike
// Close, the emitted message asks the focus group not to restore focus.
func (c *Controller) Dismiss() tea.Cmd {
	if c.disabled || !c.open {
		return nil
	}
	c.open = false
	return c.changed(true)
}

// HandleKey processes a key press. It reports whether the key was consumed so
// unhandled keys (notably esc on a closed panel) fall through to the host.
func (c *Controller) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if c.disabled {
		return false, nil
	}
	switch {
	case keyMatches(msg, c.keys.Toggle):
		return true, c.Toggle()
	case keyMatches(msg, c.keys.Close):
		if !c.open {
			return false, nil
		}
		return true, c.Close()
	}
	return false, nil
}

func (c *Controller) changed(dismissed bool) tea.Cmd {
	msg := ChangedMsg{ID: c.id, Open: c.open, Dismissed: dismissed}
	return func() tea.Msg { return msg }
}
