package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// SelectedMsg is emitted when a dropdown option is chosen.
type SelectedMsg struct {
	ID    string
	Index int
	Value string
}

// DropdownKeyMap declares the bindings active while the menu is open.
type DropdownKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

// DefaultDropdownKeyMap binds arrows and vi-style j/k plus enter.
func DefaultDropdownKeyMap() DropdownKeyMap {
	return DropdownKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k DropdownKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select}
}

// FullHelp implements help.KeyMap.
func (k DropdownKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}}
}

// Dropdown is a closed trigger that discloses a selectable option menu.
// While open, losing focus dismisses the menu without moving focus back;
// esc closes it and the owning disclosure.Group restores focus.
type Dropdown struct {
	id       string
	label    string
	options  []string
	ctrl     *disclosure.Controller
	keys     DropdownKeyMap
	cursor   int
	selected int
	focused  bool
	width    int
}

// NewDropdown creates a closed dropdown with the first option selected.
func NewDropdown(id, label string, options []string) *Dropdown {
	return &Dropdown{
		id:      id,
		label:   label,
		options: options,
		ctrl:    disclosure.NewController(id),
		keys:    DefaultDropdownKeyMap(),
	}
}

// WithWidth fixes the trigger and menu width.
func (d *Dropdown) WithWidth(width int) *Dropdown {
	d.width = width
	return d
}

// WithKeyMap replaces the open-menu keymap.
func (d *Dropdown) WithKeyMap(keys DropdownKeyMap) *Dropdown {
	d.keys = keys
	return d
}

// WithDisabled sets the disabled state.
func (d *Dropdown) WithDisabled(disabled bool) *Dropdown {
	d.ctrl.SetDisabled(disabled)
	return d
}

// ID returns the widget identifier.
func (d *Dropdown) ID() string { return d.id }

// IsOpen reports whether the menu is shown.
func (d *Dropdown) IsOpen() bool { return d.ctrl.IsOpen() }

// Selected returns the selected option index.
func (d *Dropdown) Selected() int { return d.selected }

// Value returns the selected option, or "" when there are no options.
func (d *Dropdown) Value() string {
	if d.selected < 0 || d.selected >= len(d.options) {
		return ""
	}
	return d.options[d.selected]
}

// Focus routes keys to the dropdown.
func (d *Dropdown) Focus() { d.focused = true }

// Blur removes focus. An open menu is dismissed; call Update with the
// returned command's message to propagate the change.
func (d *Dropdown) Blur() tea.Cmd {
	d.focused = false
	return d.ctrl.Dismiss()
}

// Focused reports whether the dropdown is focused.
func (d *Dropdown) Focused() bool { return d.focused }

// Init implements Component.
func (d *Dropdown) Init() tea.Cmd { return nil }

// Update handles focus notifications and key presses.
func (d *Dropdown) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case disclosure.FocusMsg:
		if msg.ID == d.id {
			d.focused = true
		}
		return nil
	case disclosure.BlurMsg:
		if msg.ID == d.id {
			return d.Blur()
		}
		return nil
	case tea.KeyMsg:
		return d.handleKey(msg)
	}
	return nil
}

func (d *Dropdown) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !d.focused {
		return nil
	}

	if !d.ctrl.IsOpen() {
		if handled, cmd := d.ctrl.HandleKey(msg); handled {
			if d.ctrl.IsOpen() {
				d.cursor = d.selected
			}
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(msg, d.keys.Up):
		d.moveCursor(-1)
		return nil
	case key.Matches(msg, d.keys.Down):
		d.moveCursor(1)
		return nil
	case key.Matches(msg, d.keys.Select):
		return d.choose(d.cursor)
	}

	// Esc (and any other controller key) falls through to the controller.
	_, cmd := d.ctrl.HandleKey(msg)
	return cmd
}

func (d *Dropdown) moveCursor(step int) {
	if len(d.options) == 0 {
		return
	}
	d.cursor = (d.cursor + step + len(d.options)) % len(d.options)
}

func (d *Dropdown) choose(index int) tea.Cmd {
	if index < 0 || index >= len(d.options) {
		return nil
	}
	d.selected = index

	selected := SelectedMsg{ID: d.id, Index: index, Value: d.options[index]}
	return tea.Batch(
		func() tea.Msg { return selected },
		d.ctrl.Close(),
	)
}

// View renders the trigger, plus the menu when open.
func (d *Dropdown) View() string {
	t := theme.Current()

	state := theme.StateNormal
	if d.focused {
		state = theme.StateFocused
	}
	trigger := t.Apply(lipgloss.NewStyle(), theme.KindDropdown, theme.VariantNeutral, state)
	if d.width > 0 {
		trigger = trigger.Width(d.width)
	}

	indicator := "▾"
	if d.ctrl.IsOpen() {
		indicator = "▴"
	}
	head := trigger.Render(strings.TrimSpace(d.label+" "+d.Value()) + " " + indicator)

	if !d.ctrl.IsOpen() {
		return head
	}

	menu := theme.StyleWith(t, lipgloss.NewStyle(),
		theme.Border(theme.BorderRounded),
		theme.BorderForeground(theme.Primary),
	)
	if d.width > 0 {
		menu = menu.Width(d.width)
	}

	lines := make([]string, 0, len(d.options))
	for i, option := range d.options {
		marker := "  "
		if i == d.selected {
			marker = "✓ "
		}
		line := marker + option
		if i == d.cursor {
			line = t.Apply(lipgloss.NewStyle(), theme.KindDropdown, theme.VariantNeutral, theme.StateActive).Render(line)
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, head, menu.Render(strings.Join(lines, "\n")))
}
