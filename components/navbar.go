package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// NavigateMsg reports that a navbar item was activated.
type NavigateMsg struct {
	ID    string
	Index int
	Label string
}

// NavItem is a single navbar entry.
type NavItem struct {
	Label    string
	Disabled bool
}

// NavbarKeyMap defines the navbar bindings.
type NavbarKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Select key.Binding
}

// DefaultNavbarKeyMap returns the standard navbar bindings.
func DefaultNavbarKeyMap() NavbarKeyMap {
	return NavbarKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next item"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous item"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k NavbarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Select}
}

// FullHelp implements help.KeyMap.
func (k NavbarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next, k.Select}}
}

// Navbar is a horizontal bar with a brand label and three item groups
// aligned to the start, centre, and end. One item is active at a time;
// left/right move the highlight, enter activates it.
type Navbar struct {
	id      string
	brand   string
	start   []NavItem
	center  []NavItem
	end     []NavItem
	active  int
	keys    NavbarKeyMap
	focused bool
	width   int
}

// NewNavbar creates a navbar with only a brand label.
func NewNavbar(id, brand string) *Navbar {
	return &Navbar{id: id, brand: brand, keys: DefaultNavbarKeyMap(), width: 80}
}

// WithStart appends items to the leading group.
func (n *Navbar) WithStart(items ...NavItem) *Navbar {
	n.start = append(n.start, items...)
	return n
}

// WithCenter appends items to the middle group.
func (n *Navbar) WithCenter(items ...NavItem) *Navbar {
	n.center = append(n.center, items...)
	return n
}

// WithEnd appends items to the trailing group.
func (n *Navbar) WithEnd(items ...NavItem) *Navbar {
	n.end = append(n.end, items...)
	return n
}

// WithWidth sets the bar width.
func (n *Navbar) WithWidth(width int) *Navbar {
	if width > 0 {
		n.width = width
	}
	return n
}

// WithKeyMap overrides the navbar bindings.
func (n *Navbar) WithKeyMap(keys NavbarKeyMap) *Navbar {
	n.keys = keys
	return n
}

// items returns all entries in visual order.
func (n *Navbar) items() []NavItem {
	all := make([]NavItem, 0, len(n.start)+len(n.center)+len(n.end))
	all = append(all, n.start...)
	all = append(all, n.center...)
	all = append(all, n.end...)
	return all
}

// Active returns the highlighted item index.
func (n *Navbar) Active() int { return n.active }

// ActiveLabel returns the highlighted item's label, or "" when empty.
func (n *Navbar) ActiveLabel() string {
	all := n.items()
	if len(all) == 0 {
		return ""
	}
	return all[n.active].Label
}

// SetActive moves the highlight. Disabled and out-of-range indices are
// ignored.
func (n *Navbar) SetActive(index int) {
	all := n.items()
	if index < 0 || index >= len(all) || all[index].Disabled {
		return
	}
	n.active = index
}

// Focused reports whether the navbar handles keys.
func (n *Navbar) Focused() bool { return n.focused }

// Focus makes the navbar handle keys.
func (n *Navbar) Focus() { n.focused = true }

// Blur stops the navbar from handling keys.
func (n *Navbar) Blur() { n.focused = false }

func (n *Navbar) nextEnabled(step int) int {
	all := n.items()
	if len(all) == 0 {
		return 0
	}
	next := n.active
	for range all {
		next = (next + step + len(all)) % len(all)
		if !all[next].Disabled {
			return next
		}
	}
	return n.active
}

// Init implements Component.
func (n *Navbar) Init() tea.Cmd { return nil }

// Update moves the highlight and emits NavigateMsg on enter.
func (n *Navbar) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !n.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, n.keys.Next):
		n.active = n.nextEnabled(1)
		return nil
	case key.Matches(keyMsg, n.keys.Prev):
		n.active = n.nextEnabled(-1)
		return nil
	case key.Matches(keyMsg, n.keys.Select):
		all := n.items()
		if len(all) == 0 || all[n.active].Disabled {
			return nil
		}
		id, index, label := n.id, n.active, all[n.active].Label
		return func() tea.Msg { return NavigateMsg{ID: id, Index: index, Label: label} }
	}
	return nil
}

func (n *Navbar) renderGroup(items []NavItem, offset int, th theme.Theme) string {
	if len(items) == 0 {
		return ""
	}
	parts := make([]string, 0, len(items))
	for i, item := range items {
		state := theme.StateNormal
		variant := theme.VariantNeutral
		switch {
		case item.Disabled:
			state = theme.StateDisabled
		case offset+i == n.active:
			variant = theme.VariantPrimary
			if n.focused {
				state = theme.StateFocused
			} else {
				state = theme.StateActive
			}
		}
		parts = append(parts, th.Apply(lipgloss.NewStyle(), theme.KindNavbar, variant, state).
			PaddingLeft(1).PaddingRight(1).
			Render(item.Label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// View renders the bar with the brand leading and the groups spread across
// the width.
func (n *Navbar) View() string {
	th := theme.Current()

	brand := theme.StyleWith(th, lipgloss.NewStyle(),
		theme.Typography(theme.TypographyTitle),
		theme.Foreground(theme.Primary),
	).PaddingRight(2).Render(n.brand)

	lead := lipgloss.JoinHorizontal(lipgloss.Center, brand, n.renderGroup(n.start, 0, th))
	mid := n.renderGroup(n.center, len(n.start), th)
	trail := n.renderGroup(n.end, len(n.start)+len(n.center), th)

	used := lipgloss.Width(lead) + lipgloss.Width(mid) + lipgloss.Width(trail)
	gap := n.width - used
	if gap < 2 {
		gap = 2
	}
	left := lipgloss.NewStyle().Width(gap / 2).Render("")
	right := lipgloss.NewStyle().Width(gap - gap/2).Render("")

	bar := lipgloss.JoinHorizontal(lipgloss.Center, lead, left, mid, right, trail)
	return th.Apply(lipgloss.NewStyle(), theme.KindNavbar, theme.VariantNeutral, theme.StateNormal).
		Width(n.width).
		Render(bar)
}
