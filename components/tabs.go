package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// TabChangedMsg is emitted when the active tab changes.
type TabChangedMsg struct {
	ID    string
	Index int
	Title string
}

// TabsStyle selects how the tab bar is drawn.
type TabsStyle int

const (
	// TabsStylePlain underlines the active title only.
	TabsStylePlain TabsStyle = iota
	// TabsStyleBoxed draws every tab in its own box.
	TabsStyleBoxed
	// TabsStyleLifted raises the active tab out of a baseline rule.
	TabsStyleLifted
	// TabsStyleBordered runs a rule under every tab, coloured to mark the
	// active one.
	TabsStyleBordered
)

// Tab is one entry in a Tabs widget.
type Tab struct {
	Title    string
	Content  Renderable
	Disabled bool
}

// TabsKeyMap declares the tab-navigation bindings.
type TabsKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultTabsKeyMap binds arrow keys and vi-style h/l.
func DefaultTabsKeyMap() TabsKeyMap {
	return TabsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous tab"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k TabsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k TabsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}}
}

// Tabs shows one content panel at a time behind a row of titles. Disabled
// tabs are skipped during navigation.
type Tabs struct {
	id      string
	tabs    []Tab
	active  int
	style   TabsStyle
	keys    TabsKeyMap
	focused bool
	width   int
}

// NewTabs creates a tab strip over the given tabs. The first enabled tab
// starts active.
func NewTabs(id string, tabs ...Tab) *Tabs {
	t := &Tabs{id: id, tabs: tabs, keys: DefaultTabsKeyMap()}
	if len(tabs) > 0 && tabs[0].Disabled {
		t.active = t.nextEnabled(0, 1)
	}
	return t
}

// WithStyle sets the bar drawing style.
func (t *Tabs) WithStyle(style TabsStyle) *Tabs {
	t.style = style
	return t
}

// WithKeyMap replaces the navigation keymap.
func (t *Tabs) WithKeyMap(keys TabsKeyMap) *Tabs {
	t.keys = keys
	return t
}

// WithWidth constrains the content panel width.
func (t *Tabs) WithWidth(width int) *Tabs {
	t.width = width
	return t
}

// Focus routes navigation keys to the strip.
func (t *Tabs) Focus() { t.focused = true }

// Blur stops routing keys to the strip.
func (t *Tabs) Blur() { t.focused = false }

// Focused reports whether the strip is focused.
func (t *Tabs) Focused() bool { return t.focused }

// Active returns the active tab index.
func (t *Tabs) Active() int { return t.active }

// SetActive activates the tab at index if it exists and is enabled. The
// returned command carries the change notification.
func (t *Tabs) SetActive(index int) tea.Cmd {
	if index < 0 || index >= len(t.tabs) || t.tabs[index].Disabled || index == t.active {
		return nil
	}
	t.active = index
	return t.changed()
}

// KeyMap returns the navigation keymap, for help surfaces.
func (t *Tabs) KeyMap() TabsKeyMap { return t.keys }

// Init implements Component.
func (t *Tabs) Init() tea.Cmd { return nil }

// Update handles tab navigation while focused.
func (t *Tabs) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused || len(t.tabs) == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, t.keys.Next):
		return t.SetActive(t.nextEnabled(t.active, 1))
	case key.Matches(keyMsg, t.keys.Prev):
		return t.SetActive(t.nextEnabled(t.active, -1))
	}

	// Number keys jump straight to a tab.
	if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		return t.SetActive(int(s[0] - '1'))
	}

	return nil
}

// View renders the bar and the active panel.
func (t *Tabs) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	bar := t.renderBar()

	var panel string
	if content := t.tabs[t.active].Content; content != nil {
		panel = content.View()
	}
	if t.width > 0 {
		panel = lipgloss.NewStyle().Width(t.width).Render(panel)
	}

	if panel == "" {
		return bar
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, panel)
}

func (t *Tabs) renderBar() string {
	th := theme.Current()

	titles := make([]string, 0, len(t.tabs))
	for i, tab := range t.tabs {
		state := theme.StateNormal
		switch {
		case tab.Disabled:
			state = theme.StateDisabled
		case i == t.active:
			state = theme.StateActive
		}

		style := th.Apply(lipgloss.NewStyle(), theme.KindTabs, theme.VariantNeutral, state)

		switch t.style {
		case TabsStyleBoxed:
			border := theme.BorderRounded
			style = theme.StyleWith(th, style, theme.Border(border))
			if i == t.active {
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Primary))
			} else {
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Neutral))
			}
		case TabsStyleLifted:
			if i == t.active {
				style = style.Border(liftedActiveBorder(), true, true, false, true)
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Primary))
			} else {
				style = style.Border(liftedBorder(), true, true, false, true)
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Neutral))
			}
		case TabsStyleBordered:
			style = style.Border(lipgloss.NormalBorder(), false, false, true, false)
			if i == t.active {
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Primary))
			} else {
				style = theme.StyleWith(th, style, theme.BorderForeground(theme.Neutral))
			}
		default:
			if i == t.active {
				style = style.Underline(true)
			}
		}

		titles = append(titles, style.Render(tab.Title))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, titles...)
}

func (t *Tabs) nextEnabled(from, step int) int {
	if len(t.tabs) == 0 {
		return from
	}
	index := from
	for i := 0; i < len(t.tabs); i++ {
		index = (index + step + len(t.tabs)) % len(t.tabs)
		if !t.tabs[index].Disabled {
			return index
		}
	}
	return from
}

func (t *Tabs) changed() tea.Cmd {
	msg := TabChangedMsg{ID: t.id, Index: t.active, Title: t.tabs[t.active].Title}
	return func() tea.Msg { return msg }
}

func liftedBorder() lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = "┴"
	border.BottomRight = "┴"
	return border
}

func liftedActiveBorder() lipgloss.Border {
	border := lipgloss.RoundedBorder()
	border.BottomLeft = "┘"
	border.BottomRight = "└"
	return border
}

// TitlesOnly builds tabs whose panels are plain strings.
func TitlesOnly(id string, titles ...string) *Tabs {
	tabs := make([]Tab, 0, len(titles))
	for _, title := range titles {
		tabs = append(tabs, Tab{Title: title})
	}
	return NewTabs(id, tabs...)
}
