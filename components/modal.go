package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// ModalActionMsg reports that a modal button was activated.
type ModalActionMsg struct {
	ID     string
	Action string
}

// ModalKeyMap defines the bindings active while a modal is open.
type ModalKeyMap struct {
	NextButton key.Binding
	PrevButton key.Binding
	Confirm    key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultModalKeyMap returns the standard modal bindings.
func DefaultModalKeyMap() ModalKeyMap {
	return ModalKeyMap{
		NextButton: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next action"),
		),
		PrevButton: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "previous action"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ModalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextButton, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k ModalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextButton, k.PrevButton, k.Confirm},
		{k.ScrollUp, k.ScrollDown},
	}
}

// Modal is a dismissable dialog rendered over a dimmed backdrop. While open
// it traps focus on its action buttons; escape closes it and the previously
// focused widget gets its focus back.
type Modal struct {
	id       string
	title    string
	body     viewport.Model
	content  string
	actions  []string
	active   int
	ctrl     *disclosure.Controller
	keys     ModalKeyMap
	width    int
	height   int
	boxWidth int
}

// NewModal creates a closed modal with the given action labels. The last
// action is treated as the default and starts active.
func NewModal(id, title, content string, actions ...string) *Modal {
	vp := viewport.New(46, 6)
	m := &Modal{
		id:       id,
		title:    title,
		body:     vp,
		content:  content,
		actions:  actions,
		ctrl:     disclosure.NewController(id),
		keys:     DefaultModalKeyMap(),
		width:    80,
		height:   24,
		boxWidth: 50,
	}
	if len(actions) > 0 {
		m.active = len(actions) - 1
	}
	m.reflow()
	return m
}

// WithKeyMap overrides the modal bindings.
func (m *Modal) WithKeyMap(keys ModalKeyMap) *Modal {
	m.keys = keys
	return m
}

// WithWidth sets the dialog box width.
func (m *Modal) WithWidth(width int) *Modal {
	if width > 10 {
		m.boxWidth = width
		m.reflow()
	}
	return m
}

// ID returns the modal identifier.
func (m *Modal) ID() string { return m.id }

// IsOpen reports whether the dialog shows.
func (m *Modal) IsOpen() bool { return m.ctrl.IsOpen() }

// ActiveAction returns the label of the highlighted button, or "" when the
// modal has no actions.
func (m *Modal) ActiveAction() string {
	if len(m.actions) == 0 {
		return ""
	}
	return m.actions[m.active]
}

// Open shows the dialog with the default action highlighted.
func (m *Modal) Open() tea.Cmd {
	if len(m.actions) > 0 {
		m.active = len(m.actions) - 1
	}
	m.body.GotoTop()
	return m.ctrl.Open()
}

// Close hides the dialog.
func (m *Modal) Close() tea.Cmd { return m.ctrl.Close() }

// SetSize tells the modal how large the surrounding screen is, so the
// overlay can centre itself.
func (m *Modal) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.boxWidth > width-4 && width > 14 {
		m.boxWidth = width - 4
	}
	m.reflow()
}

// SetContent replaces the body text.
func (m *Modal) SetContent(content string) {
	m.content = content
	m.reflow()
}

func (m *Modal) reflow() {
	inner := m.boxWidth - 4
	if inner < 10 {
		inner = 10
	}
	wrapped := wrapText(m.content, inner)
	lines := lipgloss.Height(wrapped)
	maxBody := m.height - 10
	if maxBody < 3 {
		maxBody = 3
	}
	if lines > maxBody {
		lines = maxBody
	}
	m.body.Width = inner
	m.body.Height = lines
	m.body.SetContent(wrapped)
}

// Init implements Component.
func (m *Modal) Init() tea.Cmd { return nil }

// Update handles window sizing and, while open, the trapped key bindings.
func (m *Modal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Modal) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !m.ctrl.IsOpen() {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.NextButton):
		m.cycle(1)
		return nil
	case key.Matches(msg, m.keys.PrevButton):
		m.cycle(-1)
		return nil
	case key.Matches(msg, m.keys.Confirm):
		action := m.ActiveAction()
		return tea.Batch(
			func() tea.Msg { return ModalActionMsg{ID: m.id, Action: action} },
			m.ctrl.Close(),
		)
	case key.Matches(msg, m.keys.ScrollUp):
		m.body.ScrollUp(1)
		return nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.body.ScrollDown(1)
		return nil
	}
	_, cmd := m.ctrl.HandleKey(msg)
	return cmd
}

func (m *Modal) cycle(step int) {
	if len(m.actions) == 0 {
		return
	}
	m.active = (m.active + step + len(m.actions)) % len(m.actions)
}

// View renders the dialog centred over a shaded backdrop. Closed modals
// render nothing; compose the result over the underlying screen.
func (m *Modal) View() string {
	if !m.ctrl.IsOpen() {
		return ""
	}

	th := theme.Current()

	title := theme.StyleWith(th, lipgloss.NewStyle(),
		theme.Typography(theme.TypographyTitle),
	).Render(m.title)

	buttons := make([]string, 0, len(m.actions))
	for i, action := range m.actions {
		state := theme.StateNormal
		if i == m.active {
			state = theme.StateFocused
		}
		buttons = append(buttons, th.Apply(lipgloss.NewStyle(), theme.KindButton, theme.VariantPrimary, state).
			PaddingLeft(1).PaddingRight(1).
			Render(action))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, interleave(buttons, " ")...)

	box := th.Apply(lipgloss.NewStyle(), theme.KindModal, theme.VariantNeutral, theme.StateNormal).
		Width(m.boxWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", m.body.View(), "", row))

	backdrop := theme.StyleWith(th, lipgloss.NewStyle(), theme.MutedForeground(theme.Surface))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(backdrop.GetForeground()),
	)
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}
