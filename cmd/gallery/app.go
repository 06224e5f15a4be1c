package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/components"
	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// galleryKeyMap holds the bindings the gallery itself owns; everything else
// belongs to the focused widget.
type galleryKeyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Theme     key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
}

func defaultGalleryKeyMap() galleryKeyMap {
	return galleryKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next section"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous section"),
		),
		NextFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next widget"),
		),
		PrevFocus: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous widget"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k galleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.NextTab, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k galleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus},
		{k.NextTab, k.PrevTab},
		{k.Theme, k.Help, k.Quit},
	}
}

// focusable pairs a group id with the widget it focuses.
type focusable struct {
	id     string
	focus  func() tea.Cmd
	blur   func() tea.Cmd
	update func(tea.Msg) tea.Cmd
}

type galleryModel struct {
	keys   galleryKeyMap
	help   help.Model
	navbar *components.Navbar
	tabs   *components.Tabs
	group  *disclosure.Group

	widgets map[string]focusable

	alert    *components.Alert
	swap     *components.Swap
	progress *components.Progress
	loading  *components.Loading
	dropdown *components.Dropdown
	accord   *components.Accordion
	tooltip  *components.Tooltip
	modal    *components.Modal
	table    *components.Table
	carousel *components.Carousel

	themes   []string
	themeIdx int
	status   string
	width    int
	height   int
	showHelp bool
}

func newGalleryModel(width, height int) *galleryModel {
	m := &galleryModel{
		keys:   defaultGalleryKeyMap(),
		help:   help.New(),
		themes: []string{"light", "dark", "retro", "frost"},
		width:  width,
		height: height,
	}

	m.navbar = components.NewNavbar("nav", "petal").
		WithStart(components.NavItem{Label: "Gallery"}).
		WithEnd(components.NavItem{Label: "Docs"}, components.NavItem{Label: "About"}).
		WithWidth(width)

	m.alert = components.WarningAlert("alert", "Press x to dismiss this alert.").
		WithTitle("Heads up").
		WithDismissible(true)
	m.swap = components.NewGlyphSwap("swap", "sound on", "sound off").
		WithEffect(components.SwapEffectRotate)
	m.progress = components.NewProgress().WithWidth(30).WithLabel("uploading assets")
	m.progress.SetPercent(0.62)
	m.loading = components.NewLoading("fetching releases")

	m.dropdown = components.NewDropdown("dropdown", "Region", []string{
		"us-east", "us-west", "eu-central", "ap-south",
	})
	m.accord = components.NewAccordion("accordion",
		components.AccordionSection{Title: "What is petal?", Body: "A themed widget kit for terminal apps."},
		components.AccordionSection{Title: "How are themes defined?", Body: "Built-ins or YAML files with semantic colour slots."},
	).WithSingleOpen(true)
	m.tooltip = components.NewTooltip("tooltip", "deploy", "Pushes the current build to production.").
		WithPlacement(components.PlacementRight)
	m.modal = components.NewModal("modal", "Delete release",
		"Removing v1.4.2 cannot be undone. Continue?", "Cancel", "Delete")
	m.modal.SetSize(width, height)

	m.table = components.NewTable("table",
		components.Column{Title: "Service", Width: 14},
		components.Column{Title: "Region", Width: 12},
		components.Column{Title: "Status", Width: 8},
	).WithZebra().WithHeight(5)
	m.table.SetRows([][]string{
		{"api", "us-east", "up"},
		{"worker", "us-east", "up"},
		{"api", "eu-central", "down"},
		{"cache", "ap-south", "up"},
	})
	m.carousel = components.NewCarousel("carousel",
		components.Raw("Slide one: themes"),
		components.Raw("Slide two: key bindings"),
		components.Raw("Slide three: focus management"),
	).WithWrap().WithWidth(40)

	m.tabs = components.NewTabs("sections",
		components.Tab{Title: "Feedback", Content: components.Raw("")},
		components.Tab{Title: "Disclosure", Content: components.Raw("")},
		components.Tab{Title: "Data", Content: components.Raw("")},
	).WithStyle(components.TabsStyleLifted).WithWidth(width)

	m.widgets = map[string]focusable{
		"alert": {
			id:     "alert",
			focus:  func() tea.Cmd { m.alert.Focus(); return nil },
			blur:   func() tea.Cmd { m.alert.Blur(); return nil },
			update: m.alert.Update,
		},
		"swap": {
			id:     "swap",
			focus:  func() tea.Cmd { m.swap.Focus(); return nil },
			blur:   func() tea.Cmd { m.swap.Blur(); return nil },
			update: m.swap.Update,
		},
		"dropdown": {
			id:     "dropdown",
			focus:  func() tea.Cmd { m.dropdown.Focus(); return nil },
			blur:   m.dropdown.Blur,
			update: m.dropdown.Update,
		},
		"accordion": {
			id:     "accordion",
			focus:  func() tea.Cmd { m.accord.Focus(); return nil },
			blur:   func() tea.Cmd { m.accord.Blur(); return nil },
			update: m.accord.Update,
		},
		"tooltip": {
			id:     "tooltip",
			focus:  m.tooltip.Focus,
			blur:   m.tooltip.Blur,
			update: m.tooltip.Update,
		},
		"table": {
			id:     "table",
			focus:  func() tea.Cmd { m.table.Focus(); return nil },
			blur:   func() tea.Cmd { m.table.Blur(); return nil },
			update: m.table.Update,
		},
		"carousel": {
			id:     "carousel",
			focus:  func() tea.Cmd { m.carousel.Focus(); return nil },
			blur:   func() tea.Cmd { m.carousel.Blur(); return nil },
			update: m.carousel.Update,
		},
	}

	m.group = disclosure.NewGroup(m.tabOrder()...)
	m.applyFocus()
	return m
}

// tabOrder returns the focus ring for the active section.
func (m *galleryModel) tabOrder() []string {
	switch m.tabs.Active() {
	case 1:
		return []string{"dropdown", "accordion", "tooltip"}
	case 2:
		return []string{"table", "carousel"}
	default:
		return []string{"alert", "swap"}
	}
}

// applyFocus synchronises widget focus flags with the group.
func (m *galleryModel) applyFocus() tea.Cmd {
	var cmds []tea.Cmd
	focused := m.group.Focused()
	for id, w := range m.widgets {
		if id == focused {
			cmds = append(cmds, w.focus())
		} else {
			cmds = append(cmds, w.blur())
		}
	}
	return tea.Batch(cmds...)
}

func (m *galleryModel) Init() tea.Cmd {
	return m.loading.Init()
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.navbar.WithWidth(msg.Width)
		m.tabs.WithWidth(msg.Width)
		m.modal.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case disclosure.ChangedMsg:
		if msg.Open {
			m.group.RecordOpen(msg.ID)
		}
		cmds = append(cmds, m.group.HandleChanged(msg))

	case disclosure.FocusMsg, disclosure.BlurMsg:
		for _, w := range m.widgets {
			cmds = append(cmds, w.update(msg))
		}
		cmds = append(cmds, m.applyFocus())
		return m, tea.Batch(cmds...)

	case components.SelectedMsg:
		m.status = fmt.Sprintf("selected region %s", msg.Value)

	case components.RowSelectedMsg:
		m.status = fmt.Sprintf("inspecting %s in %s", msg.Row[0], msg.Row[1])

	case components.ModalActionMsg:
		m.status = fmt.Sprintf("modal closed with %q", msg.Action)

	case components.AlertDismissedMsg:
		m.status = "alert dismissed"

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	cmds = append(cmds, m.loading.Update(msg))
	return m, tea.Batch(cmds...)
}

func (m *galleryModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The open modal owns the keyboard outright.
	if m.modal.IsOpen() {
		return m, m.modal.Update(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m, m.cycleTheme()
	case key.Matches(msg, m.keys.NextTab):
		return m, m.switchTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m, m.switchTab(-1)
	}

	// While a dropdown menu is open it also owns tab, so focus movement
	// only applies when nothing is expanded.
	if !m.dropdown.IsOpen() {
		if handled, cmd := m.group.HandleKey(msg); handled {
			return m, cmd
		}
	}

	focused, ok := m.widgets[m.group.Focused()]
	if !ok {
		return m, nil
	}
	cmd := focused.update(msg)

	// m opens the modal from anywhere in the Disclosure section.
	if cmd == nil && msg.String() == "m" && m.tabs.Active() == 1 && !m.dropdown.IsOpen() {
		cmd = m.modal.Open()
	}
	return m, cmd
}

func (m *galleryModel) switchTab(step int) tea.Cmd {
	var cmd tea.Cmd
	if step > 0 {
		m.tabs.Focus()
		cmd = m.tabs.Update(tea.KeyMsg{Type: tea.KeyRight})
	} else {
		m.tabs.Focus()
		cmd = m.tabs.Update(tea.KeyMsg{Type: tea.KeyLeft})
	}
	m.tabs.Blur()

	m.group = disclosure.NewGroup(m.tabOrder()...)
	return tea.Batch(cmd, m.applyFocus())
}

func (m *galleryModel) cycleTheme() tea.Cmd {
	m.themeIdx = (m.themeIdx + 1) % len(m.themes)
	name := m.themes[m.themeIdx]
	th, _ := theme.Builtin(name)
	theme.SetCurrent(th)
	m.status = "theme: " + name

	// Gradient and spinner colours are captured at construction time.
	m.progress = components.NewProgress().WithWidth(30).WithLabel("uploading assets")
	m.progress.SetPercent(0.62)
	return nil
}

func (m *galleryModel) sectionView() string {
	switch m.tabs.Active() {
	case 1:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.dropdown.View(),
			"",
			m.accord.View(),
			"",
			m.tooltip.View(),
			"",
			components.Caption("press m to open the confirmation modal").View(),
		)
	case 2:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.table.View(),
			"",
			m.carousel.View(),
		)
	default:
		badges := components.NewStack(
			components.SuccessBadge("passing"),
			components.InfoBadge("v1.4"),
			components.WarningBadge("beta"),
		).WithDirection(components.DirectionHorizontal).WithGap(1)

		return lipgloss.JoinVertical(lipgloss.Left,
			m.alert.View(),
			"",
			badges.View(),
			"",
			m.swap.View(),
			"",
			m.progress.View(),
			"",
			m.loading.View(),
		)
	}
}

func (m *galleryModel) View() string {
	if m.modal.IsOpen() {
		return m.modal.View()
	}

	var helpView string
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	} else {
		helpView = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	status := m.status
	if status == "" {
		status = "focused: " + m.group.Focused()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.navbar.View(),
		m.tabs.View(),
		"",
		m.sectionView(),
		"",
		components.Caption(status).View(),
		helpView,
	)
}
