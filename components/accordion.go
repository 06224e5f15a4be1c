package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// AccordionSection is one collapsible section.
type AccordionSection struct {
	Title string
	Body  string
}

// AccordionKeyMap declares the section-navigation bindings. Toggling is
// handled by each section's disclosure controller.
type AccordionKeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultAccordionKeyMap binds arrows and vi-style j/k.
func DefaultAccordionKeyMap() AccordionKeyMap {
	return AccordionKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous section"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next section"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k AccordionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down}
}

// FullHelp implements help.KeyMap.
func (k AccordionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}}
}

// Accordion is a column of collapsible sections, each owned by its own
// disclosure controller. In single-open mode, opening a section closes the
// others (radio behaviour).
type Accordion struct {
	id       string
	sections []AccordionSection
	ctrls    []*disclosure.Controller
	keys     AccordionKeyMap
	cursor   int
	single   bool
	focused  bool
	width    int
}

// NewAccordion creates a fully collapsed accordion.
func NewAccordion(id string, sections ...AccordionSection) *Accordion {
	ctrls := make([]*disclosure.Controller, len(sections))
	for i := range sections {
		ctrls[i] = disclosure.NewController(sectionID(id, i))
	}
	return &Accordion{id: id, sections: sections, ctrls: ctrls, keys: DefaultAccordionKeyMap()}
}

func sectionID(id string, index int) string {
	return id + "/" + strconv.Itoa(index)
}

// WithSingleOpen enables radio behaviour.
func (a *Accordion) WithSingleOpen(single bool) *Accordion {
	a.single = single
	return a
}

// WithWidth constrains section bodies.
func (a *Accordion) WithWidth(width int) *Accordion {
	a.width = width
	return a
}

// WithKeyMap replaces the navigation keymap.
func (a *Accordion) WithKeyMap(keys AccordionKeyMap) *Accordion {
	a.keys = keys
	return a
}

// Focus routes keys to the accordion.
func (a *Accordion) Focus() { a.focused = true }

// Blur stops routing keys to the accordion.
func (a *Accordion) Blur() { a.focused = false }

// Focused reports whether the accordion is focused.
func (a *Accordion) Focused() bool { return a.focused }

// Cursor returns the highlighted section index.
func (a *Accordion) Cursor() int { return a.cursor }

// IsOpen reports whether the section at index is expanded.
func (a *Accordion) IsOpen(index int) bool {
	return index >= 0 && index < len(a.ctrls) && a.ctrls[index].IsOpen()
}

// Open expands the section at index, honouring single-open mode.
func (a *Accordion) Open(index int) tea.Cmd {
	if index < 0 || index >= len(a.ctrls) {
		return nil
	}

	cmds := []tea.Cmd{a.ctrls[index].Open()}
	if a.single {
		for i, ctrl := range a.ctrls {
			if i != index {
				cmds = append(cmds, ctrl.Close())
			}
		}
	}
	return tea.Batch(cmds...)
}

// Init implements Component.
func (a *Accordion) Init() tea.Cmd { return nil }

// Update handles navigation and toggling while focused.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused || len(a.sections) == 0 {
		return nil
	}

	switch {
	case key.Matches(keyMsg, a.keys.Up):
		a.cursor = (a.cursor - 1 + len(a.sections)) % len(a.sections)
		return nil
	case key.Matches(keyMsg, a.keys.Down):
		a.cursor = (a.cursor + 1) % len(a.sections)
		return nil
	}

	ctrl := a.ctrls[a.cursor]
	wasOpen := ctrl.IsOpen()
	handled, cmd := ctrl.HandleKey(keyMsg)
	if !handled {
		return nil
	}

	// Opening in single-open mode closes the siblings.
	if a.single && !wasOpen && ctrl.IsOpen() {
		cmds := []tea.Cmd{cmd}
		for i, other := range a.ctrls {
			if i != a.cursor {
				cmds = append(cmds, other.Close())
			}
		}
		return tea.Batch(cmds...)
	}
	return cmd
}

// View renders headers and any expanded bodies.
func (a *Accordion) View() string {
	t := theme.Current()

	var rows []string
	for i, section := range a.sections {
		state := theme.StateNormal
		if a.focused && i == a.cursor {
			state = theme.StateFocused
		}
		header := t.Apply(lipgloss.NewStyle(), theme.KindAccordion, theme.VariantNeutral, state)

		chevron := "▸"
		if a.ctrls[i].IsOpen() {
			chevron = "▾"
		}
		rows = append(rows, header.Render(chevron+" "+section.Title))

		if a.ctrls[i].IsOpen() {
			body := section.Body
			if a.width > 2 {
				body = wrapText(body, a.width-2)
			}
			bodyStyle := theme.StyleWith(t, lipgloss.NewStyle(),
				theme.Typography(theme.TypographyBody)).PaddingLeft(2)
			rows = append(rows, bodyStyle.Render(body))
		}
	}

	return strings.Join(rows, "\n")
}
