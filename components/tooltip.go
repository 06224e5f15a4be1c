package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// Placement positions a tooltip relative to its anchor.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementBottom
	PlacementLeft
	PlacementRight
)

// Tooltip annotates an anchor with a hint panel. The tip opens when the
// anchor gains focus and dismisses when it loses focus; enter/space and esc
// work as on every disclosure.
type Tooltip struct {
	id        string
	anchor    string
	tip       string
	placement Placement
	ctrl      *disclosure.Controller
	focused   bool
}

// NewTooltip creates a closed tooltip placed above its anchor.
func NewTooltip(id, anchor, tip string) *Tooltip {
	return &Tooltip{id: id, anchor: anchor, tip: tip, ctrl: disclosure.NewController(id)}
}

// WithPlacement sets the tip position.
func (t *Tooltip) WithPlacement(placement Placement) *Tooltip {
	t.placement = placement
	return t
}

// IsOpen reports whether the tip shows.
func (t *Tooltip) IsOpen() bool { return t.ctrl.IsOpen() }

// Focused reports whether the anchor is focused.
func (t *Tooltip) Focused() bool { return t.focused }

// Focus shows the tip.
func (t *Tooltip) Focus() tea.Cmd {
	t.focused = true
	return t.ctrl.Open()
}

// Blur dismisses the tip.
func (t *Tooltip) Blur() tea.Cmd {
	t.focused = false
	return t.ctrl.Dismiss()
}

// Init implements Component.
func (t *Tooltip) Init() tea.Cmd { return nil }

// Update handles focus notifications and the toggle/close keys.
func (t *Tooltip) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case disclosure.FocusMsg:
		if msg.ID == t.id {
			return t.Focus()
		}
		return nil
	case disclosure.BlurMsg:
		if msg.ID == t.id {
			return t.Blur()
		}
		return nil
	case tea.KeyMsg:
		if !t.focused {
			return nil
		}
		_, cmd := t.ctrl.HandleKey(msg)
		return cmd
	}
	return nil
}

// View renders the anchor, with the tip beside it when open.
func (t *Tooltip) View() string {
	th := theme.Current()

	anchorStyle := theme.StyleWith(th, lipgloss.NewStyle(), theme.Typography(theme.TypographyBody))
	if t.focused {
		anchorStyle = anchorStyle.Underline(true)
	}
	anchor := anchorStyle.Render(t.anchor)

	if !t.ctrl.IsOpen() {
		return anchor
	}

	tip := th.Apply(lipgloss.NewStyle(), theme.KindTooltip, theme.VariantNeutral, theme.StateNormal).
		Render(t.tip)

	switch t.placement {
	case PlacementBottom:
		return lipgloss.JoinVertical(lipgloss.Left, anchor, tip)
	case PlacementLeft:
		return lipgloss.JoinHorizontal(lipgloss.Center, tip, " ", anchor)
	case PlacementRight:
		return lipgloss.JoinHorizontal(lipgloss.Center, anchor, " ", tip)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, tip, anchor)
	}
}
