package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/disclosure"
	"github.com/petal-ui/petal/theme"
)

// SwapEffect changes the indicator drawn next to the active face.
type SwapEffect int

const (
	SwapEffectNone SwapEffect = iota
	SwapEffectRotate
	SwapEffectFlip
)

// Swap toggles between two faces. The on face shows while the underlying
// controller is open.
type Swap struct {
	id      string
	on      Renderable
	off     Renderable
	ctrl    *disclosure.Controller
	effect  SwapEffect
	focused bool
}

// NewSwap creates a swap showing its off face.
func NewSwap(id string, on, off Renderable) *Swap {
	return &Swap{id: id, on: on, off: off, ctrl: disclosure.NewController(id)}
}

// NewGlyphSwap creates a swap between two plain glyphs.
func NewGlyphSwap(id, on, off string) *Swap {
	return NewSwap(id, Raw(on), Raw(off))
}

// WithEffect sets the indicator effect.
func (s *Swap) WithEffect(effect SwapEffect) *Swap {
	s.effect = effect
	return s
}

// WithActive sets the initial face.
func (s *Swap) WithActive(active bool) *Swap {
	s.ctrl.WithOpen(active)
	return s
}

// Active reports whether the on face shows.
func (s *Swap) Active() bool { return s.ctrl.IsOpen() }

// Toggle flips the face programmatically.
func (s *Swap) Toggle() tea.Cmd { return s.ctrl.Toggle() }

// Focus routes the toggle key to the swap.
func (s *Swap) Focus() { s.focused = true }

// Blur stops routing keys to the swap.
func (s *Swap) Blur() { s.focused = false }

// Focused reports whether the swap is focused.
func (s *Swap) Focused() bool { return s.focused }

// Init implements Component.
func (s *Swap) Init() tea.Cmd { return nil }

// Update toggles on enter/space while focused.
func (s *Swap) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused {
		return nil
	}
	_, cmd := s.ctrl.HandleKey(keyMsg)
	return cmd
}

// View renders the active face.
func (s *Swap) View() string {
	t := theme.Current()

	state := theme.StateNormal
	if s.focused {
		state = theme.StateFocused
	}
	style := t.Apply(lipgloss.NewStyle(), theme.KindSwap, theme.VariantNeutral, state)

	face := s.off
	if s.ctrl.IsOpen() {
		face = s.on
	}
	content := ""
	if face != nil {
		content = face.View()
	}

	if indicator := s.indicator(); indicator != "" {
		content += " " + indicator
	}
	return style.Render(content)
}

func (s *Swap) indicator() string {
	switch s.effect {
	case SwapEffectRotate:
		if s.ctrl.IsOpen() {
			return "↻"
		}
		return "↺"
	case SwapEffectFlip:
		if s.ctrl.IsOpen() {
			return "⇅"
		}
		return "⇵"
	default:
		return ""
	}
}
