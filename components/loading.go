package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// LoadingStyle selects the spinner glyph set.
type LoadingStyle int

const (
	LoadingDots LoadingStyle = iota
	LoadingLine
	LoadingRing
	LoadingPulse
)

func (s LoadingStyle) spinner() spinner.Spinner {
	switch s {
	case LoadingLine:
		return spinner.Line
	case LoadingRing:
		return spinner.Points
	case LoadingPulse:
		return spinner.Pulse
	default:
		return spinner.Dot
	}
}

// Loading is an animated busy indicator with an optional message. Start it
// by feeding its Init command into the program; it stops rendering once
// hidden.
type Loading struct {
	inner   spinner.Model
	style   LoadingStyle
	message string
	variant theme.Variant
	hidden  bool
}

// NewLoading creates a dot spinner.
func NewLoading(message string) *Loading {
	l := &Loading{message: message, variant: theme.VariantPrimary}
	l.rebuild()
	return l
}

// WithStyle changes the glyph set.
func (l *Loading) WithStyle(style LoadingStyle) *Loading {
	l.style = style
	l.rebuild()
	return l
}

// WithVariant recolours the spinner.
func (l *Loading) WithVariant(variant theme.Variant) *Loading {
	l.variant = variant
	l.rebuild()
	return l
}

func (l *Loading) rebuild() {
	th := theme.Current()
	l.inner = spinner.New(
		spinner.WithSpinner(l.style.spinner()),
		spinner.WithStyle(theme.StyleWith(th, lipgloss.NewStyle(),
			theme.Foreground(l.variant.SlotFor()),
		)),
	)
}

// SetMessage replaces the caption next to the spinner.
func (l *Loading) SetMessage(message string) { l.message = message }

// Hide stops the indicator from rendering.
func (l *Loading) Hide() { l.hidden = true }

// Show makes a hidden indicator render again.
func (l *Loading) Show() { l.hidden = false }

// Hidden reports whether the indicator renders.
func (l *Loading) Hidden() bool { return l.hidden }

// Init starts the animation.
func (l *Loading) Init() tea.Cmd { return l.inner.Tick }

// Update advances the animation on tick messages.
func (l *Loading) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return nil
	}
	var cmd tea.Cmd
	l.inner, cmd = l.inner.Update(msg)
	return cmd
}

// View renders the spinner and its message.
func (l *Loading) View() string {
	if l.hidden {
		return ""
	}
	if l.message == "" {
		return l.inner.View()
	}
	return l.inner.View() + " " + l.message
}
