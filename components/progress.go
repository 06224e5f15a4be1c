package components

import (
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// Progress is a horizontal bar filled to a fraction, coloured with a
// gradient drawn from the current theme.
type Progress struct {
	inner   progress.Model
	variant theme.Variant
	percent float64
	label   string
}

// NewProgress creates an empty progress bar.
func NewProgress() *Progress {
	p := &Progress{variant: theme.VariantPrimary}
	p.rebuild(40)
	return p
}

// WithVariant recolours the gradient from another palette slot.
func (p *Progress) WithVariant(variant theme.Variant) *Progress {
	p.variant = variant
	p.rebuild(p.inner.Width)
	return p
}

// WithWidth sets the bar width.
func (p *Progress) WithWidth(width int) *Progress {
	if width > 0 {
		p.rebuild(width)
	}
	return p
}

// WithLabel adds a caption under the bar.
func (p *Progress) WithLabel(label string) *Progress {
	p.label = label
	return p
}

func (p *Progress) rebuild(width int) {
	th := theme.Current()
	set := p.variant.SlotFor()(th.Palette)
	p.inner = progress.New(
		progress.WithScaledGradient(set.Muted.Light, set.Base.Light),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}

// Percent returns the current fill fraction.
func (p *Progress) Percent() float64 { return p.percent }

// SetPercent clamps and stores the fill fraction.
func (p *Progress) SetPercent(percent float64) {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	p.percent = percent
}

// Init implements Component.
func (p *Progress) Init() tea.Cmd { return nil }

// Update implements Component. The bar is rendered statelessly, so there is
// nothing to handle.
func (p *Progress) Update(tea.Msg) tea.Cmd { return nil }

// View renders the bar at its stored fraction.
func (p *Progress) View() string {
	bar := p.inner.ViewAs(p.percent)
	if p.label == "" {
		return bar
	}
	th := theme.Current()
	caption := theme.StyleWith(th, lipgloss.NewStyle(),
		theme.Typography(theme.TypographyCaption),
	).Render(p.label)
	return lipgloss.JoinVertical(lipgloss.Left, bar, caption)
}
