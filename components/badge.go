package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// Badge is a small status indicator.
type Badge struct {
	text    string
	variant theme.Variant
	outline bool
}

// NewBadge creates a neutral badge.
func NewBadge(text string) *Badge {
	return &Badge{text: text}
}

// WithVariant sets the badge's colour variant.
func (b *Badge) WithVariant(variant theme.Variant) *Badge {
	b.variant = variant
	return b
}

// WithOutline renders the badge as coloured text in a border instead of a
// filled pill.
func (b *Badge) WithOutline(outline bool) *Badge {
	b.outline = outline
	return b
}

// SetText updates the badge text.
func (b *Badge) SetText(text string) *Badge {
	b.text = text
	return b
}

// View renders the badge.
func (b *Badge) View() string {
	t := theme.Current()
	if b.outline {
		style := theme.StyleWith(t, lipgloss.NewStyle(),
			theme.Foreground(b.variant.SlotFor()),
			theme.Border(theme.BorderRounded),
			theme.BorderForeground(b.variant.SlotFor()),
			theme.PaddingX(theme.SpacingXS),
		)
		return style.Render(b.text)
	}
	return t.Apply(lipgloss.NewStyle(), theme.KindBadge, b.variant, theme.StateNormal).Render(b.text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(theme.VariantSuccess)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) *Badge {
	return NewBadge(text).WithVariant(theme.VariantError)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) *Badge {
	return NewBadge(text).WithVariant(theme.VariantInfo)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(theme.VariantWarning)
}
