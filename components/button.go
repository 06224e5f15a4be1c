package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// ButtonSize selects the button's padding scale.
type ButtonSize int

const (
	ButtonSizeSmall ButtonSize = iota
	ButtonSizeMedium
	ButtonSizeLarge
)

// Button is a focusable, clickable control. It renders its interaction state;
// activation is handled by the host (or by widgets like Modal that embed
// button rows).
type Button struct {
	label    string
	variant  theme.Variant
	size     ButtonSize
	disabled bool
	focused  bool
}

// NewButton creates a primary medium button.
func NewButton(label string) *Button {
	return &Button{label: label, variant: theme.VariantPrimary, size: ButtonSizeMedium}
}

// WithVariant sets the colour variant.
func (b *Button) WithVariant(variant theme.Variant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the padding scale.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Focus gives the button the focus ring.
func (b *Button) Focus() { b.focused = true }

// Blur removes the focus ring.
func (b *Button) Blur() { b.focused = false }

// Focused reports whether the button is focused.
func (b *Button) Focused() bool { return b.focused }

// Disabled reports whether the button is disabled.
func (b *Button) Disabled() bool { return b.disabled }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// View renders the button.
func (b *Button) View() string {
	t := theme.Current()

	state := theme.StateNormal
	switch {
	case b.disabled:
		state = theme.StateDisabled
	case b.focused:
		state = theme.StateFocused
	}

	style := t.Apply(lipgloss.NewStyle(), theme.KindButton, b.variant, state)
	switch b.size {
	case ButtonSizeSmall:
		style = style.PaddingLeft(1).PaddingRight(1)
	case ButtonSizeLarge:
		style = style.PaddingLeft(4).PaddingRight(4)
	}

	return style.Render(b.label)
}

// ButtonGroup renders buttons in a row with uniform spacing.
type ButtonGroup struct {
	buttons []*Button
	spacing int
}

// NewButtonGroup creates a group over the given buttons.
func NewButtonGroup(buttons ...*Button) *ButtonGroup {
	return &ButtonGroup{buttons: buttons, spacing: theme.MarginValue(theme.SpacingSM)}
}

// WithSpacing sets the gap between buttons.
func (bg *ButtonGroup) WithSpacing(spacing int) *ButtonGroup {
	bg.spacing = spacing
	return bg
}

// Add appends a button.
func (bg *ButtonGroup) Add(button *Button) *ButtonGroup {
	bg.buttons = append(bg.buttons, button)
	return bg
}

// Buttons returns the group members.
func (bg *ButtonGroup) Buttons() []*Button { return bg.buttons }

// View renders the group.
func (bg *ButtonGroup) View() string {
	if len(bg.buttons) == 0 {
		return ""
	}

	spacer := strings.Repeat(" ", bg.spacing)
	parts := make([]string, 0, len(bg.buttons)*2-1)
	for i, button := range bg.buttons {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, button.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
