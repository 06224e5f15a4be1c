package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// Text renders a styled span of text.
type Text struct {
	content  string
	variant  theme.TypographyVariant
	appliers []theme.StyleApplier
}

// NewText creates a text span with base typography.
func NewText(content string) *Text {
	return &Text{content: content, variant: theme.TypographyBase}
}

// WithVariant sets the typography preset.
func (t *Text) WithVariant(variant theme.TypographyVariant) *Text {
	t.variant = variant
	return t
}

// WithAppliers appends theme-aware style modifiers.
func (t *Text) WithAppliers(appliers ...theme.StyleApplier) *Text {
	t.appliers = append(t.appliers, appliers...)
	return t
}

// Bold emphasises the span.
func (t *Text) Bold() *Text {
	return t.WithAppliers(theme.Bold())
}

// Faint de-emphasises the span.
func (t *Text) Faint() *Text {
	return t.WithAppliers(theme.Faint())
}

// Italic slants the span.
func (t *Text) Italic() *Text {
	return t.WithAppliers(theme.Italic())
}

// SetContent replaces the span's content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// View renders the span.
func (t *Text) View() string {
	appliers := append([]theme.StyleApplier{theme.Typography(t.variant)}, t.appliers...)
	return theme.Style(lipgloss.NewStyle(), appliers...).Render(t.content)
}

// Title is shorthand for title typography.
func Title(content string) *Text {
	return NewText(content).WithVariant(theme.TypographyTitle)
}

// Subtitle is shorthand for subtitle typography.
func Subtitle(content string) *Text {
	return NewText(content).WithVariant(theme.TypographySubtitle)
}

// Caption is shorthand for caption typography.
func Caption(content string) *Text {
	return NewText(content).WithVariant(theme.TypographyCaption)
}
