package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// CardData holds the content of a card.
type CardData struct {
	// Title is the card heading.
	Title string
	// Description is the body text, word-wrapped to the card width.
	Description string
	// Icon is an optional glyph rendered before the title.
	Icon string
	// Metadata holds key-value detail lines, rendered sorted by key.
	Metadata map[string]string
	// Actions lists actionable items as bullets.
	Actions []string
}

// Card is a bordered container for grouped content.
type Card struct {
	data    CardData
	variant theme.Variant
	width   int
}

// NewCard creates a card with the given content at the default width.
func NewCard(data CardData) *Card {
	return &Card{data: data, width: 60}
}

// WithVariant tints the card border and icon.
func (c *Card) WithVariant(variant theme.Variant) *Card {
	c.variant = variant
	return c
}

// WithWidth sets the card width in cells.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// View renders the card.
func (c *Card) View() string {
	t := theme.Current()

	frame := t.Apply(lipgloss.NewStyle(), theme.KindCard, theme.VariantNeutral, theme.StateNormal)
	if c.variant != theme.VariantNeutral {
		frame = theme.StyleWith(t, frame, theme.BorderForeground(c.variant.SlotFor()))
	}
	if c.width > 0 {
		frame = frame.Width(c.width)
	}

	var content []string

	if c.data.Title != "" {
		content = append(content, c.renderHeader(t))
	}

	if c.data.Description != "" {
		body := theme.StyleWith(t, lipgloss.NewStyle(), theme.Typography(theme.TypographyBody))
		content = append(content, body.Render(wrapText(c.data.Description, c.innerWidth(frame))))
	}

	if len(c.data.Metadata) > 0 {
		keys := make([]string, 0, len(c.data.Metadata))
		for k := range c.data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		content = append(content, "")
		caption := theme.StyleWith(t, lipgloss.NewStyle(), theme.Typography(theme.TypographyCaption))
		for _, key := range keys {
			content = append(content, caption.Render(fmt.Sprintf("%s: %s", key, c.data.Metadata[key])))
		}
	}

	if len(c.data.Actions) > 0 {
		content = append(content, "")
		for _, action := range c.data.Actions {
			content = append(content, "• "+action)
		}
	}

	return frame.Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader(t theme.Theme) string {
	var header strings.Builder

	if c.data.Icon != "" {
		icon := theme.StyleWith(t, lipgloss.NewStyle(), theme.Foreground(c.variant.SlotFor()))
		header.WriteString(icon.Render(c.data.Icon + " "))
	}

	title := theme.StyleWith(t, lipgloss.NewStyle(), theme.Typography(theme.TypographyTitle))
	header.WriteString(title.Render(c.data.Title))

	return header.String()
}

func (c *Card) innerWidth(frame lipgloss.Style) int {
	if c.width <= 0 {
		return 0
	}
	inner := c.width - frame.GetHorizontalFrameSize()
	if inner < 0 {
		return 0
	}
	return inner
}

// StatusCard tints a card and picks a default icon for a status variant.
func StatusCard(data CardData, variant theme.Variant) *Card {
	if data.Icon == "" {
		switch variant {
		case theme.VariantSuccess:
			data.Icon = "✓"
		case theme.VariantError:
			data.Icon = "✗"
		case theme.VariantWarning:
			data.Icon = "⚠"
		case theme.VariantInfo:
			data.Icon = "ℹ"
		}
	}
	return NewCard(data).WithVariant(variant)
}
