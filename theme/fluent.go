package theme

import "github.com/charmbracelet/lipgloss"

// StyleApplier applies a theme-aware transformation to a lipgloss style.
type StyleApplier interface {
	Apply(base lipgloss.Style, t Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for plain functions.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, t Theme) lipgloss.Style {
	return fn(base, t)
}

// Style composes appliers over a base style using the current theme.
func Style(base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	return StyleWith(Current(), base, appliers...)
}

// StyleWith composes appliers over a base style using an explicit theme.
func StyleWith(t Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, t)
	}
	return base
}

// Background fills with a slot's base colour and sets a readable foreground.
func Background(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours text with a slot's base colour.
func Foreground(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// MutedForeground colours text with a slot's muted companion colour.
func MutedForeground(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Muted)
	}
}

// Border applies a border variant from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(t.Borders.ForVariant(variant))
	}
}

// BorderForeground colours an existing border with a slot's base colour.
func BorderForeground(slot Slot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderForeground(slot(t.Palette).Base)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Padding(spacingLookup(t.Spacing.Padding, size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Padding, size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Margin(spacingLookup(t.Spacing.Margin, size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Margin, size)
		return base.MarginLeft(v).MarginRight(v)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		v := spacingLookup(t.Spacing.Margin, size)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Typography inherits a typography preset from the theme.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Inherit(t.Typography.ForVariant(variant))
	}
}

// Bold sets bold regardless of theme.
func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Faint sets faint regardless of theme.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// Italic sets italic regardless of theme.
func Italic() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Italic(true)
	}
}
