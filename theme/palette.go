package theme

import "github.com/charmbracelet/lipgloss"

const shadeCount = 10

// Shades is a Tailwind-style colour scale with ten steps from lightest to
// darkest, numbered 50 through 900.
type Shades struct {
	colors [shadeCount]lipgloss.Color
}

// NewShades builds a scale from up to ten colours ordered light to dark.
func NewShades(colors ...lipgloss.Color) Shades {
	var s Shades
	for i := 0; i < shadeCount && i < len(colors); i++ {
		s.colors[i] = colors[i]
	}
	return s
}

// Color returns the colour at the given shade, or "" when out of range.
func (s Shades) Color(shade Shade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= shadeCount {
		return ""
	}
	return s.colors[index]
}

// Shade indexes into a Shades scale.
type Shade int

const (
	Shade50 Shade = iota
	Shade100
	Shade200
	Shade300
	Shade400
	Shade500
	Shade600
	Shade700
	Shade800
	Shade900
)

// Family names a raw colour family.
type Family int

const (
	FamilySlate Family = iota
	FamilyBlue
	FamilyGreen
	FamilyRed
	FamilyYellow
	FamilyPurple
	FamilyCyan
)

// ColorPalette holds the raw shade families available as an escape hatch
// alongside the semantic palette.
type ColorPalette struct {
	Slate  Shades
	Blue   Shades
	Green  Shades
	Red    Shades
	Yellow Shades
	Purple Shades
	Cyan   Shades
}

// Shades returns the scale for a family, defaulting to Slate.
func (cp ColorPalette) Shades(family Family) Shades {
	switch family {
	case FamilyBlue:
		return cp.Blue
	case FamilyGreen:
		return cp.Green
	case FamilyRed:
		return cp.Red
	case FamilyYellow:
		return cp.Yellow
	case FamilyPurple:
		return cp.Purple
	case FamilyCyan:
		return cp.Cyan
	default:
		return cp.Slate
	}
}

// ShadeColor looks up a raw colour in the current theme. The boolean reports
// whether the family defines that shade.
func ShadeColor(family Family, shade Shade) (lipgloss.Color, bool) {
	color := Current().Colors.Shades(family).Color(shade)
	if color == "" {
		return "", false
	}
	return color, true
}

func defaultColorPalette() ColorPalette {
	return ColorPalette{
		Slate: NewShades(
			lipgloss.Color("#f8fafc"), lipgloss.Color("#f1f5f9"),
			lipgloss.Color("#e2e8f0"), lipgloss.Color("#cbd5e1"),
			lipgloss.Color("#94a3b8"), lipgloss.Color("#64748b"),
			lipgloss.Color("#475569"), lipgloss.Color("#334155"),
			lipgloss.Color("#1e293b"), lipgloss.Color("#0f172a"),
		),
		Blue: NewShades(
			lipgloss.Color("#eff6ff"), lipgloss.Color("#dbeafe"),
			lipgloss.Color("#bfdbfe"), lipgloss.Color("#93c5fd"),
			lipgloss.Color("#60a5fa"), lipgloss.Color("#3b82f6"),
			lipgloss.Color("#2563eb"), lipgloss.Color("#1d4ed8"),
			lipgloss.Color("#1e40af"), lipgloss.Color("#1e3a8a"),
		),
		Green: NewShades(
			lipgloss.Color("#f0fdf4"), lipgloss.Color("#dcfce7"),
			lipgloss.Color("#bbf7d0"), lipgloss.Color("#86efac"),
			lipgloss.Color("#4ade80"), lipgloss.Color("#22c55e"),
			lipgloss.Color("#16a34a"), lipgloss.Color("#15803d"),
			lipgloss.Color("#166534"), lipgloss.Color("#14532d"),
		),
		Red: NewShades(
			lipgloss.Color("#fef2f2"), lipgloss.Color("#fee2e2"),
			lipgloss.Color("#fecaca"), lipgloss.Color("#fca5a5"),
			lipgloss.Color("#f87171"), lipgloss.Color("#ef4444"),
			lipgloss.Color("#dc2626"), lipgloss.Color("#b91c1c"),
			lipgloss.Color("#991b1b"), lipgloss.Color("#7f1d1d"),
		),
		Yellow: NewShades(
			lipgloss.Color("#fefce8"), lipgloss.Color("#fef3c7"),
			lipgloss.Color("#fde68a"), lipgloss.Color("#fcd34d"),
			lipgloss.Color("#fbbf24"), lipgloss.Color("#eab308"),
			lipgloss.Color("#ca8a04"), lipgloss.Color("#a16207"),
			lipgloss.Color("#854d0e"), lipgloss.Color("#713f12"),
		),
		Purple: NewShades(
			lipgloss.Color("#faf5ff"), lipgloss.Color("#f3e8ff"),
			lipgloss.Color("#e9d5ff"), lipgloss.Color("#d8b4fe"),
			lipgloss.Color("#c084fc"), lipgloss.Color("#a855f7"),
			lipgloss.Color("#9333ea"), lipgloss.Color("#7c3aed"),
			lipgloss.Color("#6b21a8"), lipgloss.Color("#581c87"),
		),
		Cyan: NewShades(
			lipgloss.Color("#ecfeff"), lipgloss.Color("#cffafe"),
			lipgloss.Color("#a5f3fc"), lipgloss.Color("#67e8f9"),
			lipgloss.Color("#22d3ee"), lipgloss.Color("#06b6d4"),
			lipgloss.Color("#0891b2"), lipgloss.Color("#0e7490"),
			lipgloss.Color("#155e75"), lipgloss.Color("#164e63"),
		),
	}
}
