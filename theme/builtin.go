package theme

import "github.com/charmbracelet/lipgloss"

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultBorders() BorderSet {
	return BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		Caption:  base.Faint(true),
	}
}

// Light is the default theme.
func Light() Theme {
	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#3b82f6", "#60a5fa"),
			OnBase:   ac("#f8fafc", "#0b1120"),
			Muted:    ac("#2563eb", "#1d4ed8"),
			Contrast: ac("#facc15", "#ca8a04"),
		},
		Secondary: ColourSet{
			Base:     ac("#a855f7", "#c084fc"),
			OnBase:   ac("#f8fafc", "#1f2937"),
			Muted:    ac("#7c3aed", "#6b21a8"),
			Contrast: ac("#f472b6", "#f472b6"),
		},
		Accent: ColourSet{
			Base:     ac("#14b8a6", "#2dd4bf"),
			OnBase:   ac("#f0fdfa", "#042f2e"),
			Muted:    ac("#0d9488", "#0f766e"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Neutral: ColourSet{
			Base:     ac("#64748b", "#94a3b8"),
			OnBase:   ac("#f1f5f9", "#0f172a"),
			Muted:    ac("#475569", "#334155"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Surface: ColourSet{
			Base:     ac("#f9fafb", "#111827"),
			OnBase:   ac("#111827", "#f9fafb"),
			Muted:    ac("#e2e8f0", "#1f2937"),
			Contrast: ac("#3b82f6", "#60a5fa"),
		},
		Info: ColourSet{
			Base:     ac("#06b6d4", "#22d3ee"),
			OnBase:   ac("#083344", "#04121a"),
			Muted:    ac("#0891b2", "#0e7490"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Success: ColourSet{
			Base:     ac("#22c55e", "#4ade80"),
			OnBase:   ac("#052e16", "#022c22"),
			Muted:    ac("#16a34a", "#15803d"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#eab308", "#facc15"),
			OnBase:   ac("#422006", "#422006"),
			Muted:    ac("#ca8a04", "#a16207"),
			Contrast: ac("#111827", "#111827"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#f87171"),
			OnBase:   ac("#7f1d1d", "#450a0a"),
			Muted:    ac("#dc2626", "#b91c1c"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	return Theme{
		Name:       "light",
		Palette:    palette,
		Colors:     defaultColorPalette(),
		Borders:    defaultBorders(),
		Spacing:    SpacingConfig{Padding: defaultSpacingTable(), Margin: defaultSpacingTable()},
		Typography: defaultTypography(palette),
		Variants:   DefaultVariants(),
	}.Normalize()
}

// Dark shifts surfaces and neutrals toward dark backgrounds.
func Dark() Theme {
	t := Light()
	t.Name = "dark"

	t.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	t.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}

	t.Typography = defaultTypography(t.Palette)
	return t.Normalize()
}

// Retro is a warm, paper-toned decorative theme.
func Retro() Theme {
	t := Light()
	t.Name = "retro"

	t.Palette.Primary = ColourSet{
		Base:     ac("#ef9995", "#ef9995"),
		OnBase:   ac("#282425", "#282425"),
		Muted:    ac("#dc8a85", "#dc8a85"),
		Contrast: ac("#2e282a", "#2e282a"),
	}
	t.Palette.Secondary = ColourSet{
		Base:     ac("#a4cbb4", "#a4cbb4"),
		OnBase:   ac("#282425", "#282425"),
		Muted:    ac("#85b79a", "#85b79a"),
		Contrast: ac("#2e282a", "#2e282a"),
	}
	t.Palette.Accent = ColourSet{
		Base:     ac("#ebdc99", "#ebdc99"),
		OnBase:   ac("#282425", "#282425"),
		Muted:    ac("#d9c76f", "#d9c76f"),
		Contrast: ac("#2e282a", "#2e282a"),
	}
	t.Palette.Surface = ColourSet{
		Base:     ac("#ece3ca", "#e4d8b4"),
		OnBase:   ac("#282425", "#282425"),
		Muted:    ac("#e4d8b4", "#d2c59d"),
		Contrast: ac("#ef9995", "#ef9995"),
	}

	t.Borders.Rounded = lipgloss.NormalBorder()
	t.Typography = defaultTypography(t.Palette)
	return t.Normalize()
}

// Frost is a cool, Nord-like decorative theme.
func Frost() Theme {
	t := Dark()
	t.Name = "frost"

	t.Palette.Primary = ColourSet{
		Base:     ac("#5e81ac", "#88c0d0"),
		OnBase:   ac("#eceff4", "#2e3440"),
		Muted:    ac("#4c566a", "#81a1c1"),
		Contrast: ac("#ebcb8b", "#ebcb8b"),
	}
	t.Palette.Secondary = ColourSet{
		Base:     ac("#81a1c1", "#81a1c1"),
		OnBase:   ac("#2e3440", "#2e3440"),
		Muted:    ac("#5e81ac", "#5e81ac"),
		Contrast: ac("#d8dee9", "#d8dee9"),
	}
	t.Palette.Surface = ColourSet{
		Base:     ac("#eceff4", "#2e3440"),
		OnBase:   ac("#2e3440", "#eceff4"),
		Muted:    ac("#e5e9f0", "#3b4252"),
		Contrast: ac("#88c0d0", "#88c0d0"),
	}

	t.Typography = defaultTypography(t.Palette)
	return t.Normalize()
}

// Builtin returns a built-in theme by name. The boolean reports whether the
// name is known.
func Builtin(name string) (Theme, bool) {
	switch name {
	case "", "light":
		return Light(), true
	case "dark":
		return Dark(), true
	case "retro":
		return Retro(), true
	case "frost":
		return Frost(), true
	default:
		return Theme{}, false
	}
}
