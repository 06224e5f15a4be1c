package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestShadeColorLookup(t *testing.T) {
	t.Parallel()

	c, ok := ShadeColor(FamilyBlue, Shade500)
	require.True(t, ok)
	require.Equal(t, lipgloss.Color("#3b82f6"), c)

	_, ok = ShadeColor(FamilyBlue, Shade(99))
	require.False(t, ok)
}

func TestShadesColorOutOfRange(t *testing.T) {
	t.Parallel()

	shades := defaultColorPalette().Shades(FamilyRed)

	require.NotEmpty(t, shades.Color(Shade50))
	require.NotEmpty(t, shades.Color(Shade900))
	require.Empty(t, shades.Color(Shade(-1)))
	require.Empty(t, shades.Color(Shade(42)))
}

func TestEveryFamilyHasTenShades(t *testing.T) {
	t.Parallel()

	families := []Family{
		FamilySlate, FamilyBlue, FamilyGreen, FamilyRed,
		FamilyYellow, FamilyPurple, FamilyCyan,
	}

	for _, family := range families {
		shades := defaultColorPalette().Shades(family)
		for shade := Shade50; shade <= Shade900; shade++ {
			require.NotEmpty(t, shades.Color(shade))
		}
	}
}
