package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		want  string
		known bool
	}{
		{name: "", want: "light", known: true},
		{name: "light", want: "light", known: true},
		{name: "dark", want: "dark", known: true},
		{name: "retro", want: "retro", known: true},
		{name: "frost", want: "frost", known: true},
		{name: "solar", known: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run("name_"+tc.name, func(t *testing.T) {
			t.Parallel()

			th, ok := Builtin(tc.name)
			require.Equal(t, tc.known, ok)
			if tc.known {
				require.Equal(t, tc.want, th.Name)
			}
		})
	}
}

func TestBuiltinThemesAreNormalized(t *testing.T) {
	t.Parallel()

	for _, th := range []Theme{Light(), Dark(), Retro(), Frost()} {
		require.NotNil(t, th.Variants, th.Name)
		require.False(t, spacingTableIsZero(th.Spacing.Padding), th.Name)
		require.NotEmpty(t, th.Palette.Primary.Base.Light, th.Name)
	}
}

func TestDarkDiffersFromLightOnSurfaces(t *testing.T) {
	t.Parallel()

	light := Light()
	dark := Dark()

	require.NotEqual(t, light.Palette.Surface, dark.Palette.Surface)
	require.Equal(t, light.Palette.Primary, dark.Palette.Primary)
}

func TestRetroUsesSquareCorners(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.NormalBorder(), Retro().Borders.Rounded)
	require.Equal(t, lipgloss.RoundedBorder(), Light().Borders.Rounded)
}
