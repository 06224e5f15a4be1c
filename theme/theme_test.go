package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	th := Theme{Name: "bare", Palette: Light().Palette}.Normalize()

	require.Equal(t, defaultSpacingTable(), th.Spacing.Padding)
	require.Equal(t, defaultSpacingTable(), th.Spacing.Margin)
	require.NotNil(t, th.Variants)
}

func TestNormalizeKeepsExplicitSpacing(t *testing.T) {
	t.Parallel()

	custom := spacingTable{0, 2, 2, 4, 6, 8, 12}
	th := Theme{Spacing: SpacingConfig{Padding: custom}}.Normalize()

	require.Equal(t, custom, th.Spacing.Padding)
	require.Equal(t, defaultSpacingTable(), th.Spacing.Margin)
}

func TestBorderSetForVariant(t *testing.T) {
	t.Parallel()

	borders := defaultBorders()

	require.Equal(t, lipgloss.Border{}, borders.ForVariant(BorderNone))
	require.Equal(t, lipgloss.RoundedBorder(), borders.ForVariant(BorderRounded))
	require.Equal(t, lipgloss.DoubleBorder(), borders.ForVariant(BorderDouble))
}

func TestSpacingLookupClamps(t *testing.T) {
	t.Parallel()

	table := defaultSpacingTable()

	require.Equal(t, 0, spacingLookup(table, SpacingNone))
	require.Equal(t, 6, spacingLookup(table, Spacing2XL))
	require.Equal(t, 0, spacingLookup(table, SpacingSize(-1)))
	require.Equal(t, 0, spacingLookup(table, SpacingSize(99)))
}

func TestManagerSwapsThemes(t *testing.T) {
	t.Parallel()

	m := NewManager(Light())
	require.Equal(t, "light", m.Theme().Name)

	m.Set(Dark())
	require.Equal(t, "dark", m.Theme().Name)
}

func TestManagerConcurrentReads(t *testing.T) {
	t.Parallel()

	m := NewManager(Light())
	done := make(chan struct{})

	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				_ = m.Theme()
			}
		}()
	}
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				m.Set(Dark())
				m.Set(Light())
			}
		}()
	}

	for i := 0; i < 12; i++ {
		<-done
	}
}

func TestSlotSelectsPaletteSet(t *testing.T) {
	t.Parallel()

	p := Light().Palette

	require.Equal(t, p.Primary, Primary(p))
	require.Equal(t, p.Danger, Danger(p))
	require.NotEqual(t, Primary(p), Secondary(p))
}
