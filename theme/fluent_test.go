package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestBackgroundSetsPairedForeground(t *testing.T) {
	t.Parallel()

	th := Light()

	style := StyleWith(th, lipgloss.NewStyle(), Background(Primary))

	require.Equal(t, th.Palette.Primary.Base, style.GetBackground())
	require.Equal(t, th.Palette.Primary.OnBase, style.GetForeground())
}

func TestForegroundModifiers(t *testing.T) {
	t.Parallel()

	th := Light()

	fg := StyleWith(th, lipgloss.NewStyle(), Foreground(Success))
	require.Equal(t, th.Palette.Success.Base, fg.GetForeground())

	muted := StyleWith(th, lipgloss.NewStyle(), MutedForeground(Success))
	require.Equal(t, th.Palette.Success.Muted, muted.GetForeground())
}

func TestBorderModifiers(t *testing.T) {
	t.Parallel()

	th := Light()

	style := StyleWith(th, lipgloss.NewStyle(),
		Border(BorderRounded), BorderForeground(Danger))

	require.Equal(t, lipgloss.RoundedBorder(), style.GetBorderStyle())
	require.Equal(t, th.Palette.Danger.Base, style.GetBorderTopForeground())
}

func TestSpacingModifiers(t *testing.T) {
	t.Parallel()

	th := Light()

	style := StyleWith(th, lipgloss.NewStyle(), PaddingX(SpacingMD), MarginY(SpacingSM))

	require.Equal(t, 2, style.GetPaddingLeft())
	require.Equal(t, 2, style.GetPaddingRight())
	require.Equal(t, 0, style.GetPaddingTop())
	require.Equal(t, 1, style.GetMarginTop())
	require.Equal(t, 1, style.GetMarginBottom())
}

func TestAppliersComposeInOrder(t *testing.T) {
	t.Parallel()

	th := Light()

	style := StyleWith(th, lipgloss.NewStyle(),
		Foreground(Primary), Foreground(Danger))

	require.Equal(t, th.Palette.Danger.Base, style.GetForeground())
}

func TestStyleUsesCurrentTheme(t *testing.T) {
	// Mutates the process-wide theme; keep serial.
	prev := Current()
	defer SetCurrent(prev)

	SetCurrent(Dark())
	style := Style(lipgloss.NewStyle(), Background(Surface))

	require.Equal(t, Dark().Palette.Surface.Base, style.GetBackground())
}

func TestBoldAndFaint(t *testing.T) {
	t.Parallel()

	th := Light()

	require.True(t, StyleWith(th, lipgloss.NewStyle(), Bold()).GetBold())
	require.True(t, StyleWith(th, lipgloss.NewStyle(), Faint()).GetFaint())
}
