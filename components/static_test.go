package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/require"
)

func TestTextRendersContent(t *testing.T) {
	t.Parallel()

	require.True(t, strings.Contains(Title("Dashboard").View(), "Dashboard"))
	require.True(t, strings.Contains(Caption("updated just now").View(), "updated just now"))
}

func TestBadgeOutlineAndFilled(t *testing.T) {
	t.Parallel()

	filled := SuccessBadge("active").View()
	outline := SuccessBadge("active").WithOutline(true).View()

	require.True(t, strings.Contains(filled, "active"))
	require.True(t, strings.Contains(outline, "active"))
	require.NotEqual(t, filled, outline)
}

func TestButtonStates(t *testing.T) {
	t.Parallel()

	b := NewButton("Submit")
	require.False(t, b.Focused())

	b.Focus()
	require.True(t, b.Focused())
	require.True(t, strings.Contains(b.View(), "Submit"))

	b.WithDisabled(true)
	require.True(t, b.Disabled())
}

func TestButtonGroupJoinsLabels(t *testing.T) {
	t.Parallel()

	g := NewButtonGroup(NewButton("OK"), NewButton("Cancel"))

	view := g.View()

	require.True(t, strings.Contains(view, "OK"))
	require.True(t, strings.Contains(view, "Cancel"))
}

func TestCardRendersAllFields(t *testing.T) {
	t.Parallel()

	c := NewCard(CardData{
		Title:       "web-1",
		Description: "Primary web server in the east region.",
		Metadata:    map[string]string{"region": "east", "cpu": "4"},
		Actions:     []string{"restart", "drain"},
	})

	view := c.View()

	require.True(t, strings.Contains(view, "web-1"))
	require.True(t, strings.Contains(view, "Primary web server"))
	require.True(t, strings.Contains(view, "region"))
	require.True(t, strings.Contains(view, "restart"))
}

func TestStackJoinsChildren(t *testing.T) {
	t.Parallel()

	v := VStack(Raw("top"), Raw("bottom")).View()
	require.True(t, strings.Contains(v, "top"))
	lines := strings.Split(v, "\n")
	require.GreaterOrEqual(t, len(lines), 2)

	h := HStack(Raw("left"), Raw("right")).WithGap(2).View()
	require.True(t, strings.Contains(h, "left"))
	require.True(t, strings.Contains(h, "right"))
}

func TestDividerCentresLabel(t *testing.T) {
	t.Parallel()

	d := NewDivider(20).WithLabel("or")

	view := d.View()

	require.True(t, strings.Contains(view, "or"))
	require.True(t, strings.Contains(view, "─"))
}

func TestProgressClampsPercent(t *testing.T) {
	t.Parallel()

	p := NewProgress()

	p.SetPercent(1.4)
	require.Equal(t, 1.0, p.Percent())

	p.SetPercent(-0.2)
	require.Equal(t, 0.0, p.Percent())
}

func TestProgressViewIncludesLabel(t *testing.T) {
	t.Parallel()

	p := NewProgress().WithWidth(20).WithLabel("uploading")
	p.SetPercent(0.5)

	require.True(t, strings.Contains(p.View(), "uploading"))
}

func TestLoadingHideAndShow(t *testing.T) {
	t.Parallel()

	l := NewLoading("working")
	require.True(t, strings.Contains(l.View(), "working"))

	l.Hide()
	require.Empty(t, l.View())

	l.Show()
	require.NotEmpty(t, l.View())
}

func TestLoadingAdvancesOnTick(t *testing.T) {
	t.Parallel()

	l := NewLoading("working")

	cmd := l.Init()
	require.NotNil(t, cmd)

	msg := cmd()
	tick, ok := msg.(spinner.TickMsg)
	require.True(t, ok)
	require.NotNil(t, l.Update(tick))
}

func TestWrapTextBreaksLongWords(t *testing.T) {
	t.Parallel()

	wrapped := wrapText("aaaaaaaaaaaaaaaaaaaa", 8)

	for _, line := range strings.Split(wrapped, "\n") {
		require.LessOrEqual(t, len(line), 8)
	}
}
