package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func threeTabs() *Tabs {
	return NewTabs("tabs",
		Tab{Title: "General", Content: Raw("general panel")},
		Tab{Title: "Network", Content: Raw("network panel")},
		Tab{Title: "Advanced", Content: Raw("advanced panel")},
	)
}

func TestTabsStartOnFirstEnabled(t *testing.T) {
	t.Parallel()

	tabs := NewTabs("tabs",
		Tab{Title: "Locked", Content: Raw("locked"), Disabled: true},
		Tab{Title: "Open", Content: Raw("open")},
	)

	require.Equal(t, 1, tabs.Active())
}

func TestTabsNextSkipsDisabled(t *testing.T) {
	t.Parallel()

	tabs := NewTabs("tabs",
		Tab{Title: "A", Content: Raw("a")},
		Tab{Title: "B", Content: Raw("b"), Disabled: true},
		Tab{Title: "C", Content: Raw("c")},
	)
	tabs.Focus()

	cmd := tabs.Update(keyMsg("right"))

	require.Equal(t, 2, tabs.Active())
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	changed, ok := msgs[0].(TabChangedMsg)
	require.True(t, ok)
	require.Equal(t, "tabs", changed.ID)
	require.Equal(t, 2, changed.Index)
	require.Equal(t, "C", changed.Title)
}

func TestTabsWrapAround(t *testing.T) {
	t.Parallel()

	tabs := threeTabs()
	tabs.Focus()

	tabs.Update(keyMsg("left"))

	require.Equal(t, 2, tabs.Active())
}

func TestTabsNumberJump(t *testing.T) {
	t.Parallel()

	tabs := threeTabs()
	tabs.Focus()

	cmd := tabs.Update(keyMsg("3"))

	require.Equal(t, 2, tabs.Active())
	require.NotNil(t, cmd)
}

func TestTabsIgnoreKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	tabs := threeTabs()

	cmd := tabs.Update(keyMsg("right"))

	require.Nil(t, cmd)
	require.Equal(t, 0, tabs.Active())
}

func TestTabsSetActiveRejectsDisabled(t *testing.T) {
	t.Parallel()

	tabs := NewTabs("tabs",
		Tab{Title: "A", Content: Raw("a")},
		Tab{Title: "B", Content: Raw("b"), Disabled: true},
	)

	require.Nil(t, tabs.SetActive(1))
	require.Equal(t, 0, tabs.Active())
	require.Nil(t, tabs.SetActive(0))
	require.Nil(t, tabs.SetActive(9))
}

func TestTabsViewShowsActivePanel(t *testing.T) {
	t.Parallel()

	tabs := threeTabs()
	tabs.SetActive(1)

	view := tabs.View()

	require.True(t, strings.Contains(view, "network panel"))
	require.False(t, strings.Contains(view, "general panel"))
}

func TestTabsBorderedStyleRulesUnderTitles(t *testing.T) {
	t.Parallel()

	tabs := threeTabs().WithStyle(TabsStyleBordered)

	view := tabs.View()

	require.True(t, strings.Contains(view, "─"))
	require.NotEqual(t, threeTabs().View(), view)
}
