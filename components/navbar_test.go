package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func siteNavbar() *Navbar {
	n := NewNavbar("nav", "petal").
		WithStart(NavItem{Label: "Home"}, NavItem{Label: "Docs"}).
		WithCenter(NavItem{Label: "Search"}).
		WithEnd(NavItem{Label: "Account", Disabled: true}, NavItem{Label: "About"})
	n.Focus()
	return n
}

func TestNavbarHighlightMoves(t *testing.T) {
	t.Parallel()

	n := siteNavbar()
	require.Equal(t, "Home", n.ActiveLabel())

	n.Update(keyMsg("right"))
	require.Equal(t, "Docs", n.ActiveLabel())

	n.Update(keyMsg("left"))
	require.Equal(t, "Home", n.ActiveLabel())
}

func TestNavbarSkipsDisabled(t *testing.T) {
	t.Parallel()

	n := siteNavbar()
	n.SetActive(2)

	n.Update(keyMsg("right"))

	require.Equal(t, "About", n.ActiveLabel())
}

func TestNavbarWrapsAround(t *testing.T) {
	t.Parallel()

	n := siteNavbar()

	n.Update(keyMsg("left"))

	require.Equal(t, "About", n.ActiveLabel())
}

func TestNavbarEnterReportsNavigation(t *testing.T) {
	t.Parallel()

	n := siteNavbar()
	n.Update(keyMsg("right"))

	cmd := n.Update(keyMsg("enter"))

	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	nav := msgs[0].(NavigateMsg)
	require.Equal(t, "nav", nav.ID)
	require.Equal(t, 1, nav.Index)
	require.Equal(t, "Docs", nav.Label)
}

func TestNavbarSetActiveRejectsDisabled(t *testing.T) {
	t.Parallel()

	n := siteNavbar()

	n.SetActive(3)
	require.Equal(t, "Home", n.ActiveLabel())

	n.SetActive(-1)
	n.SetActive(10)
	require.Equal(t, "Home", n.ActiveLabel())
}

func TestNavbarIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	n := siteNavbar()
	n.Blur()

	require.Nil(t, n.Update(keyMsg("right")))
	require.Equal(t, "Home", n.ActiveLabel())
}

func TestNavbarViewShowsBrandAndItems(t *testing.T) {
	t.Parallel()

	n := siteNavbar()

	view := n.View()

	require.True(t, strings.Contains(view, "petal"))
	require.True(t, strings.Contains(view, "Home"))
	require.True(t, strings.Contains(view, "About"))
}
