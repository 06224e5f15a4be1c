package disclosure

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

func TestControllerToggleEmitsChange(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	require.False(t, c.IsOpen())

	msg := runCmd(t, c.Toggle())
	changed, ok := msg.(ChangedMsg)
	require.True(t, ok)
	assert.Equal(t, "menu", changed.ID)
	assert.True(t, changed.Open)
	assert.False(t, changed.Dismissed)
	assert.True(t, c.IsOpen())

	msg = runCmd(t, c.Toggle())
	changed = msg.(ChangedMsg)
	assert.False(t, changed.Open)
	assert.False(t, c.IsOpen())
}

func TestControllerTransitionsAreEdgeTriggered(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	require.NotNil(t, c.Open())
	assert.Nil(t, c.Open(), "re-opening an open controller must emit nothing")

	require.NotNil(t, c.Close())
	assert.Nil(t, c.Close(), "re-closing a closed controller must emit nothing")
}

func TestControllerDisabledIgnoresEverything(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	c.SetDisabled(true)

	assert.Nil(t, c.Open())
	assert.Nil(t, c.Toggle())

	handled, cmd := c.HandleKey(keyMsg("enter"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestControllerDisablingOpenPanelClosesIt(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	_ = c.Open()
	c.SetDisabled(true)
	assert.False(t, c.IsOpen())
}

func TestControllerKeyHandling(t *testing.T) {
	t.Parallel()

	c := NewController("menu")

	handled, cmd := c.HandleKey(keyMsg("enter"))
	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.True(t, c.IsOpen())

	handled, cmd = c.HandleKey(keyMsg("esc"))
	assert.True(t, handled)
	require.NotNil(t, cmd)
	assert.False(t, c.IsOpen())

	// esc on a closed panel falls through to the host.
	handled, cmd = c.HandleKey(keyMsg("esc"))
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

func TestControllerSpaceToggles(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	handled, _ := c.HandleKey(keyMsg(" "))
	assert.True(t, handled)
	assert.True(t, c.IsOpen())
}

func TestControllerDismissMarksMessage(t *testing.T) {
	t.Parallel()

	c := NewController("menu")
	_ = c.Open()

	msg := runCmd(t, c.Dismiss())
	changed := msg.(ChangedMsg)
	assert.False(t, changed.Open)
	assert.True(t, changed.Dismissed)

	assert.Nil(t, c.Dismiss(), "dismissing a closed panel emits nothing")
}
