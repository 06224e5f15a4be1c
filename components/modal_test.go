package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/petal-ui/petal/disclosure"
)

func confirmModal() *Modal {
	m := NewModal("confirm", "Delete item", "This cannot be undone.", "Cancel", "Delete")
	m.SetSize(80, 24)
	return m
}

func TestModalStartsClosedAndInvisible(t *testing.T) {
	t.Parallel()

	m := confirmModal()

	require.False(t, m.IsOpen())
	require.Empty(t, m.View())
}

func TestModalDefaultActionIsLast(t *testing.T) {
	t.Parallel()

	m := confirmModal()
	runAll(m.Open())

	require.Equal(t, "Delete", m.ActiveAction())
}

func TestModalTabCyclesActions(t *testing.T) {
	t.Parallel()

	m := confirmModal()
	runAll(m.Open())

	m.Update(keyMsg("tab"))
	require.Equal(t, "Cancel", m.ActiveAction())

	m.Update(keyMsg("shift+tab"))
	require.Equal(t, "Delete", m.ActiveAction())
}

func TestModalConfirmClosesAndReports(t *testing.T) {
	t.Parallel()

	m := confirmModal()
	runAll(m.Open())
	m.Update(keyMsg("tab"))

	cmd := m.Update(keyMsg("enter"))

	require.False(t, m.IsOpen())
	var action *ModalActionMsg
	for _, msg := range collect(cmd) {
		if a, ok := msg.(ModalActionMsg); ok {
			action = &a
		}
	}
	require.NotNil(t, action)
	require.Equal(t, "confirm", action.ID)
	require.Equal(t, "Cancel", action.Action)
}

func TestModalEscapeCloses(t *testing.T) {
	t.Parallel()

	m := confirmModal()
	runAll(m.Open())

	cmd := m.Update(keyMsg("esc"))

	require.False(t, m.IsOpen())
	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	changed, ok := msgs[0].(disclosure.ChangedMsg)
	require.True(t, ok)
	require.False(t, changed.Open)
}

func TestModalIgnoresKeysWhileClosed(t *testing.T) {
	t.Parallel()

	m := confirmModal()

	require.Nil(t, m.Update(keyMsg("tab")))
	require.Nil(t, m.Update(keyMsg("enter")))
}

func TestModalViewCentersDialog(t *testing.T) {
	t.Parallel()

	m := confirmModal()
	runAll(m.Open())

	view := m.View()

	require.True(t, strings.Contains(view, "Delete item"))
	require.True(t, strings.Contains(view, "This cannot be undone."))
	require.True(t, strings.Contains(view, "░"))
}

// runAll drains a command tree for its side effects.
func runAll(cmd tea.Cmd) { collect(cmd) }
