package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwapTogglesFaces(t *testing.T) {
	t.Parallel()

	s := NewGlyphSwap("theme-toggle", "on", "off")
	s.Focus()
	require.False(t, s.Active())
	require.True(t, strings.Contains(s.View(), "off"))

	cmd := s.Update(keyMsg("enter"))

	require.True(t, s.Active())
	require.NotNil(t, cmd)
	require.True(t, strings.Contains(s.View(), "on"))
}

func TestSwapSpaceToggles(t *testing.T) {
	t.Parallel()

	s := NewGlyphSwap("mute", "muted", "loud")
	s.Focus()

	s.Update(keyMsg(" "))
	require.True(t, s.Active())

	s.Update(keyMsg(" "))
	require.False(t, s.Active())
}

func TestSwapIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	s := NewGlyphSwap("mute", "muted", "loud")

	require.Nil(t, s.Update(keyMsg("enter")))
	require.False(t, s.Active())
}

func TestSwapWithActiveStartsOn(t *testing.T) {
	t.Parallel()

	s := NewGlyphSwap("mute", "muted", "loud").WithActive(true)

	require.True(t, s.Active())
	require.True(t, strings.Contains(s.View(), "muted"))
}

func TestSwapEffectIndicator(t *testing.T) {
	t.Parallel()

	s := NewGlyphSwap("spin", "a", "b").WithEffect(SwapEffectRotate)

	require.True(t, strings.Contains(s.View(), "↺"))

	s.Toggle()
	require.True(t, strings.Contains(s.View(), "↻"))
}
