package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func photoCarousel() *Carousel {
	c := NewCarousel("photos", Raw("first slide"), Raw("second slide"), Raw("third slide"))
	c.Focus()
	return c
}

func TestCarouselNextAndPrev(t *testing.T) {
	t.Parallel()

	c := photoCarousel()

	cmd := c.Update(keyMsg("right"))
	require.Equal(t, 1, c.Index())

	msgs := collect(cmd)
	require.Len(t, msgs, 1)
	changed := msgs[0].(SlideChangedMsg)
	require.Equal(t, "photos", changed.ID)
	require.Equal(t, 1, changed.Index)

	c.Update(keyMsg("left"))
	require.Equal(t, 0, c.Index())
}

func TestCarouselStopsAtEndsWithoutWrap(t *testing.T) {
	t.Parallel()

	c := photoCarousel()

	require.Nil(t, c.Update(keyMsg("left")))
	require.Equal(t, 0, c.Index())

	c.Goto(2)
	require.Nil(t, c.Update(keyMsg("right")))
	require.Equal(t, 2, c.Index())
}

func TestCarouselWraps(t *testing.T) {
	t.Parallel()

	c := photoCarousel().WithWrap()

	c.Update(keyMsg("left"))
	require.Equal(t, 2, c.Index())

	c.Update(keyMsg("right"))
	require.Equal(t, 0, c.Index())
}

func TestCarouselIgnoresKeysWhenBlurred(t *testing.T) {
	t.Parallel()

	c := photoCarousel()
	c.Blur()

	require.Nil(t, c.Update(keyMsg("right")))
	require.Equal(t, 0, c.Index())
}

func TestCarouselGotoRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	c := photoCarousel()

	require.Nil(t, c.Goto(-1))
	require.Nil(t, c.Goto(3))
	require.Equal(t, 0, c.Index())
}

func TestCarouselViewShowsCurrentSlideAndDots(t *testing.T) {
	t.Parallel()

	c := photoCarousel()
	c.Goto(1)

	view := c.View()

	require.True(t, strings.Contains(view, "second slide"))
	require.False(t, strings.Contains(view, "first slide"))
	require.True(t, strings.Contains(view, "●"))
	require.True(t, strings.Contains(view, "○"))
}
