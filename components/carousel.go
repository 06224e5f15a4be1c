package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// SlideChangedMsg reports that the carousel moved to another slide.
type SlideChangedMsg struct {
	ID    string
	Index int
}

// CarouselKeyMap defines the carousel bindings.
type CarouselKeyMap struct {
	Next key.Binding
	Prev key.Binding
}

// DefaultCarouselKeyMap returns the standard carousel bindings.
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous slide"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k CarouselKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next}
}

// FullHelp implements help.KeyMap.
func (k CarouselKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}}
}

// Carousel shows one slide at a time with a dot indicator underneath.
// Navigation stops at the ends unless wrapping is enabled.
type Carousel struct {
	id      string
	slides  []Renderable
	index   int
	wrap    bool
	keys    CarouselKeyMap
	dots    paginator.Model
	focused bool
	width   int
}

// NewCarousel creates a carousel showing its first slide.
func NewCarousel(id string, slides ...Renderable) *Carousel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.ActiveDot = "●"
	p.InactiveDot = "○"
	p.SetTotalPages(max(len(slides), 1))
	p.PerPage = 1
	return &Carousel{
		id:     id,
		slides: slides,
		keys:   DefaultCarouselKeyMap(),
		dots:   p,
		width:  40,
	}
}

// WithWrap makes navigation wrap around at the ends.
func (c *Carousel) WithWrap() *Carousel {
	c.wrap = true
	return c
}

// WithWidth sets the frame width.
func (c *Carousel) WithWidth(width int) *Carousel {
	if width > 0 {
		c.width = width
	}
	return c
}

// WithKeyMap overrides the carousel bindings.
func (c *Carousel) WithKeyMap(keys CarouselKeyMap) *Carousel {
	c.keys = keys
	return c
}

// Index returns the current slide index.
func (c *Carousel) Index() int { return c.index }

// Len returns the slide count.
func (c *Carousel) Len() int { return len(c.slides) }

// Focused reports whether the carousel handles keys.
func (c *Carousel) Focused() bool { return c.focused }

// Focus makes the carousel handle keys.
func (c *Carousel) Focus() { c.focused = true }

// Blur stops the carousel from handling keys.
func (c *Carousel) Blur() { c.focused = false }

// Goto moves to the given slide. Out-of-range indices are ignored.
func (c *Carousel) Goto(index int) tea.Cmd {
	if index < 0 || index >= len(c.slides) || index == c.index {
		return nil
	}
	c.index = index
	c.dots.Page = index
	return c.changed()
}

// Next advances one slide.
func (c *Carousel) Next() tea.Cmd { return c.move(1) }

// Prev goes back one slide.
func (c *Carousel) Prev() tea.Cmd { return c.move(-1) }

func (c *Carousel) move(step int) tea.Cmd {
	if len(c.slides) < 2 {
		return nil
	}
	next := c.index + step
	if c.wrap {
		next = (next + len(c.slides)) % len(c.slides)
	} else if next < 0 || next >= len(c.slides) {
		return nil
	}
	return c.Goto(next)
}

func (c *Carousel) changed() tea.Cmd {
	id, index := c.id, c.index
	return func() tea.Msg { return SlideChangedMsg{ID: id, Index: index} }
}

// Init implements Component.
func (c *Carousel) Init() tea.Cmd { return nil }

// Update handles slide navigation while focused.
func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil
	}
	switch {
	case key.Matches(keyMsg, c.keys.Next):
		return c.Next()
	case key.Matches(keyMsg, c.keys.Prev):
		return c.Prev()
	}
	return nil
}

// View renders the current slide in a frame with the dot indicator below.
func (c *Carousel) View() string {
	th := theme.Current()

	var slide string
	if len(c.slides) > 0 {
		slide = c.slides[c.index].View()
	}

	state := theme.StateNormal
	if c.focused {
		state = theme.StateFocused
	}
	frame := th.Apply(lipgloss.NewStyle(), theme.KindCarousel, theme.VariantNeutral, state).
		Width(c.width).
		Align(lipgloss.Center).
		Render(slide)

	dots := lipgloss.NewStyle().
		Width(lipgloss.Width(frame)).
		Align(lipgloss.Center).
		Render(c.dots.View())

	return lipgloss.JoinVertical(lipgloss.Left, frame, dots)
}
