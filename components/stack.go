package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// Direction selects a stack's layout axis.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children along a single axis with an optional gap.
type Stack struct {
	children  []Renderable
	direction Direction
	gap       int
	align     lipgloss.Position
}

// NewStack creates a vertical stack.
func NewStack(children ...Renderable) *Stack {
	return &Stack{children: children, align: lipgloss.Left}
}

// VStack creates a vertical stack.
func VStack(children ...Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// WithDirection sets the layout axis.
func (s *Stack) WithDirection(direction Direction) *Stack {
	s.direction = direction
	return s
}

// WithGap sets the spacing between children in cells.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAlign sets cross-axis alignment.
func (s *Stack) WithAlign(align lipgloss.Position) *Stack {
	s.align = align
	return s
}

// Add appends children.
func (s *Stack) Add(children ...Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// View renders the stack.
func (s *Stack) View() string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := child.View(); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return ""
	}

	if s.gap > 0 {
		var spacer string
		if s.direction == DirectionHorizontal {
			spacer = strings.Repeat(" ", s.gap)
		} else {
			spacer = strings.TrimSuffix(strings.Repeat("\n", s.gap), "\n")
		}
		padded := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				padded = append(padded, spacer)
			}
			padded = append(padded, view)
		}
		views = padded
	}

	if s.direction == DirectionHorizontal {
		return lipgloss.JoinHorizontal(s.align, views...)
	}
	return lipgloss.JoinVertical(s.align, views...)
}

// Spacer renders empty space.
type Spacer struct {
	width  int
	height int
}

// NewSpacer creates a spacer of the given dimensions.
func NewSpacer(width, height int) *Spacer {
	return &Spacer{width: width, height: height}
}

// View renders the spacer.
func (s *Spacer) View() string {
	if s.width <= 0 && s.height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", max(s.width, 1))
	lines := make([]string, max(s.height, 1))
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// Divider renders a horizontal rule, optionally with a centred label.
type Divider struct {
	width int
	label string
}

// NewDivider creates a divider spanning width cells.
func NewDivider(width int) *Divider {
	return &Divider{width: width}
}

// WithLabel centres a label in the rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	t := theme.Current()
	style := theme.StyleWith(t, lipgloss.NewStyle(), theme.MutedForeground(theme.Neutral))

	width := d.width
	if width <= 0 {
		width = 40
	}

	if d.label == "" {
		return style.Render(strings.Repeat("─", width))
	}

	label := " " + d.label + " "
	remaining := width - lipgloss.Width(label)
	if remaining < 2 {
		return style.Render(label)
	}
	left := remaining / 2
	right := remaining - left
	return style.Render(strings.Repeat("─", left)) + label + style.Render(strings.Repeat("─", right))
}
