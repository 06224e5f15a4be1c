package components

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Renderable is anything that renders itself to a string.
type Renderable interface {
	View() string
}

// Component is an interactive widget driven by Bubble Tea messages. Update
// mutates the receiver and returns any follow-up command.
type Component interface {
	Renderable
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
}

// Focusable is implemented by widgets that participate in keyboard focus.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}

// Raw adapts a plain string to Renderable.
type Raw string

func (r Raw) View() string { return string(r) }

// wrapText wraps text to maxWidth columns, breaking words longer than the
// limit across lines.
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > maxWidth {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > maxWidth {
				lines = append(lines, string(wordRunes[:maxWidth]))
				wordRunes = wordRunes[maxWidth:]
			}
			if len(wordRunes) > 0 {
				currentLine = string(wordRunes)
			}
			continue
		}

		testLine := currentLine
		if currentLine != "" {
			testLine += " "
		}
		testLine += word

		if utf8.RuneCountInString(testLine) <= maxWidth {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}
