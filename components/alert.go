package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/petal-ui/petal/theme"
)

// AlertDismissedMsg is emitted when a dismissible alert is dismissed.
type AlertDismissedMsg struct {
	ID string
}

var alertDismissKeys = key.NewBinding(
	key.WithKeys("x", "esc"),
	key.WithHelp("x", "dismiss"),
)

// Alert is a message banner. Dismissible alerts consume x/esc while focused
// and hide themselves.
type Alert struct {
	id          string
	message     string
	title       string
	variant     theme.Variant
	dismissible bool
	dismissed   bool
	focused     bool
}

// NewAlert creates an info alert with the given message.
func NewAlert(id, message string) *Alert {
	return &Alert{id: id, message: message, variant: theme.VariantInfo}
}

// WithVariant sets the colour variant.
func (a *Alert) WithVariant(variant theme.Variant) *Alert {
	a.variant = variant
	return a
}

// WithTitle sets the alert heading.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithDismissible makes the alert dismissible.
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.dismissible = dismissible
	return a
}

// Focus routes dismissal keys to the alert.
func (a *Alert) Focus() { a.focused = true }

// Blur stops routing keys to the alert.
func (a *Alert) Blur() { a.focused = false }

// Focused reports whether the alert is focused.
func (a *Alert) Focused() bool { return a.focused }

// Dismissed reports whether the alert has been dismissed.
func (a *Alert) Dismissed() bool { return a.dismissed }

// Reset shows a dismissed alert again.
func (a *Alert) Reset() { a.dismissed = false }

// Init implements Component.
func (a *Alert) Init() tea.Cmd { return nil }

// Update hides the alert on x/esc while focused and dismissible.
func (a *Alert) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused || !a.dismissible || a.dismissed {
		return nil
	}
	if !key.Matches(keyMsg, alertDismissKeys) {
		return nil
	}

	a.dismissed = true
	id := a.id
	return func() tea.Msg { return AlertDismissedMsg{ID: id} }
}

// View renders the alert, or nothing once dismissed.
func (a *Alert) View() string {
	if a.dismissed {
		return ""
	}

	t := theme.Current()
	style := t.Apply(lipgloss.NewStyle(), theme.KindAlert, a.variant, theme.StateNormal)

	var content []string
	if a.title != "" {
		content = append(content, theme.Style(lipgloss.NewStyle(), theme.Typography(theme.TypographyEmphasis)).Render(a.title))
	}
	if a.message != "" {
		content = append(content, a.message)
	}
	if a.dismissible {
		content = append(content, theme.Style(lipgloss.NewStyle(), theme.Faint()).Render("[x] dismiss"))
	}

	return style.Render(strings.Join(content, "\n"))
}

// SuccessAlert creates a dismissible success alert titled "Success".
func SuccessAlert(id, message string) *Alert {
	return NewAlert(id, message).WithVariant(theme.VariantSuccess).WithTitle("Success").WithDismissible(true)
}

// ErrorAlert creates a dismissible error alert titled "Error".
func ErrorAlert(id, message string) *Alert {
	return NewAlert(id, message).WithVariant(theme.VariantError).WithTitle("Error").WithDismissible(true)
}

// WarningAlert creates a dismissible warning alert titled "Warning".
func WarningAlert(id, message string) *Alert {
	return NewAlert(id, message).WithVariant(theme.VariantWarning).WithTitle("Warning").WithDismissible(true)
}
