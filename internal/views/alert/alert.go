// Package alert provides the blocking notification box. While it is open
// the app routes no keys anywhere else.
package alert

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/theme"
)

// ShowMsg asks the app to open an alert with the given text.
type ShowMsg struct{ Text string }

// Model holds the alert currently shown, if any.
type Model struct {
	text string
	open bool
}

// Show opens the alert. A second Show replaces the text.
func (m *Model) Show(text string) {
	m.text = text
	m.open = true
}

// Dismiss closes the alert.
func (m *Model) Dismiss() {
	m.text = ""
	m.open = false
}

func (m Model) Open() bool   { return m.open }
func (m Model) Text() string { return m.text }

// View renders the alert box, or "" when closed.
func (m Model) View(width int) string {
	if !m.open {
		return ""
	}
	boxWidth := min(max(len(m.text)+8, 36), max(width-4, 36))

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.ColorWarning).Bold(true).Render("!"),
		"",
		theme.StyleHeader.Render(m.text),
		"",
		theme.StyleButton.Render("OK"),
		theme.StyleDimmed.Render("enter/esc to dismiss"),
	)

	return lipgloss.NewStyle().
		Width(boxWidth).
		Align(lipgloss.Center).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorWarning).
		Render(body)
}
