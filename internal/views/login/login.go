// Package login provides the sign-in form shown until the session is
// authenticated.
package login

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/theme"
)

// SubmitMsg is emitted when the form is submitted. The app decides whether
// the pair is valid.
type SubmitMsg struct {
	Username string
	Password string
}

// KeyMap holds the form key bindings.
type KeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
}

// DefaultKeyMap returns the default form key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "login"),
		),
	}
}

const (
	fieldUsername = iota
	fieldPassword
)

// Model is the login form.
type Model struct {
	keys     KeyMap
	inputs   [2]textinput.Model
	focus    int
	attempts int
}

// New creates an empty form with the username field focused.
func New() Model {
	user := textinput.New()
	user.Placeholder = "Username"
	user.Prompt = "Username: "
	user.CharLimit = 64
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.Prompt = "Password: "
	pass.CharLimit = 64
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return Model{
		keys:   DefaultKeyMap(),
		inputs: [2]textinput.Model{user, pass},
	}
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Username returns the current username field value.
func (m Model) Username() string { return m.inputs[fieldUsername].Value() }

// Password returns the current password field value.
func (m Model) Password() string { return m.inputs[fieldPassword].Value() }

// Focused returns the index of the focused field (0 username, 1 password).
func (m Model) Focused() int { return m.focus }

// Rejected clears the password after a failed attempt and refocuses it.
func (m *Model) Rejected() {
	m.attempts++
	m.inputs[fieldPassword].Reset()
	m.setFocus(fieldPassword)
}

// Update handles messages for the login form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Submit):
			username, password := m.Username(), m.Password()
			return m, func() tea.Msg {
				return SubmitMsg{Username: username, Password: password}
			}
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

// View renders the form.
func (m Model) View() string {
	title := theme.StyleHeader.Render("Login")

	rows := []string{title, ""}
	for i, in := range m.inputs {
		style := theme.StyleDimmed
		if i == m.focus {
			style = theme.StyleSelected
		}
		rows = append(rows, style.Render(in.View()))
	}
	rows = append(rows, "", theme.StyleButton.Render("Login"))
	if m.attempts > 0 {
		rows = append(rows, theme.StyleDimmed.Render("Try again."))
	}
	rows = append(rows, "", theme.StyleDimmed.Render("tab: next field  enter: login  ctrl+c: quit"))

	return lipgloss.NewStyle().
		Padding(1, 3).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBorder).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
