// Package detail renders the event detail overlay.
package detail

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/catalog"
	"github.com/event-booker/booker/internal/theme"
)

// DefaultStyle is the glamour style used for descriptions.
const DefaultStyle = "dark"

// Model renders one event. It keeps only the id; the event itself is looked
// up in the current collection on every render so seat counts stay live.
type Model struct {
	EventID int64
	Style   string

	cache *rendererCache
}

// rendererCache holds the glamour renderer for the last style and width.
// It is shared by copies of the Model, which Bubble Tea passes by value.
type rendererCache struct {
	style string
	width int
	r     *glamour.TermRenderer
}

// New creates a detail overlay for the given event.
func New(id int64) Model {
	return Model{EventID: id, Style: DefaultStyle, cache: &rendererCache{}}
}

// Find returns the event this overlay shows.
func (m Model) Find(events []catalog.Event) (catalog.Event, bool) {
	for _, e := range events {
		if e.ID == m.EventID {
			return e, true
		}
	}
	return catalog.Event{}, false
}

// View renders the overlay for the event found in events.
func (m Model) View(events []catalog.Event, width int) string {
	innerW := max(width-8, 30)

	e, ok := m.Find(events)
	if !ok {
		return theme.StyleBorder.Padding(1, 2).Render("Event not found.")
	}

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CategoryColor(string(e.Category))).
		Render(e.Title)

	fields := []string{
		field("Category", string(e.Category)),
		field("Date", e.Date),
		field("Price", "$"+e.Price.String()),
		lipgloss.NewStyle().Foreground(theme.SeatsColor(e.AvailableSeats)).
			Render(fmt.Sprintf("Available Seats: %d", e.AvailableSeats)),
	}

	button := theme.StyleButton.Render(e.Availability().String())
	if e.Availability() == catalog.FullyBooked {
		button = theme.StyleButtonDisabled.Render(e.Availability().String())
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		strings.Join(fields, "\n"),
		"",
		m.renderDescription(e.Description, innerW-4),
		button,
		"",
		theme.StyleDimmed.Render("enter: book  esc: close"),
	)

	return lipgloss.NewStyle().
		Width(innerW).
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}

func field(label, value string) string {
	return theme.StyleDimmed.Render(label+": ") + value
}

// renderDescription renders Markdown, falling back to the raw text if
// glamour cannot build a renderer.
func (m Model) renderDescription(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return theme.StyleDimmed.Render("No description.")
	}
	style := m.Style
	if style == "" {
		style = DefaultStyle
	}
	r, err := m.renderer(style, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

// renderer returns a glamour renderer for style and width, reusing the
// cached one while neither changes.
func (m Model) renderer(style string, width int) (*glamour.TermRenderer, error) {
	if c := m.cache; c != nil && c.r != nil && c.style == style && c.width == width {
		return c.r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	if m.cache != nil {
		*m.cache = rendererCache{style: style, width: width, r: r}
	}
	return r, nil
}
