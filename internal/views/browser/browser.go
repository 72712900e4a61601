// Package browser provides the Event Browser screen: search, category
// filter, paged event cards and the booking control.
package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/catalog"
	"github.com/event-booker/booker/internal/client"
	"github.com/event-booker/booker/internal/theme"
	"github.com/event-booker/booker/internal/views/alert"
)

// User-facing messages.
const (
	MsgLoading       = "Loading events..."
	MsgFetchFailed   = "Failed to fetch events."
	MsgLoginRequired = "Please log in to book tickets."
)

// BookedMsg reports the outcome of a booking attempt that passed the login
// gate. Err is catalog.ErrFullyBooked or catalog.ErrEventNotFound when the
// collection was left unchanged.
type BookedMsg struct {
	EventID int64
	Seats   int
	Err     error
}

// OpenDetailMsg asks the app to open the detail overlay for an event.
type OpenDetailMsg struct {
	EventID int64
}

// PageMsg reports a page button selection.
type PageMsg struct {
	Page int
}

// Model is the Event Browser screen.
type Model struct {
	ctx     context.Context
	fetcher client.Fetcher
	keys    KeyMap
	help    help.Model

	state   catalog.Browser
	search  textinput.Model
	spinner spinner.Model

	// cursor indexes the visible page of events.
	cursor int

	width  int
	height int
}

// New creates a browser in the loading state. Init issues the fetch.
func New(ctx context.Context, f client.Fetcher, auth catalog.Authenticator) Model {
	search := textinput.New()
	search.Placeholder = "Search events..."
	search.Prompt = "/ "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorAccent)

	return Model{
		ctx:     ctx,
		fetcher: f,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		state:   catalog.NewBrowser(auth),
		search:  search,
		spinner: sp,
	}
}

// Init starts the one catalog fetch and the loading spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, client.LoadEvents(m.ctx, m.fetcher))
}

// SetSize updates the available rendering area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// State returns the browse state behind the screen.
func (m Model) State() catalog.Browser { return m.state }

// Searching reports whether the search input has focus.
func (m Model) Searching() bool { return m.search.Focused() }

// Cursor returns the index of the highlighted card on the current page.
func (m Model) Cursor() int { return m.cursor }

// Selected returns the highlighted event, if the page has any.
func (m Model) Selected() (catalog.Event, bool) {
	visible := m.state.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return catalog.Event{}, false
	}
	return visible[m.cursor], true
}

// Book runs the guarded booking operation for id. Signed-out sessions get
// the login alert; everything else is reported as a BookedMsg.
func (m *Model) Book(id int64) tea.Cmd {
	err := m.state.Book(id)
	if errors.Is(err, catalog.ErrNotAuthenticated) {
		return func() tea.Msg { return alert.ShowMsg{Text: MsgLoginRequired} }
	}

	seats := -1
	for _, e := range m.state.Events() {
		if e.ID == id {
			seats = e.AvailableSeats
			break
		}
	}
	return func() tea.Msg { return BookedMsg{EventID: id, Seats: seats, Err: err} }
}

// Update handles messages for the browser.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case client.EventsLoadedMsg:
		m.state.Loaded(msg.Events, msg.Err)
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Blur) {
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.state.Query() {
		m.state.SetQuery(q)
		m.cursor = 0
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Category):
		m.state.SetCategory(m.state.Category().Next())
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.cursor++
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor--
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Book):
		// A sold-out card's button is disabled.
		e, ok := m.Selected()
		if !ok || e.Availability() == catalog.FullyBooked {
			return m, nil
		}
		cmd := m.Book(e.ID)
		return m, cmd

	case key.Matches(msg, m.keys.Detail):
		e, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return OpenDetailMsg{EventID: e.ID} }

	case key.Matches(msg, m.keys.Page):
		n := int(msg.String()[0] - '0')
		if n > m.state.TotalPages() {
			return m, nil
		}
		return m.selectPage(n)

	case key.Matches(msg, m.keys.PrevPage):
		return m.stepPage(-1)

	case key.Matches(msg, m.keys.NextPage):
		return m.stepPage(1)
	}

	return m, nil
}

// stepPage selects the page button next to the current page. A page left
// stranded past the last button by a filter change steps onto the last one.
func (m Model) stepPage(delta int) (Model, tea.Cmd) {
	total := m.state.TotalPages()
	if total == 0 {
		return m, nil
	}
	n := max(1, min(m.state.Page()+delta, total))
	if n == m.state.Page() {
		return m, nil
	}
	return m.selectPage(n)
}

func (m Model) selectPage(n int) (Model, tea.Cmd) {
	m.state.SelectPage(n)
	m.cursor = 0
	return m, func() tea.Msg { return PageMsg{Page: n} }
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, len(m.state.Visible())-1))
}

// View renders the browser.
func (m Model) View() string {
	width := max(m.width, 60)

	sections := []string{
		theme.StyleHeader.Render("Upcoming Events"),
		"",
		m.renderSearch(),
		m.renderCategory(),
		"",
	}

	switch {
	case m.state.Loading():
		sections = append(sections, m.spinner.View()+" "+MsgLoading)
	case m.state.Err() != nil:
		sections = append(sections, theme.StyleError.Render(MsgFetchFailed))
	default:
		sections = append(sections, m.renderCards(width))
		if strip := m.renderPages(); strip != "" {
			sections = append(sections, "", strip)
		}
	}

	sections = append(sections, "", m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderSearch() string {
	if !m.search.Focused() && m.search.Value() == "" {
		return theme.StyleDimmed.Render("/ Search events...")
	}
	return m.search.View()
}

func (m Model) renderCategory() string {
	cat := m.state.Category()
	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CategoryColor(string(cat))).
		Render(cat.Label())
	return theme.StyleDimmed.Render("Category: ") + "‹ " + label + " ›"
}

func (m Model) renderCards(width int) string {
	visible := m.state.Visible()
	if len(visible) == 0 {
		return theme.StyleDimmed.Render("No matching events.")
	}

	cards := make([]string, 0, len(visible))
	for i, e := range visible {
		cards = append(cards, renderCard(e, i == m.cursor, width-2))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCard(e catalog.Event, selected bool, width int) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.CategoryColor(string(e.Category))).
		Render(e.Title)
	if selected {
		title = theme.StyleSelected.Render("> ") + title
	}

	seats := lipgloss.NewStyle().
		Foreground(theme.SeatsColor(e.AvailableSeats)).
		Render(fmt.Sprintf("Available Seats: %d", e.AvailableSeats))

	label := e.Availability().String()
	button := theme.StyleButton.Render(label)
	if e.Availability() == catalog.FullyBooked {
		button = theme.StyleButtonDisabled.Render(label)
	}

	lines := []string{
		title,
		theme.StyleDimmed.Render(firstLine(e.Description)),
		fmt.Sprintf("Category: %s  Date: %s  Price: $%s", e.Category, e.Date, e.Price.String()),
		seats,
		button,
	}

	border := theme.ColorBorder
	if selected {
		border = theme.ColorAccent
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Render(strings.Join(lines, "\n"))
}

// renderPages draws one button per page. The current page may lie past the
// last button, in which case no button is highlighted.
func (m Model) renderPages() string {
	total := m.state.TotalPages()
	if total == 0 {
		return ""
	}
	buttons := make([]string, 0, total)
	for n := 1; n <= total; n++ {
		style := theme.StyleButton
		if n == m.state.Page() {
			style = theme.StyleButtonActive
		}
		buttons = append(buttons, style.Render(fmt.Sprint(n)))
	}
	return strings.Join(buttons, " ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
