package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/catalog"
	"github.com/event-booker/booker/internal/client"
	"github.com/event-booker/booker/internal/session"
	"github.com/event-booker/booker/internal/theme"
	"github.com/event-booker/booker/internal/views/alert"
	"github.com/event-booker/booker/internal/views/browser"
	"github.com/event-booker/booker/internal/views/debug"
	"github.com/event-booker/booker/internal/views/detail"
	"github.com/event-booker/booker/internal/views/login"
	"github.com/event-booker/booker/internal/views/status"
)

// MsgInvalidLogin is the alert shown for a rejected username/password pair.
const MsgInvalidLogin = "Invalid login credentials"

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayDetail
	OverlayDebug
)

// Model is the root Bubble Tea model.
type Model struct {
	ctx     context.Context
	fetcher client.Fetcher
	session *session.Session
	logger  *slog.Logger

	keys   KeyMap
	width  int
	height int

	// mounted is set once the browser has been created and its fetch issued.
	mounted bool
	overlay Overlay

	// Sub-views.
	login     login.Model
	browser   browser.Model
	alert     alert.Model
	detail    detail.Model
	debugLog  debug.Model
	statusBar status.Model
}

// New creates the root model. A nil logger discards log output.
func New(ctx context.Context, f client.Fetcher, s *session.Session, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		ctx:      ctx,
		fetcher:  f,
		session:  s,
		logger:   logger,
		keys:     DefaultKeyMap(),
		login:    login.New(),
		debugLog: debug.New(),
	}
}

// SetCatalogURL sets the catalog location shown in the status bar.
func (m *Model) SetCatalogURL(url string) {
	m.statusBar.Source = url
}

// Init starts on the login screen, or mounts the browser straight away if
// the session is already signed in.
func (m Model) Init() tea.Cmd {
	if m.session.IsAuthenticated() {
		return func() tea.Msg { return mountMsg{} }
	}
	return m.login.Init()
}

// mountMsg asks the app to create the browser and issue its fetch.
type mountMsg struct{}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		m.browser.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case alert.ShowMsg:
		m.alert.Show(msg.Text)
		m.debugLog.Add(debug.KindAuth, "alert: "+msg.Text)
		return m, nil

	case login.SubmitMsg:
		return m.submit(msg)

	case mountMsg:
		return m.mount()

	case client.EventsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("catalog fetch failed", "err", msg.Err)
			m.debugLog.Add(debug.KindError, "fetch: "+msg.Err.Error())
		} else {
			m.logger.Info("catalog loaded", "events", len(msg.Events))
			m.debugLog.Addf(debug.KindFetch, "loaded %d events", len(msg.Events))
		}
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		m.syncStatus()
		return m, cmd

	case browser.BookedMsg:
		m.logBooking(msg)
		m.syncStatus()
		return m, nil

	case browser.OpenDetailMsg:
		m.detail = detail.New(msg.EventID)
		m.overlay = OverlayDetail
		m.debugLog.Addf(debug.KindNav, "detail %d", msg.EventID)
		return m, nil

	case browser.PageMsg:
		m.debugLog.Addf(debug.KindNav, "page %d", msg.Page)
		m.syncStatus()
		return m, nil
	}

	return m.forward(msg)
}

// forward passes a message to the active screen.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mounted {
		m.browser, cmd = m.browser.Update(msg)
		m.syncStatus()
	} else {
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

func (m Model) submit(msg login.SubmitMsg) (tea.Model, tea.Cmd) {
	if err := m.session.Login(msg.Username, msg.Password); err != nil {
		m.logger.Warn("login rejected", "user", msg.Username)
		m.debugLog.Addf(debug.KindAuth, "login rejected for %q", msg.Username)
		m.login.Rejected()
		m.alert.Show(MsgInvalidLogin)
		return m, nil
	}
	m.logger.Info("login", "user", m.session.User(), "session", m.session.ID(), "since", m.session.Since())
	m.debugLog.Addf(debug.KindAuth, "signed in as %s", m.session.User())
	return m.mount()
}

// mount creates the browser the first time it is shown. Later calls are
// no-ops so the catalog is only ever fetched once.
func (m Model) mount() (tea.Model, tea.Cmd) {
	if m.mounted {
		return m, nil
	}
	m.mounted = true
	m.browser = browser.New(m.ctx, m.fetcher, m.session)
	m.browser.SetSize(m.width, m.height)
	m.statusBar.User = m.session.User()
	m.debugLog.Add(debug.KindFetch, "fetching catalog")
	m.syncStatus()
	return m, m.browser.Init()
}

func (m *Model) logBooking(msg browser.BookedMsg) {
	switch {
	case msg.Err == nil:
		m.logger.Info("booked", "event", msg.EventID, "seats_left", msg.Seats, "session", m.session.ID())
		m.debugLog.Addf(debug.KindBook, "booked event %d, %d seats left", msg.EventID, msg.Seats)
	case errors.Is(msg.Err, catalog.ErrFullyBooked):
		m.debugLog.Addf(debug.KindBook, "event %d is fully booked", msg.EventID)
	default:
		m.logger.Warn("booking ignored", "event", msg.EventID, "err", msg.Err)
		m.debugLog.Addf(debug.KindError, "book %d: %v", msg.EventID, msg.Err)
	}
}

func (m *Model) syncStatus() {
	if !m.mounted {
		return
	}
	st := m.browser.State()
	m.statusBar.Loading = st.Loading()
	m.statusBar.Failed = st.Err() != nil
	m.statusBar.SetCounts(len(st.Events()), len(st.Filtered()), st.Page(), st.TotalPages())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	// The alert blocks every other key until it is dismissed.
	if m.alert.Open() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.alert.Dismiss()
		}
		return m, nil
	}

	switch m.overlay {
	case OverlayDetail:
		switch {
		case key.Matches(msg, m.keys.Escape):
			m.overlay = OverlayNone
		case key.Matches(msg, m.keys.Book):
			e, ok := m.detail.Find(m.browser.State().Events())
			if !ok || e.Availability() == catalog.FullyBooked {
				return m, nil
			}
			cmd := m.browser.Book(e.ID)
			return m, cmd
		}
		return m, nil

	case OverlayDebug:
		switch {
		case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Debug):
			m.overlay = OverlayNone
		case key.Matches(msg, m.keys.ScrollUp):
			m.debugLog.ScrollUp(1)
		case key.Matches(msg, m.keys.ScrollDn):
			m.debugLog.ScrollDown(1)
		}
		return m, nil
	}

	if !m.mounted {
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}

	if !m.browser.Searching() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Debug):
			m.overlay = OverlayDebug
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.browser, cmd = m.browser.Update(msg)
	m.syncStatus()
	return m, cmd
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	if m.alert.Open() {
		return m.center(m.alert.View(m.width))
	}

	if !m.mounted {
		return m.center(m.login.View())
	}

	switch m.overlay {
	case OverlayDetail:
		return m.detail.View(m.browser.State().Events(), m.width)
	case OverlayDebug:
		return m.debugLog.View(m.width, m.height)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.statusBar.View(),
		m.browser.View(),
		theme.StyleDimmed.Render("  d:debug  q:quit"),
	)
}

func (m Model) center(s string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}
