package status

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/event-booker/booker/internal/theme"
)

// Model holds the status bar state.
type Model struct {
	User     string
	Source   string
	Total    int
	Matching int
	Page     int
	Pages    int
	Loading  bool
	Failed   bool
	Width    int
}

// SetCounts updates the catalog counters.
func (m *Model) SetCounts(total, matching, page, pages int) {
	m.Total = total
	m.Matching = matching
	m.Page = page
	m.Pages = pages
}

// View renders the status bar.
func (m Model) View() string {
	width := m.Width
	if width < 40 {
		width = 40
	}

	var userStr string
	if m.User != "" {
		userStr = lipgloss.NewStyle().Foreground(theme.ColorHealthy).Render("● " + m.User)
	} else {
		userStr = lipgloss.NewStyle().Foreground(theme.ColorDanger).Render("○ Signed out")
	}

	var counts string
	switch {
	case m.Loading:
		counts = "loading catalog"
	case m.Failed:
		counts = lipgloss.NewStyle().Foreground(theme.ColorDanger).Render("catalog unavailable")
	default:
		counts = fmt.Sprintf("%d events  %d matching  page %d/%d",
			m.Total, m.Matching, m.Page, m.Pages)
	}

	sep := lipgloss.NewStyle().Foreground(theme.ColorBorder).Render(" | ")
	content := userStr + sep + counts
	if m.Source != "" {
		content += sep + theme.StyleDimmed.Render(m.Source)
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(content)
}
