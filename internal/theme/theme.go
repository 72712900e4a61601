// Package theme provides the Lip Gloss color palette and reusable styles
// for the booker TUI. It is a leaf package with no internal imports to
// avoid import cycles.
package theme

import "github.com/charmbracelet/lipgloss"

// Category colors.
var (
	ColorComedy  = lipgloss.Color("#f59e0b")
	ColorCircus  = lipgloss.Color("#a855f7")
	ColorCarRace = lipgloss.Color("#dc2626")
	ColorDefault = lipgloss.Color("#9ca3af")
)

// Seat availability colors.
var (
	ColorSeatsPlenty = lipgloss.Color("#22c55e") // >10
	ColorSeatsFew    = lipgloss.Color("#d97706") // 1-10
	ColorSoldOut     = lipgloss.Color("#6b7280")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorAccent  = lipgloss.Color("#3b82f6")
	ColorHealthy = lipgloss.Color("#22c55e")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
)

// CategoryColor returns the color for a category label.
func CategoryColor(category string) lipgloss.Color {
	switch category {
	case "Comedy":
		return ColorComedy
	case "Circus":
		return ColorCircus
	case "Car Race":
		return ColorCarRace
	default:
		return ColorDefault
	}
}

// SeatsColor returns the color for a remaining seat count.
func SeatsColor(seats int) lipgloss.Color {
	switch {
	case seats <= 0:
		return ColorSoldOut
	case seats <= 10:
		return ColorSeatsFew
	default:
		return ColorSeatsPlenty
	}
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
		Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBright)

	StyleError = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorDanger)

	// StyleButton is an enabled control; StyleButtonDisabled is greyed out.
	StyleButton = lipgloss.NewStyle().
		Foreground(ColorBright).
		Background(ColorAccent).
		Padding(0, 1)

	StyleButtonDisabled = lipgloss.NewStyle().
		Foreground(ColorDimmed).
		Strikethrough(true).
		Padding(0, 1)

	StyleButtonActive = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBright).
		Background(ColorHealthy).
		Padding(0, 1)
)
