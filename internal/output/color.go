// Package output provides styled terminal rendering helpers for fingerfit.
package output

import "github.com/charmbracelet/lipgloss"

// Color constants for consistent styling across the CLI. Green, amber
// and red mirror the progress-chart feedback colors.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#9575cd")

	// ColorGood is used for improved days and on-track progress.
	ColorGood = lipgloss.Color("#66bb6a")

	// ColorAmber is used for declined days.
	ColorAmber = lipgloss.Color("#ffa726")

	// ColorLow is used for low-progress days.
	ColorLow = lipgloss.Color("#ef5350")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleGood is used for improved/normal progress.
	StyleGood = lipgloss.NewStyle().
			Foreground(ColorGood)

	// StyleAmber is used for declined progress.
	StyleAmber = lipgloss.NewStyle().
			Foreground(ColorAmber)

	// StyleLow is used for low progress.
	StyleLow = lipgloss.NewStyle().
			Foreground(ColorLow)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleAmber = plain
		StyleLow = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
