package output

import (
	"fmt"
	"strings"

	"github.com/kanit-labs/fingerfit/internal/history"
)

// ProgressBar renders a visual bar for a 0-100 progress percentage,
// colored by the day's trend.
// Example: "████████░░░░░░░░░░░░ 40%"
func ProgressBar(pct float64, trend history.Trend, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((pct / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %s", trendStyle(trend)(bar), StyleMuted.Render(fmt.Sprintf("%3.0f%%", pct)))
}

// TrendIndicator renders the four-way day feedback marker: green up
// arrow when improved, amber down arrow when declined, red dot for a
// low day without a comparison, green dot otherwise.
func TrendIndicator(trend history.Trend) string {
	switch trend {
	case history.TrendImproved:
		return StyleGood.Render("↑")
	case history.TrendDeclined:
		return StyleAmber.Render("↓")
	case history.TrendLow:
		return StyleLow.Render("●")
	default:
		return StyleGood.Render("●")
	}
}

func trendStyle(trend history.Trend) func(...string) string {
	switch trend {
	case history.TrendDeclined:
		return StyleAmber.Render
	case history.TrendLow:
		return StyleLow.Render
	default:
		return StyleGood.Render
	}
}

// TimerRing renders a one-line stand-in for the circular hold timer: a
// ring of segments filling clockwise with the elapsed fraction, with
// the remaining seconds in the middle.
// Example: "◉◉◉◉◉◉○○○○○○  3s"
func TimerRing(seconds int, fraction float64, width int) string {
	if width <= 0 {
		width = 12
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	ring := StyleGood.Render(strings.Repeat("◉", filled)) + StyleMuted.Render(strings.Repeat("○", width-filled))
	return fmt.Sprintf("%s %s", ring, StyleBold.Render(fmt.Sprintf("%2ds", seconds)))
}

// TrendArrow renders a delta direction marker for snapshot comparisons.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("→")
	}
	improved := (delta > 0) == higherIsBetter
	if improved {
		return StyleGood.Render("↑")
	}
	return StyleAmber.Render("↓")
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
