package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/valuemon/internal/format"
)

// renderMetricCard renders a single counter card with title, value, and sparkline.
//
// Layout (3 rows inside a rounded border):
//
//	╭──────────────────╮
//	│ Title            │
//	│ 1,204            │   ← bold, card color
//	│ ▁▂▃▅▇█▇▅▃▂       │   ← colored sparkline (blank when no history)
//	╰──────────────────╯
func renderMetricCard(title, value, unit string, sparkValues []float64, cardWidth int, color lipgloss.Color) string {
	const minCardWidth = 8
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}

	// Inner width = card width minus border (2) and padding (2), and lipgloss
	// Width() already counts padding, so content gets cardWidth-6.
	innerWidth := cardWidth - 6
	if innerWidth < 1 {
		innerWidth = 1
	}

	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(color)

	valueLine := valueStyle.Render(value)
	if unit != "" {
		valueLine = valueStyle.Render(value + " " + unit)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(0, 1).
		Width(cardWidth - 4)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		StyleDim.Render(title),
		valueLine,
		RenderSparkline(sparkValues, innerWidth, color),
	))
}

// renderCountersRow renders the reached, aimed, action and hourly cards.
// Wide terminals (>= 80 cols): 1x4 horizontal row.
// Narrow terminals (< 80 cols): 2x2 grid.
func renderCountersRow(app *App) string {
	series := app.agg.Series()
	rates := app.agg.Rates().Values()

	build := func(cardWidth int) []string {
		return []string{
			renderMetricCard("Reached Values", format.FormatCount(app.reachedCount), "", series.Reached, cardWidth, colorReached),
			renderMetricCard("Aimed Values", format.FormatCount(app.aimedCount), "", series.Aimed, cardWidth, colorAimed),
			renderMetricCard("Actions", format.FormatCount(app.actionCount), "", nil, cardWidth, colorYellow),
			renderMetricCard("Hourly Estimate", format.FormatHourly(app.hourly), "/h", rates, cardWidth, colorGreen),
		}
	}

	if app.width > 0 && app.width < 80 {
		// Each card renders at (cardWidth-2) wide, so two per row need
		// cardWidth=(width+4)/2.
		cardWidth := (app.width + 4) / 2
		if cardWidth < 8 {
			return ""
		}
		cards := build(cardWidth)
		top := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cards[2], cards[3])
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}

	width := app.width
	if width <= 0 {
		width = 80
	}
	cardWidth := (width + 8) / 4
	if cardWidth < 20 {
		cardWidth = 20
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, build(cardWidth)...)
}
