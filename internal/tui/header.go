package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top header bar.
//
// Layout:
//
//	left:   server base URL
//	center: "● <connectivity status>" colored by state
//	right:  "Last: HH:MM:SS  Poll: 15s", or "PAUSED" while updates are paused
func renderHeader(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}

	left := "valuemon"
	if app.client != nil {
		left += "  " + app.client.BaseURL()
	}

	status := app.monitorStatus
	if status == "" {
		status = "Connecting..."
	}
	center := connectivityStyle(app.monitorStatus).Render("● " + status)

	var right string
	if app.paused {
		right = StyleYellow.Bold(true).Render("PAUSED")
	} else {
		lastStr := "--:--:--"
		if !app.lastUpdated.IsZero() {
			lastStr = app.lastUpdated.Format("15:04:05")
		}
		right = StyleDim.Render(fmt.Sprintf("Last: %s  Poll: %s", lastStr, formatDuration(app.opts.LogsInterval)))
	}

	// StyleHeader has Padding(0, 1) so inner content width = total width - 2.
	innerWidth := width - 2
	fits := func() bool {
		return lipgloss.Width(left)+lipgloss.Width(center)+lipgloss.Width(right) <= innerWidth
	}
	// Narrow terminals: shorten the URL first, then drop the poll info, then
	// the program name.
	if !fits() {
		room := innerWidth - lipgloss.Width(center) - lipgloss.Width(right) - 1
		left = truncateText(left, room)
	}
	if !fits() {
		right = ""
		left = truncateText(left, innerWidth-lipgloss.Width(center)-1)
	}
	if !fits() {
		left = ""
		center = connectivityStyle(app.monitorStatus).Render(truncateText("● "+status, innerWidth))
	}
	spacing := innerWidth - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right)
	if spacing < 0 {
		spacing = 0
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing

	row := left +
		strings.Repeat(" ", leftSpacing) +
		center +
		strings.Repeat(" ", rightSpacing) +
		right

	return StyleHeader.Width(width).MaxWidth(width).Render(row)
}

// renderLoggerState renders the server's logging state line, if known.
func renderLoggerState(app *App) string {
	if app.loggerState == "" {
		return ""
	}
	if app.serverLogging {
		return StyleGreen.Render(app.loggerState)
	}
	return StyleYellow.Render(app.loggerState)
}

func connectivityStyle(status string) lipgloss.Style {
	switch status {
	case statusConnected:
		return StyleGreen.Bold(true)
	case statusUnreachable:
		return StyleError
	case statusPaused:
		return StyleYellow.Bold(true)
	default:
		return StyleDim
	}
}

// formatDuration formats a poll interval as a compact string, e.g. "15s",
// "2m" or "1m30s".
func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm%ds", mins, secs)
}
