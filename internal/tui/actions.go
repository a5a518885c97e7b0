package tui

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	listItemRe = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	tagRe      = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ParseActionList turns the server's pre-rendered action list into display
// lines. Each <li> becomes one line; markup without list items falls back to
// one line per non-empty text line.
func ParseActionList(message string) []string {
	if strings.TrimSpace(message) == "" {
		return nil
	}

	var raw []string
	if matches := listItemRe.FindAllStringSubmatch(message, -1); len(matches) > 0 {
		for _, m := range matches {
			raw = append(raw, m[1])
		}
	} else {
		raw = strings.Split(message, "\n")
	}

	items := make([]string, 0, len(raw))
	for _, r := range raw {
		text := html.UnescapeString(tagRe.ReplaceAllString(r, " "))
		text = sanitize(strings.Join(strings.Fields(text), " "))
		if text != "" {
			items = append(items, text)
		}
	}
	return items
}

// renderActionsPanel renders the deployed action list with its status line.
// At most maxRows items are listed; the rest are summarised.
func renderActionsPanel(app *App, width, maxRows int) string {
	if maxRows < 1 {
		maxRows = 1
	}

	status := app.actionListStatus
	if status == "" {
		status = "waiting for action list"
	}
	statusStyle := StyleDim
	switch status {
	case actionListAvailable:
		statusStyle = StyleGreen
	case statusUnreachable:
		statusStyle = StyleError
	case actionListPaused:
		statusStyle = StyleYellow
	}

	lines := []string{
		StyleBold.Render("Action List") + "  " + statusStyle.Render(status),
	}

	// Border (2) and padding (2).
	textWidth := width - 4
	if textWidth < 10 {
		textWidth = 10
	}

	switch n := len(app.actionItems); {
	case n == 0:
		lines = append(lines, StyleDim.Render("no actions deployed"))
	default:
		visible := app.actionItems
		if n > maxRows {
			visible = app.actionItems[:maxRows-1]
		}
		for _, item := range visible {
			lines = append(lines, "• "+truncateText(item, textWidth-2))
		}
		if n > maxRows {
			lines = append(lines, StyleDim.Render(fmt.Sprintf("...and %d more", n-len(visible))))
		}
	}

	return StylePanel.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// truncateText shortens s to at most n runes, marking the cut with an ellipsis.
func truncateText(s string, n int) string {
	rs := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(rs) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(rs[:n-1]) + "…"
}
