package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderDeleteConfirm renders the full-screen confirmation shown before
// deleting the deployed actions of the selected deployment. The caller
// renders the header above and the footer below.
func renderDeleteConfirm(app *App) string {
	width := app.width
	if width <= 0 {
		width = 80
	}
	height := app.height
	if height <= 0 {
		height = 24
	}

	titleText := "Delete Actions Confirmation"
	hintText := StyleDim.Render("[y: confirm  n/esc: cancel]")
	innerWidth := width - 2 // StyleHeader has Padding(0,1)
	gap := innerWidth - lipgloss.Width(titleText) - lipgloss.Width(hintText)
	if gap < 1 {
		gap = 1
	}
	titleBar := StyleHeader.Width(width).MaxWidth(width).Render(titleText + strings.Repeat(" ", gap) + hintText)

	headerH := renderedHeight(renderHeader(app))
	footerH := renderedHeight(renderFooter(app))
	availH := height - headerH - renderedHeight(titleBar) - footerH
	if availH < 1 {
		availH = 1
	}

	body := []string{
		"",
		"  " + StyleRed.Bold(true).Render("WARNING: This action cannot be undone."),
		"",
		"  All actions deployed to " + StyleCyan.Bold(true).Render(string(app.selectedDeployment())) + " will be deleted.",
	}
	prompt := []string{
		"",
		"  " + StyleYellow.Render("Press y to confirm, n or esc to cancel."),
	}

	// The prompt is never trimmed; the body gives way first.
	if len(body)+len(prompt) > availH {
		keep := availH - len(prompt)
		if keep < 0 {
			keep = 0
			prompt = prompt[len(prompt)-availH:]
		}
		body = body[:keep]
	}

	lines := make([]string, 0, availH)
	lines = append(lines, body...)
	lines = append(lines, prompt...)
	for len(lines) < availH {
		lines = append(lines, "")
	}
	return titleBar + "\n" + strings.Join(lines, "\n")
}
