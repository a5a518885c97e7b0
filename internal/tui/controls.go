package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/valuemon/internal/client"
)

// actionPanelRows caps how many action list items the bottom row shows.
const actionPanelRows = 8

// renderControlsPanel renders the deployment selector, fresh checkbox, import
// calls input, both command buttons and the import bookkeeping fields.
func renderControlsPanel(app *App, width int) string {
	var radios []string
	for i, d := range client.Deployments {
		mark := "( )"
		style := StyleDim
		if i == app.deployment {
			mark = "(●)"
			style = StyleCyan.Bold(true)
		}
		radios = append(radios, style.Render(mark+" "+string(d)))
	}

	fresh := "[ ]"
	if app.fresh {
		fresh = "[x]"
	}

	calls := app.calls.View()
	if !app.editingCalls {
		calls = app.calls.Value()
		if calls == "" {
			calls = StyleDim.Render("-")
		}
	}

	pause := "[ ]"
	if app.paused {
		pause = StyleYellow.Render("[x]")
	}

	importStatus := app.importStatus
	if importStatus == "" {
		importStatus = StyleDim.Render("-")
	}
	expected := app.actionExpected
	if expected == "" {
		expected = StyleDim.Render("-")
	}
	started := app.startTime
	if started == "" {
		started = StyleDim.Render("-")
	}

	lines := []string{
		StyleBold.Render("Controls"),
		keyHint("t") + strings.Join(radios, "  "),
		keyHint("f") + fresh + " fresh deploy",
		keyHint("c") + "calls: " + calls,
		keyHint("p") + pause + " pause updates",
		"",
		keyHint("d") + app.deployButton.render() + "  " + keyHint("i") + app.importButton.render(),
		"",
		field("Import status", importStatus),
		field("Expected actions", expected),
		field("Start time", started),
	}

	return StylePanel.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderBottomRow places the action list and the controls side by side on
// wide terminals and stacks them otherwise.
func renderBottomRow(app *App) string {
	width := app.chartWidth()
	if width < 100 {
		return lipgloss.JoinVertical(lipgloss.Left,
			renderActionsPanel(app, width, actionPanelRows),
			renderControlsPanel(app, width),
		)
	}
	left := width / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderActionsPanel(app, left, actionPanelRows),
		renderControlsPanel(app, width-left),
	)
}

func keyHint(k string) string {
	return StyleDim.Render("[" + k + "] ")
}

func field(label, value string) string {
	return StyleDim.Render(label+": ") + value
}
