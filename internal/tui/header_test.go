package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// headerLineCount returns the number of lines in a rendered header string
// (ANSI-stripped), treating a single-line result as count=1.
func headerLineCount(rendered string) int {
	stripped := stripANSI(rendered)
	return strings.Count(stripped, "\n") + 1
}

func TestRenderHeader_Connected(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 100
	app.monitorStatus = statusConnected
	app.lastUpdated = time.Date(2024, 1, 1, 14, 32, 5, 0, time.UTC)

	result := renderHeader(app)
	stripped := stripANSI(result)
	assert.Contains(t, stripped, "http://localhost:5000")
	assert.Contains(t, stripped, statusConnected)
	assert.Contains(t, stripped, "Last: 14:32:05")
	assert.Contains(t, stripped, "Poll: ")
	assert.Equal(t, 100, lipgloss.Width(result))
}

func TestRenderHeader_BeforeFirstPoll(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 100

	stripped := stripANSI(renderHeader(app))
	assert.Contains(t, stripped, "Connecting...")
	assert.Contains(t, stripped, "--:--:--")
}

func TestRenderHeader_Paused(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 100
	app.paused = true
	app.monitorStatus = statusPaused

	stripped := stripANSI(renderHeader(app))
	assert.Contains(t, stripped, "PAUSED")
	assert.Contains(t, stripped, statusPaused)
	assert.NotContains(t, stripped, "Last:")
}

func TestRenderHeader_NarrowWidths(t *testing.T) {
	for _, width := range []int{60, 40, 30} {
		app, _ := newTestApp(t, &tuiMockClient{})
		app.width = width
		app.monitorStatus = statusUnreachable
		app.lastUpdated = time.Date(2024, 1, 1, 14, 32, 5, 0, time.UTC)

		result := renderHeader(app)
		assert.Equal(t, 1, headerLineCount(result), "header must be single line at width=%d", width)
		assert.Equal(t, width, lipgloss.Width(result), "rendered header must fill terminal width exactly")
	}
}

func TestRenderLoggerState(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	assert.Equal(t, "", renderLoggerState(app))

	app.loggerState = "Currently the Monitor is logging."
	app.serverLogging = true
	assert.Equal(t, app.loggerState, stripANSI(renderLoggerState(app)))
}

func TestRenderFooter_Notice(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 120
	app.notice = "chart written to out.png"

	stripped := stripANSI(renderFooter(app))
	assert.Contains(t, stripped, "chart written to out.png")
	assert.Contains(t, stripped, "? for help")
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"5 seconds", 5 * time.Second, "5s"},
		{"15 seconds", 15 * time.Second, "15s"},
		{"59 seconds", 59 * time.Second, "59s"},
		{"60 seconds exact", 60 * time.Second, "1m"},
		{"90 seconds", 90 * time.Second, "1m30s"},
		{"120 seconds", 120 * time.Second, "2m"},
		{"150 seconds", 150 * time.Second, "2m30s"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatDuration(tc.input))
		})
	}
}
