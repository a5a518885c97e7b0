package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/valuemon/internal/client"
)

func TestRenderMetricCard_ContainsTitle(t *testing.T) {
	title := "Reached Values"
	result := renderMetricCard(title, "1,234", "", []float64{1, 2, 3}, 30, colorReached)
	assert.Contains(t, stripANSI(result), title)
}

func TestRenderMetricCard_ContainsValueAndUnit(t *testing.T) {
	result := renderMetricCard("Hourly Estimate", "600", "/h", []float64{-1, 4, -1, 6}, 30, colorGreen)
	stripped := stripANSI(result)
	assert.Contains(t, stripped, "600 /h")
}

func TestRenderMetricCard_MinWidthEnforced(t *testing.T) {
	// Card width below the minimum should still render without panicking.
	result := renderMetricCard("Rate", "1", "", nil, 5, colorGreen)
	require.NotEmpty(t, result)
	assert.Contains(t, stripANSI(result), "Rate")
}

func TestRenderCountersRow_Wide(t *testing.T) {
	app, _ := newTestAppWith(t, &tuiMockClient{}, pollingEvery(15*time.Second))
	app.width = 120
	app = feed(app, logsMsg(client.LogStateLogging, rec(1000, 2000, 7), rec(3500, 4500, 9)))

	stripped := stripANSI(renderCountersRow(app))
	assert.Contains(t, stripped, "Reached Values")
	assert.Contains(t, stripped, "2,500")
	assert.Contains(t, stripped, "Aimed Values")
	assert.Contains(t, stripped, "Actions")
	assert.Contains(t, stripped, "9")
	assert.Contains(t, stripped, "Hourly Estimate")
	assert.Contains(t, stripped, "600000 /h")
}

func TestRenderCountersRow_NarrowIsTwoByTwo(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 60

	wide := renderCountersRow(&App{width: 120, agg: app.agg, reachedCount: "0", aimedCount: "0", actionCount: "0"})
	narrow := renderCountersRow(app)
	assert.Greater(t, renderedHeight(narrow), renderedHeight(wide))
}

func TestRenderCountersRow_InitialZeros(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.width = 120

	stripped := stripANSI(renderCountersRow(app))
	assert.Contains(t, stripped, "0")
	assert.NotContains(t, stripped, "NaN")
}
