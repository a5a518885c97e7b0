package tui

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestParseActionList(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n ", nil},
		{
			"list items",
			`<li class="list-group-item">/guest/handleconfig private nodejs </li>` +
				`<li class="list-group-item">/guest/fetch  public python</li>`,
			[]string{"/guest/handleconfig private nodejs", "/guest/fetch public python"},
		},
		{"nested markup", `<LI><b>deploy</b> &amp; run</LI>`, []string{"deploy & run"}},
		{"empty items skipped", `<li></li><li>a</li>`, []string{"a"}},
		{"plain text fallback", "first\n\nsecond", []string{"first", "second"}},
		{"markup without items", "<p>No actions</p>", []string{"No actions"}},
		{"escape sequences stripped", "<li>\x1b[31mred\x1b[0m</li>", []string{"red"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseActionList(tc.message))
		})
	}
}

func TestRenderActionsPanel_Status(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})

	stripped := stripANSI(renderActionsPanel(app, 60, 5))
	assert.Contains(t, stripped, "Action List")
	assert.Contains(t, stripped, "waiting for action list")
	assert.Contains(t, stripped, "no actions deployed")

	app.actionListStatus = actionListPaused
	assert.Contains(t, stripANSI(renderActionsPanel(app, 60, 5)), actionListPaused)
}

func TestRenderActionsPanel_Overflow(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	for i := 0; i < 12; i++ {
		app.actionItems = append(app.actionItems, fmt.Sprintf("/guest/action-%02d", i))
	}

	result := renderActionsPanel(app, 60, 5)
	stripped := stripANSI(result)
	assert.Contains(t, stripped, "/guest/action-00")
	assert.Contains(t, stripped, "/guest/action-03")
	assert.NotContains(t, stripped, "/guest/action-04")
	assert.Contains(t, stripped, "...and 8 more")
	assert.Equal(t, 60, lipgloss.Width(result))
}

func TestRenderActionsPanel_LongItemTruncated(t *testing.T) {
	app, _ := newTestApp(t, &tuiMockClient{})
	app.actionItems = []string{"/guest/a-very-long-action-name-that-does-not-fit-in-the-panel"}

	result := renderActionsPanel(app, 30, 5)
	assert.Contains(t, stripANSI(result), "…")
	assert.Equal(t, 30, lipgloss.Width(result))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "hello", truncateText("hello", 5))
	assert.Equal(t, "hel…", truncateText("hello", 4))
	assert.Equal(t, "…", truncateText("hello", 1))
	assert.Equal(t, "", truncateText("hello", 0))
	assert.Equal(t, "", truncateText("hello", -3))
}
