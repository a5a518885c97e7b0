package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/valuemon/internal/model"
)

// sparkBlocks is the 8-level block character set for sparklines.
var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// sparkGap marks a poll that produced no reached delta.
const sparkGap = '·'

// RenderSparkline renders the last width values as block characters scaled
// to the largest value shown. Entries equal to model.NoDelta render as a gap
// so polls without a delta stay distinguishable from zero-delta polls. Fewer
// values than width are left-padded with spaces.
func RenderSparkline(values []float64, width int, color lipgloss.Color) string {
	if width <= 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var peak float64
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width-len(values)))
	for _, v := range values {
		switch {
		case v == model.NoDelta:
			sb.WriteRune(sparkGap)
		case v <= 0 || peak == 0:
			sb.WriteRune(sparkBlocks[0])
		default:
			idx := int(v / peak * float64(len(sparkBlocks)-1))
			sb.WriteRune(sparkBlocks[min(idx, len(sparkBlocks)-1)])
		}
	}

	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
