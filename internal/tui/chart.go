package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dm/valuemon/internal/format"
	"github.com/dm/valuemon/internal/model"
)

// chartHeight is the number of plot rows in the value performance chart.
const chartHeight = 10

const (
	markAimed   = '•'
	markReached = '●'
	markBoth    = '◆'
)

// renderChart draws the aimed and reached series as a point plot with a
// zero-based Y axis, a legend and the point labels along the X axis.
//
//	Value performance (Value Amount)      ■ aimedValueCount  ■ valueCount
//	 120 ┤          ●
//	     │    ●  •
//	   0 ┼──────────────
//	      Value 1 … Value 10
func renderChart(s *model.ChartSeries, width, height int) string {
	if width <= 0 {
		width = 80
	}
	if height < 2 {
		height = 2
	}

	title := StyleBold.Render(model.ChartTitle) + " " + StyleDim.Render("("+model.ChartYAxisLabel+")")
	legend := lipgloss.NewStyle().Foreground(colorAimed).Render("■ "+model.SeriesAimed) + "  " +
		lipgloss.NewStyle().Foreground(colorReached).Render("■ "+model.SeriesReached)

	// Border (2) and padding (2).
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	gap := inner - lipgloss.Width(title) - lipgloss.Width(legend)
	if gap < 1 {
		gap = 1
	}
	head := title + strings.Repeat(" ", gap) + legend

	if s == nil || s.Len() == 0 {
		body := StyleDim.Render("no log records yet")
		return StylePanel.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
	}

	top := s.Max()
	if top <= 0 {
		top = 1
	}
	topLabel := format.FormatNumber(int64(top))
	axisW := len(topLabel)
	plotW := inner - axisW - 2
	if plotW < s.Len() {
		plotW = s.Len()
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
	}
	col := func(i int) int {
		if s.Len() == 1 {
			return 0
		}
		return i * (plotW - 1) / (s.Len() - 1)
	}
	row := func(v float64) int {
		if v < 0 {
			v = 0
		}
		r := int(v / top * float64(height-1))
		if r > height-1 {
			r = height - 1
		}
		return height - 1 - r
	}
	for i := 0; i < s.Len(); i++ {
		c := col(i)
		ra, rr := row(s.Aimed[i]), row(s.Reached[i])
		grid[ra][c] = markAimed
		if rr == ra {
			grid[rr][c] = markBoth
		} else {
			grid[rr][c] = markReached
		}
	}

	aimedStyle := lipgloss.NewStyle().Foreground(colorAimed)
	reachedStyle := lipgloss.NewStyle().Foreground(colorReached)

	lines := []string{head}
	for r, cells := range grid {
		var label string
		switch r {
		case 0:
			label = topLabel
		case height - 1:
			label = "0"
		}
		axis := "│"
		if label != "" {
			axis = "┤"
		}
		var sb strings.Builder
		for _, c := range cells {
			switch c {
			case markAimed:
				sb.WriteString(aimedStyle.Render(string(c)))
			case markReached, markBoth:
				sb.WriteString(reachedStyle.Render(string(c)))
			default:
				sb.WriteRune(c)
			}
		}
		lines = append(lines, StyleDim.Render(padLeft(label, axisW)+" "+axis)+sb.String())
	}
	lines = append(lines, StyleDim.Render(strings.Repeat(" ", axisW)+" └"+strings.Repeat("─", plotW)))
	lines = append(lines, strings.Repeat(" ", axisW+2)+StyleDim.Render(xAxisLabels(s.Labels, plotW)))

	return StylePanel.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// xAxisLabels lists the point labels when they fit, otherwise the first and
// last label with the point count between them.
func xAxisLabels(labels []string, width int) string {
	all := strings.Join(labels, " ")
	if len([]rune(all)) <= width {
		return all
	}
	if len(labels) == 0 {
		return ""
	}
	span := labels[0] + " … " + labels[len(labels)-1] + " (" + strconv.Itoa(len(labels)) + " points)"
	return truncateText(span, width)
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat(" ", n-len(s)) + s
}
