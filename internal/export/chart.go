// Package export renders the value-performance chart to PNG.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dm/valuemon/internal/model"
)

// ErrNotEnoughPoints is returned when the series cannot form a line.
var ErrNotEnoughPoints = errors.New("chart needs at least two points")

var (
	colorAimed   = drawing.ColorFromHex("8e5ea2")
	colorReached = drawing.ColorFromHex("00c0ef")
)

const (
	defaultWidth  = 1024
	defaultHeight = 480
)

// Build assembles the chart for s: two line series on a zero-based Y axis,
// one X tick per point labelled with the point's label.
func Build(s *model.ChartSeries) (*chart.Chart, error) {
	if s == nil || s.Len() < 2 {
		return nil, ErrNotEnoughPoints
	}

	xs := make([]float64, s.Len())
	ticks := make([]chart.Tick, s.Len())
	for i, label := range s.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: label}
	}

	maxY := s.Max()
	if maxY <= 0 {
		maxY = 1
	}

	ch := &chart.Chart{
		Title:  model.ChartTitle,
		Width:  defaultWidth,
		Height: defaultHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 28},
		},
		XAxis: chart.XAxis{Ticks: ticks},
		YAxis: chart.YAxis{
			Name:  model.ChartYAxisLabel,
			Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    model.SeriesAimed,
				XValues: xs,
				YValues: append([]float64(nil), s.Aimed...),
				Style:   chart.Style{StrokeColor: colorAimed, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    model.SeriesReached,
				XValues: xs,
				YValues: append([]float64(nil), s.Reached...),
				Style:   chart.Style{StrokeColor: colorReached, StrokeWidth: 1},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch, nil
}

// RenderPNG writes the chart for s to w as PNG.
func RenderPNG(s *model.ChartSeries, w io.Writer) error {
	ch, err := Build(s)
	if err != nil {
		return err
	}
	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WritePNG renders the chart for s to the file at path.
func WritePNG(s *model.ChartSeries, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderPNG(s, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
