package model

// Chart metadata shared by the terminal chart and the PNG exporter.
const (
	ChartTitle      = "Value performance"
	ChartYAxisLabel = "Value Amount"
	SeriesAimed     = "aimedValueCount"
	SeriesReached   = "valueCount"
)

// ChartSeries holds the labelled aimed and reached series drawn by the chart.
// The three slices are always the same length.
type ChartSeries struct {
	Labels  []string
	Aimed   []float64
	Reached []float64
}

// NewChartSeries returns an empty series set.
func NewChartSeries() *ChartSeries {
	return &ChartSeries{}
}

// Reset empties all three slices.
func (s *ChartSeries) Reset() {
	s.Labels = s.Labels[:0]
	s.Aimed = s.Aimed[:0]
	s.Reached = s.Reached[:0]
}

// Append adds one labelled point to both series.
func (s *ChartSeries) Append(label string, aimed, reached float64) {
	s.Labels = append(s.Labels, label)
	s.Aimed = append(s.Aimed, aimed)
	s.Reached = append(s.Reached, reached)
}

// Len returns the number of points.
func (s *ChartSeries) Len() int {
	return len(s.Labels)
}

// Max returns the largest value across both series, or 0 when empty.
func (s *ChartSeries) Max() float64 {
	var m float64
	for _, v := range s.Aimed {
		if v > m {
			m = v
		}
	}
	for _, v := range s.Reached {
		if v > m {
			m = v
		}
	}
	return m
}

// Clone returns a deep copy safe to hand to another goroutine.
func (s *ChartSeries) Clone() *ChartSeries {
	return &ChartSeries{
		Labels:  append([]string(nil), s.Labels...),
		Aimed:   append([]float64(nil), s.Aimed...),
		Reached: append([]float64(nil), s.Reached...),
	}
}
