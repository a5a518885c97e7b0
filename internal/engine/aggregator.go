package engine

import (
	"strconv"
	"time"

	"github.com/dm/valuemon/internal/client"
	"github.com/dm/valuemon/internal/model"
)

// Logger state messages shown above the chart.
const (
	MsgNotLogging = "Currently the Monitor is not logging. Is handleconfigaction deployed ?"
	MsgLogging    = "Currently the Monitor is logging."
)

// Aggregator owns the chart series, label cursor and rate buffer for the
// lifetime of the dashboard. It is not safe for concurrent use; the TUI calls
// it from its update loop only.
type Aggregator struct {
	series *model.ChartSeries
	cursor *model.LabelCursor
	rates  *model.RateBuffer
}

// NewAggregator returns an Aggregator with empty series, the cursor at 1 and
// an empty rate buffer projected for the default 15s log cadence.
func NewAggregator() *Aggregator {
	return NewAggregatorEvery(model.DefaultPollInterval)
}

// NewAggregatorEvery is NewAggregator for a log poller that runs every
// interval, so the hourly estimate scales with the real cadence.
func NewAggregatorEvery(interval time.Duration) *Aggregator {
	return &Aggregator{
		series: model.NewChartSeries(),
		cursor: model.NewLabelCursor(),
		rates:  model.NewRateBufferEvery(interval),
	}
}

// Series returns the live chart series. Callers must not retain it across
// Apply calls; use Clone for that.
func (a *Aggregator) Series() *model.ChartSeries { return a.series }

// Rates returns the rolling rate buffer.
func (a *Aggregator) Rates() *model.RateBuffer { return a.rates }

// Apply rebuilds the series from batch, records one rate entry and returns
// the values to display. It is called once per scheduled log poll.
func (a *Aggregator) Apply(batch *client.LogBatch) model.LogSummary {
	return a.apply(batch, true)
}

// Refresh is Apply for an unscheduled poll: the series and counters are
// rebuilt but the rate buffer is left alone, keeping one entry per interval.
func (a *Aggregator) Refresh(batch *client.LogBatch) model.LogSummary {
	return a.apply(batch, false)
}

func (a *Aggregator) apply(batch *client.LogBatch, recordRate bool) model.LogSummary {
	var logs []client.LogRecord
	var state client.LogState
	if batch != nil {
		logs = batch.LatestLogs
		state = batch.LogState
	}

	a.series.Reset()

	sum := model.LogSummary{Points: len(logs)}
	if state == client.LogStateNotLogging {
		sum.LoggerState = MsgNotLogging
	} else {
		sum.LoggerState = MsgLogging
		sum.Logging = true
	}

	a.cursor.Wrap()
	for _, rec := range logs {
		a.series.Append(a.cursor.Next(), float64(rec.AimedValues), float64(rec.ReachedValues))
	}

	rate := float64(model.NoDelta)
	switch n := len(logs); {
	case n > 1:
		last, prev := logs[n-1], logs[n-2]
		reachedDelta := last.ReachedValues - prev.ReachedValues
		sum.ReachedCount = strconv.Itoa(reachedDelta)
		sum.AimedCount = strconv.Itoa(last.AimedValues - prev.AimedValues)
		sum.ActionCount = strconv.Itoa(last.ActionCount)
		rate = float64(reachedDelta)
	case n == 1:
		only := logs[0]
		sum.ReachedCount = strconv.Itoa(only.ReachedValues)
		sum.AimedCount = strconv.Itoa(only.AimedValues)
		sum.ActionCount = strconv.Itoa(only.ActionCount)
	default:
		sum.ReachedCount = "0"
		sum.AimedCount = "0"
		sum.ActionCount = "0"
	}
	if recordRate {
		a.rates.Push(rate)
	}

	sum.Hourly = a.rates.HourlyEstimate()
	return sum
}
