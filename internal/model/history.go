package model

import "time"

// NoDelta is pushed into a RateBuffer when a poll produced no usable delta.
const NoDelta = -1

// DefaultPollInterval is the log poll cadence the hourly projection assumes
// unless told otherwise. One hour is 4*60 polls.
const DefaultPollInterval = 15 * time.Second

// RateBuffer records one reached-value delta per successful log poll.
// It grows for the lifetime of the process and is never trimmed.
type RateBuffer struct {
	buf          []float64
	pollsPerHour float64
}

// NewRateBuffer creates an empty RateBuffer for the default 15s cadence.
func NewRateBuffer() *RateBuffer {
	return NewRateBufferEvery(DefaultPollInterval)
}

// NewRateBufferEvery creates an empty RateBuffer whose hourly estimate
// assumes one entry per interval. A non-positive interval falls back to
// DefaultPollInterval.
func NewRateBufferEvery(interval time.Duration) *RateBuffer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &RateBuffer{pollsPerHour: float64(time.Hour) / float64(interval)}
}

// Push appends a delta, or NoDelta when none was available.
func (b *RateBuffer) Push(v float64) {
	b.buf = append(b.buf, v)
}

// Len returns the number of recorded polls, sentinels included.
func (b *RateBuffer) Len() int {
	return len(b.buf)
}

// Values returns a copy of the recorded entries in push order.
func (b *RateBuffer) Values() []float64 {
	out := make([]float64, len(b.buf))
	copy(out, b.buf)
	return out
}

// Average sums the entries greater than NoDelta and divides by the total
// number of entries, sentinels included. An empty buffer averages to 0.
func (b *RateBuffer) Average() float64 {
	if len(b.buf) == 0 {
		return 0
	}
	var sum float64
	for _, v := range b.buf {
		if v > NoDelta {
			sum += v
		}
	}
	return sum / float64(len(b.buf))
}

// HourlyEstimate projects Average to a per-hour value count.
func (b *RateBuffer) HourlyEstimate() float64 {
	return b.Average() * b.pollsPerHour
}
