package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateBuffer_PushAndLen(t *testing.T) {
	b := NewRateBuffer()
	assert.Equal(t, 0, b.Len())

	b.Push(3)
	b.Push(NoDelta)
	b.Push(7)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []float64{3, -1, 7}, b.Values())
}

func TestRateBuffer_EmptyAverageIsZero(t *testing.T) {
	b := NewRateBuffer()
	assert.Equal(t, 0.0, b.Average())
	assert.Equal(t, 0.0, b.HourlyEstimate())
}

func TestRateBuffer_SentinelsCountInDenominator(t *testing.T) {
	b := NewRateBuffer()
	for _, v := range []float64{-1, 4, -1, 6} {
		b.Push(v)
	}
	assert.InDelta(t, 2.5, b.Average(), 1e-9)
	assert.InDelta(t, 600.0, b.HourlyEstimate(), 1e-9)
}

func TestRateBuffer_OnlySentinels(t *testing.T) {
	b := NewRateBuffer()
	b.Push(NoDelta)
	b.Push(NoDelta)
	assert.Equal(t, 0.0, b.Average())
}

func TestRateBuffer_NegativeDeltasExcludedFromSum(t *testing.T) {
	b := NewRateBuffer()
	b.Push(10)
	b.Push(-5)
	// -5 is dropped from the sum but still counted.
	assert.InDelta(t, 5.0, b.Average(), 1e-9)
}

func TestRateBuffer_ZeroDeltaCounts(t *testing.T) {
	b := NewRateBuffer()
	b.Push(0)
	b.Push(8)
	assert.InDelta(t, 4.0, b.Average(), 1e-9)
}

func TestRateBuffer_NeverTrimmed(t *testing.T) {
	b := NewRateBuffer()
	for i := 0; i < 1000; i++ {
		b.Push(float64(i % 3))
	}
	require.Equal(t, 1000, b.Len())
	assert.Equal(t, 0.0, b.Values()[0])
}

func TestRateBuffer_ValuesIsCopy(t *testing.T) {
	b := NewRateBuffer()
	b.Push(1)
	vals := b.Values()
	vals[0] = 99
	assert.Equal(t, []float64{1}, b.Values())
}

func TestRateBuffer_HourlyFollowsPollInterval(t *testing.T) {
	cases := []struct {
		interval time.Duration
		want     float64
	}{
		{15 * time.Second, 2400},
		{30 * time.Second, 1200},
		{time.Minute, 600},
		{0, 2400}, // falls back to the default cadence
	}
	for _, tc := range cases {
		b := NewRateBufferEvery(tc.interval)
		b.Push(10)
		assert.InDelta(t, tc.want, b.HourlyEstimate(), 1e-9, "interval=%v", tc.interval)
	}
}
