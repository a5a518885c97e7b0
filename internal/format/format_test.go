package format

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHourly(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "0"},
		{"negative_zero", math.Copysign(0, -1), "0"},
		{"integer", 600, "600"},
		{"half", 562.5, "562.5"},
		{"large", 1234567, "1234567"},
		{"fraction", 80.125, "80.125"},
		{"nan", math.NaN(), "0"},
		{"inf", math.Inf(1), "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatHourly(tc.input))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"unpadded", time.Date(2026, time.March, 7, 9, 5, 2, 0, time.UTC), "2026-3-7 9:5:2"},
		{"two_digit", time.Date(2026, time.December, 31, 23, 59, 58, 0, time.UTC), "2026-12-31 23:59:58"},
		{"midnight", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "2026-1-1 0:0:0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTimestamp(tc.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{"zero", 0, "0"},
		{"small", 999, "999"},
		{"thousand", 1000, "1,000"},
		{"million", 1234567, "1,234,567"},
		{"negative", -12345, "-12,345"},
		{"min_int64", math.MinInt64, "-9,223,372,036,854,775,808"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatNumber(tc.input))
		})
	}
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "12,000", FormatCount("12000"))
	assert.Equal(t, "-4", FormatCount("-4"))
	assert.Equal(t, "", FormatCount(""))
	assert.Equal(t, "n/a", FormatCount("n/a"))
}
