package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatHourly renders the hourly estimate the way a plain number prints:
// shortest representation, no thousands separators, no trailing zeros.
// Example: 600 → "600", 562.5 → "562.5". NaN and ±Inf render as "0".
func FormatHourly(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == 0 {
		// avoid "-0"
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTimestamp formats t as "YYYY-M-D H:M:S" with no zero padding,
// e.g. 2026-3-7 9:05:02 renders as "2026-3-7 9:5:2".
func FormatTimestamp(t time.Time) string {
	return fmt.Sprintf("%d-%d-%d %d:%d:%d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// FormatNumber formats an integer with locale-style comma separators.
// Example: 12345678 → "12,345,678".
// Uses strconv.FormatInt directly to avoid abs64 overflow for math.MinInt64.
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	if n < 0 {
		// s starts with "-"; strip it, insert commas, restore sign.
		return "-" + insertCommas(s[1:])
	}
	return insertCommas(s)
}

// FormatCount formats a numeric counter string with comma separators.
// Non-numeric input is returned unchanged.
func FormatCount(s string) string {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return s
	}
	return FormatNumber(n)
}

// insertCommas inserts comma separators into a digit string every 3 digits from the right.
func insertCommas(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var buf strings.Builder
	lead := n % 3
	if lead > 0 {
		buf.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(s[i : i+3])
	}
	return buf.String()
}
