package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// sanitize strips terminal escape sequences and control characters from
// server-supplied text before it is rendered.
func sanitize(s string) string {
	var sb strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		r := rs[i]
		if r == '\x1b' {
			i = skipEscape(rs, i)
			continue
		}
		if r < 0x20 || r == 0x7f || (r >= 0x80 && r <= 0x9f) {
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// skipEscape returns the index of the last rune of the escape sequence that
// starts at rs[i].
func skipEscape(rs []rune, i int) int {
	if i+1 >= len(rs) {
		return i
	}
	switch rs[i+1] {
	case '[': // CSI: parameters then a final byte in 0x40-0x7e
		j := i + 2
		for j < len(rs) && (rs[j] < 0x40 || rs[j] > 0x7e) {
			j++
		}
		return j
	case ']': // OSC: terminated by BEL or ESC \
		for j := i + 2; j < len(rs); j++ {
			if rs[j] == '\x07' {
				return j
			}
			if rs[j] == '\x1b' && j+1 < len(rs) && rs[j+1] == '\\' {
				return j + 1
			}
		}
		return len(rs) - 1
	default:
		return i + 1
	}
}

// renderedHeight returns the number of terminal rows a rendered block takes.
func renderedHeight(s string) int {
	if s == "" {
		return 0
	}
	return lipgloss.Height(s)
}
