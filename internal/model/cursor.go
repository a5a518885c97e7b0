package model

import "strconv"

// LabelCursor numbers chart points "Value N". Before each batch a cursor
// that has reached 10 is pulled back by 9; within a batch it only increments.
type LabelCursor struct {
	next int
}

// NewLabelCursor returns a cursor starting at 1.
func NewLabelCursor() *LabelCursor {
	return &LabelCursor{next: 1}
}

// Wrap applies the once-per-batch wrap rule.
func (c *LabelCursor) Wrap() {
	if c.next >= 10 {
		c.next -= 9
	}
}

// Next returns the label for the current value and advances the cursor.
func (c *LabelCursor) Next() string {
	label := "Value " + strconv.Itoa(c.next)
	c.next++
	return label
}

// Peek returns the value the next label will carry.
func (c *LabelCursor) Peek() int {
	return c.next
}
