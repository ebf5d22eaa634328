package app

import "time"

// clickTracker recognizes two presses on the same cell within interval.
type clickTracker struct {
	interval time.Duration
	lastAt   time.Time
	lastX    int
	lastY    int
	armed    bool
}

func newClickTracker(interval time.Duration) *clickTracker {
	return &clickTracker{interval: interval}
}

// Press records a press and reports whether it completes a double click.
// A completed double click disarms the tracker so a third press starts over.
func (c *clickTracker) Press(x, y int, at time.Time) bool {
	if c.armed && x == c.lastX && y == c.lastY && at.Sub(c.lastAt) <= c.interval {
		c.armed = false
		return true
	}
	c.armed = true
	c.lastAt = at
	c.lastX, c.lastY = x, y
	return false
}

func (c *clickTracker) Reset() {
	c.armed = false
}
