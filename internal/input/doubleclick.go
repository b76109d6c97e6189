package input

import "time"

// DefaultDoubleClickWindow bounds the gap between the two clicks of a double
// click. A gap of exactly the window is too slow.
const DefaultDoubleClickWindow = 300 * time.Millisecond

// DoubleClick detects two activations of the same key within Window. A
// completed double click resets the detector, so a third quick click starts
// a new pair.
type DoubleClick struct {
	Window time.Duration
	Now    func() time.Time

	lastKey string
	lastAt  time.Time
}

// NewDoubleClick returns a detector using the wall clock.
func NewDoubleClick(window time.Duration) *DoubleClick {
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	return &DoubleClick{Window: window, Now: time.Now}
}

// Activate records a click on key and reports whether it completes a
// double click.
func (c *DoubleClick) Activate(key string) bool {
	now := c.now()
	if c.lastKey == key && !c.lastAt.IsZero() && now.Sub(c.lastAt) < c.Window {
		c.lastKey, c.lastAt = "", time.Time{}
		return true
	}
	c.lastKey, c.lastAt = key, now
	return false
}

func (c *DoubleClick) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}
