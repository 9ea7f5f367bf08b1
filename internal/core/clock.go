package core

import "time"

// Clock reports frame timestamps in milliseconds.
type Clock interface {
	Now() float64
}

// WallClock measures real time elapsed since its first reading.
type WallClock struct {
	start time.Time
}

// NewWallClock returns a clock that starts counting on the first Now call.
func NewWallClock() *WallClock {
	return &WallClock{}
}

// Now returns the milliseconds elapsed since the first call.
func (c *WallClock) Now() float64 {
	if c.start.IsZero() {
		c.start = time.Now()
	}
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

// ManualClock advances by a fixed frame step every time it is read, which
// lets headless runs replay a steady ticks-per-second rate.
type ManualClock struct {
	now  float64
	step float64
}

// NewManualClock constructs a ManualClock targeting the given TPS.
func NewManualClock(tps int) *ManualClock {
	if tps <= 0 {
		tps = 60
	}
	return &ManualClock{step: 1000 / float64(tps)}
}

// Now returns the current timestamp and advances by one frame.
func (c *ManualClock) Now() float64 {
	t := c.now
	c.now += c.step
	return t
}

// Step returns the frame duration in milliseconds.
func (c *ManualClock) Step() float64 { return c.step }
