package orion

import "time"

// Clock is a monotonic time source. Now returns the time elapsed since
// an arbitrary, fixed epoch.
type Clock interface {
	Now() time.Duration
}

// SystemClock measures wall time using the monotonic clock of the runtime.
type SystemClock struct {
	epoch time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{epoch: time.Now()}
}

func (c *SystemClock) Now() time.Duration {
	return time.Since(c.epoch)
}

// ManualClock only moves when told to. Use it to drive the frame loop
// with a deterministic sequence of delta times.
type ManualClock struct {
	now time.Duration

	// Step is added to the current time on every call to Now,
	// after the current time was read.
	Step time.Duration
}

func (c *ManualClock) Now() time.Duration {
	now := c.now
	c.now += c.Step
	return now
}

func (c *ManualClock) Advance(d time.Duration) {
	c.now += d
}

// Set moves the clock to an absolute time, even backwards.
func (c *ManualClock) Set(now time.Duration) {
	c.now = now
}
