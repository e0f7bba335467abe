package orion

import (
	"time"
)

// DefaultAverageWindow is the default time span frames are counted over
// before a new average frame rate is published.
const DefaultAverageWindow = time.Second

// FrameStats measures the time between frames and publishes a smoothed
// frames per second value once per averaging window.
type FrameStats struct {
	clock Clock

	// length of the averaging window
	window time.Duration

	// upper bound for a single delta, zero disables clamping
	maxDelta time.Duration

	lastSample time.Duration

	// delta time of the last tick
	delta time.Duration

	// frames and time accumulated in the current averaging window
	deltaAccumulator time.Duration
	frameCount       uint64

	averageFPS float64
	published  bool

	// total number of ticks
	frames uint64
}

func NewFrameStats(clock Clock, window, maxDelta time.Duration) *FrameStats {
	if window <= 0 {
		window = DefaultAverageWindow
	}

	return &FrameStats{
		clock:      clock,
		window:     window,
		maxDelta:   maxDelta,
		lastSample: clock.Now(),
	}
}

// Tick samples the clock and records one frame. It returns true if a new
// average frame rate was published with this tick.
func (t *FrameStats) Tick() bool {
	now := t.clock.Now()

	dt := now - t.lastSample
	t.lastSample = now

	// a clock going backwards must never produce a negative delta
	dt = max(0, dt)

	// the average counts wall time, only the delta handed to the
	// update is clamped
	t.delta = dt
	if t.maxDelta > 0 {
		t.delta = min(dt, t.maxDelta)
	}

	t.frames += 1

	t.deltaAccumulator += dt
	t.frameCount += 1

	if t.deltaAccumulator < t.window {
		return false
	}

	t.averageFPS = float64(t.frameCount) / t.deltaAccumulator.Seconds()
	t.published = true

	t.deltaAccumulator = 0
	t.frameCount = 0

	return true
}

// Skip resamples the clock without recording a frame. The time between the
// previous sample and now is dropped.
func (t *FrameStats) Skip() {
	t.lastSample = t.clock.Now()
	t.delta = 0
}

// DeltaTime returns the duration of the last frame in seconds.
func (t *FrameStats) DeltaTime() float32 {
	return float32(t.delta.Seconds())
}

func (t *FrameStats) Delta() time.Duration {
	return t.delta
}

// AverageFPS returns the last published average. It is zero until the
// first averaging window closed.
func (t *FrameStats) AverageFPS() float64 {
	return t.averageFPS
}

// Published reports whether any average was published yet.
func (t *FrameStats) Published() bool {
	return t.published
}

// Frames returns the total number of recorded frames.
func (t *FrameStats) Frames() uint64 {
	return t.frames
}

// Pending returns the time and number of frames accumulated in the
// current, not yet closed, averaging window.
func (t *FrameStats) Pending() (time.Duration, uint64) {
	return t.deltaAccumulator, t.frameCount
}
