package orion

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// PhaseDurations holds the time spent in each phase of a frame.
type PhaseDurations struct {
	Total time.Duration

	Update  time.Duration
	Render  time.Duration
	Present time.Duration
}

// FrameTimings records how long the phases of the last frames took.
type FrameTimings struct {
	frameCount int
	frames     [60 * 2]PhaseDurations

	timeStartFrame   time.Time
	timeStartUpdate  time.Time
	timeStartRender  time.Time
	timeStartPresent time.Time

	mem runtime.MemStats
}

func (d *FrameTimings) StartFrame() {
	d.timeStartFrame = time.Now()
}

func (d *FrameTimings) StartUpdate() {
	d.timeStartUpdate = time.Now()
}

func (d *FrameTimings) StartRender() {
	d.timeStartRender = time.Now()
}

func (d *FrameTimings) StartPresent() {
	d.timeStartPresent = time.Now()
}

func (d *FrameTimings) EndFrame() {
	now := time.Now()

	d.frames[d.frameCount%len(d.frames)] = PhaseDurations{
		Total:   now.Sub(d.timeStartFrame),
		Update:  d.timeStartRender.Sub(d.timeStartUpdate),
		Render:  d.timeStartPresent.Sub(d.timeStartRender),
		Present: now.Sub(d.timeStartPresent),
	}

	d.frameCount += 1
}

// Frames returns the number of recorded frames.
func (d *FrameTimings) Frames() int {
	return d.frameCount
}

// Average returns the average phase durations over the recorded frames.
func (d *FrameTimings) Average() PhaseDurations {
	n := min(d.frameCount, len(d.frames))
	if n == 0 {
		return PhaseDurations{}
	}

	var sum PhaseDurations
	for _, f := range d.frames[:n] {
		sum.Total += f.Total
		sum.Update += f.Update
		sum.Render += f.Render
		sum.Present += f.Present
	}

	count := time.Duration(n)

	return PhaseDurations{
		Total:   sum.Total / count,
		Update:  sum.Update / count,
		Render:  sum.Render / count,
		Present: sum.Present / count,
	}
}

// Log writes the averages and memory statistics at debug level.
func (d *FrameTimings) Log(fps float64) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	runtime.ReadMemStats(&d.mem)

	avg := d.Average()

	slog.Debug("Frame timings",
		slog.Float64("fps", fps),
		slog.Int("frames", d.frameCount),
		slog.Duration("total", avg.Total),
		slog.Duration("update", avg.Update),
		slog.Duration("render", avg.Render),
		slog.Duration("present", avg.Present),
		slog.Uint64("heapObjects", d.mem.HeapObjects),
		slog.Uint64("gcCycles", uint64(d.mem.NumGC)),
	)
}
