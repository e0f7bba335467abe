package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameStatsConvergesToFrameRate(t *testing.T) {
	clock := &ManualClock{Step: time.Second / 60}
	stats := NewFrameStats(clock, time.Second, 0)

	var published int
	for range 61 {
		if stats.Tick() {
			published++
		}
	}

	require.Equal(t, 1, published)
	assert.InDelta(t, 60.0, stats.AverageFPS(), 0.01)
	assert.InDelta(t, 1.0/60.0, stats.DeltaTime(), 1e-6)

	// the window restarts after publishing
	acc, count := stats.Pending()
	assert.Zero(t, acc)
	assert.Zero(t, count)
}

func TestFrameStatsNotPublishedBeforeWindowCloses(t *testing.T) {
	clock := &ManualClock{Step: 10 * time.Millisecond}
	stats := NewFrameStats(clock, time.Second, 0)

	for range 50 {
		require.False(t, stats.Tick())
	}

	assert.False(t, stats.Published())
	assert.Zero(t, stats.AverageFPS())

	acc, count := stats.Pending()
	assert.Equal(t, 500*time.Millisecond, acc)
	assert.Equal(t, uint64(50), count)
}

func TestFrameStatsClockGoingBackwards(t *testing.T) {
	clock := &ManualClock{}
	clock.Set(time.Second)

	stats := NewFrameStats(clock, time.Second, 0)

	clock.Set(500 * time.Millisecond)
	stats.Tick()

	assert.Zero(t, stats.DeltaTime())
}

func TestFrameStatsClampsDelta(t *testing.T) {
	clock := &ManualClock{}
	stats := NewFrameStats(clock, time.Second, 100*time.Millisecond)

	clock.Advance(3 * time.Second)
	stats.Tick()

	assert.Equal(t, 100*time.Millisecond, stats.Delta())
}

func TestFrameStatsSkipDropsElapsedTime(t *testing.T) {
	clock := &ManualClock{}
	stats := NewFrameStats(clock, time.Second, 0)

	clock.Advance(5 * time.Second)
	stats.Skip()

	clock.Advance(20 * time.Millisecond)
	stats.Tick()

	assert.Equal(t, 20*time.Millisecond, stats.Delta())
	assert.Equal(t, uint64(1), stats.Frames())
}

func TestFrameStatsAverageUsesUnclampedTime(t *testing.T) {
	clock := &ManualClock{Step: 500 * time.Millisecond}
	stats := NewFrameStats(clock, time.Second, 250*time.Millisecond)

	require.False(t, stats.Tick())
	require.True(t, stats.Tick())

	assert.Equal(t, 250*time.Millisecond, stats.Delta())
	assert.InDelta(t, 2.0, stats.AverageFPS(), 1e-9)
}

func TestFrameStatsCountsZeroLengthFrames(t *testing.T) {
	clock := &ManualClock{Step: 0}
	stats := NewFrameStats(clock, time.Second, 0)

	for range 10 {
		require.False(t, stats.Tick())
	}

	acc, count := stats.Pending()
	assert.Zero(t, acc)
	assert.Equal(t, uint64(10), count)

	assert.False(t, stats.Published())
	assert.Zero(t, stats.AverageFPS())
	assert.Zero(t, stats.DeltaTime())
}
