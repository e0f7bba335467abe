package orion

import (
	"bytes"
	"testing"
	"time"

	"github.com/oliverbestmann/cube/glimpse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testLoop struct {
	*Loop

	app     *App
	window  *glimpse.HeadlessWindow
	surface *NullSurface
	compute *NullCompute
	log     *CallLog
}

func newTestLoop(t *testing.T, width, height uint32) testLoop {
	compute, composite, log := NewNullStages()

	app := NewApp(compute, composite, 0, AppOptions{
		Clock: &ManualClock{Step: time.Second / 60},
	})

	window := glimpse.NewHeadlessWindow(width, height)
	surface := &NullSurface{}

	loop, err := NewLoop(LoopOptions{
		Window:  window,
		Surface: surface,
		App:     app,
		Title:   "Cube",
	})
	require.NoError(t, err)

	return testLoop{
		Loop:    loop,
		app:     app,
		window:  window,
		surface: surface,
		compute: compute,
		log:     log,
	}
}

func (l testLoop) step(t *testing.T) LoopState {
	state, err := l.Step()
	require.NoError(t, err)
	return state
}

func TestLoopRendersFrames(t *testing.T) {
	l := newTestLoop(t, 320, 240)

	for range 3 {
		require.Equal(t, StateRunning, l.step(t))
	}

	assert.Equal(t, uint64(3), l.Frames())
	assert.Equal(t, 3, l.log.Count("compute"))
	assert.Equal(t, 3, l.log.Count("composite"))
	assert.Equal(t, 3, l.surface.Presents)
	assert.Equal(t, 1, l.surface.Resizes)
}

func TestLoopSkipsZeroAreaFrames(t *testing.T) {
	l := newTestLoop(t, 320, 240)
	l.step(t)

	pendingTime, pendingFrames := l.app.Stats().Pending()

	l.window.Resize(320, 0)

	for range 5 {
		require.Equal(t, StateRunning, l.step(t))
	}

	l.window.Resize(0, 240)

	for range 5 {
		require.Equal(t, StateRunning, l.step(t))
	}

	assert.Equal(t, 1, l.log.Count("compute"))
	assert.Equal(t, 1, l.surface.Presents)
	assert.Equal(t, 10, l.window.Waits)
	assert.Equal(t, uint64(1), l.app.Stats().Frames())
	assert.Zero(t, l.app.AverageFPS())

	acc, count := l.app.Stats().Pending()
	assert.Equal(t, pendingTime, acc)
	assert.Equal(t, pendingFrames, count)

	// rendering continues once the window is restored
	l.window.Resize(320, 240)
	l.step(t)

	assert.Equal(t, 2, l.log.Count("compute"))
	assert.InDelta(t, 1.0/60.0, l.app.Stats().DeltaTime(), 1e-6)
}

func TestLoopStopsOnClose(t *testing.T) {
	l := newTestLoop(t, 320, 240)
	l.step(t)

	l.window.Send(glimpse.CloseEvent{})
	require.Equal(t, StateStopped, l.step(t))

	// stopped is terminal, nothing is submitted anymore
	l.step(t)
	l.step(t)

	assert.Equal(t, 1, l.log.Count("compute"))
	assert.Equal(t, 1, l.log.Count("composite"))
	assert.False(t, l.app.IsRunning())
}

func TestLoopStopsOnQuitKey(t *testing.T) {
	l := newTestLoop(t, 320, 240)

	l.window.Send(press(glimpse.KeyEscape))
	require.Equal(t, StateStopped, l.step(t))

	assert.Zero(t, l.log.Count("compute"))
	assert.Equal(t, StateStopped, l.State())
}

func TestLoopStopsWhileMinimized(t *testing.T) {
	l := newTestLoop(t, 0, 0)

	l.window.Send(glimpse.CloseEvent{})
	require.Equal(t, StateStopped, l.step(t))
	assert.Zero(t, l.log.Count("compute"))
}

func TestLoopResizesSurface(t *testing.T) {
	l := newTestLoop(t, 320, 240)
	l.step(t)

	l.window.Resize(640, 480)
	l.step(t)

	assert.Equal(t, 2, l.surface.Resizes)
	require.Len(t, l.compute.Images, 2)
	assert.True(t, l.compute.Images[0].Released)
	assert.Equal(t, uint32(640), l.compute.Images[1].Width())

	// a scale change reconfigures the surface even if the size stays
	l.window.Send(glimpse.ScaleEvent{X: 2, Y: 2})
	l.step(t)
	assert.Equal(t, 3, l.surface.Resizes)
}

func TestLoopTogglesFullscreenOnce(t *testing.T) {
	l := newTestLoop(t, 320, 240)

	l.window.Send(
		press(glimpse.KeyF),
		glimpse.KeyEvent{Key: glimpse.KeyF, Action: glimpse.Repeat},
	)

	l.step(t)
	assert.True(t, l.window.Fullscreen())

	l.step(t)
	assert.True(t, l.window.Fullscreen())

	l.window.Send(release(glimpse.KeyF), press(glimpse.KeyF))
	l.step(t)
	assert.False(t, l.window.Fullscreen())
}

func TestLoopUpdatesTitleWithFrameRate(t *testing.T) {
	l := newTestLoop(t, 320, 240)

	for range 61 {
		l.step(t)
	}

	assert.Equal(t, []string{"Cube fps: 0.00", "Cube fps: 60.00"}, l.window.Titles)
}

func TestLoopRecoversFromLostSurface(t *testing.T) {
	l := newTestLoop(t, 320, 240)
	l.step(t)

	l.surface.LoseNext = true
	require.Equal(t, StateRunning, l.step(t))
	assert.Equal(t, 1, l.log.Count("compute"))

	// no phase timings are recorded for a frame that was never acquired
	assert.Equal(t, 1, l.Timings().Frames())

	// the lost iteration still advanced the clock and the camera
	assert.Equal(t, uint64(2), l.app.Stats().Frames())
	assert.Equal(t, uint64(1), l.Frames())

	l.step(t)
	assert.Equal(t, 2, l.surface.Resizes)
	assert.Equal(t, 2, l.log.Count("compute"))
	assert.Equal(t, 2, l.Timings().Frames())

	avg := l.Timings().Average()
	assert.GreaterOrEqual(t, avg.Render, time.Duration(0))
	assert.GreaterOrEqual(t, avg.Present, time.Duration(0))
}

func TestRunStopsAfterMaxFrames(t *testing.T) {
	compute, composite, log := NewNullStages()

	app := NewApp(compute, composite, 0, AppOptions{
		Clock: &ManualClock{Step: time.Second / 60},
	})

	err := Run(LoopOptions{
		Window:    glimpse.NewHeadlessWindow(64, 64),
		Surface:   &NullSurface{},
		App:       app,
		MaxFrames: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, log.Count("compute"))
	assert.True(t, compute.Released)
	assert.True(t, composite.Released)
}

func TestNewLoopRequiresCollaborators(t *testing.T) {
	_, err := NewLoop(LoopOptions{})
	require.Error(t, err)
}

func TestPrintGuide(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintGuide(&buf))

	assert.Contains(t, buf.String(), "WASD: Pan view")
	assert.Contains(t, buf.String(), "Esc: Quit")
}
