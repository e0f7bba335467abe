package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/cube/glimpse"
)

//go:generate go tool stringer -type=LoopState -trimprefix=State

type LoopState int

const (
	StateRunning LoopState = iota

	// StateStopped is terminal
	StateStopped
)

// ErrSurfaceLost is returned by Surface.AcquireFrame if the surface needs to
// be recreated before a frame can be acquired again.
var ErrSurfaceLost = errors.New("surface lost")

// Surface presents frames to a window.
type Surface interface {
	// Resize recreates the swap resources for a new window size.
	Resize(width, height uint32) error

	// AcquireFrame returns the frame to render into next.
	AcquireFrame() (Frame, error)

	// Present displays a frame returned by AcquireFrame.
	Present(frame Frame)
}

type LoopOptions struct {
	Window  glimpse.Window
	Surface Surface
	App     *App

	// Title is shown in front of the frame rate in the window title
	Title string

	// IdleWait is the longest time to block waiting for events while
	// the window is minimized
	IdleWait time.Duration

	// MaxFrames stops the loop after this many rendered frames. Zero
	// runs until the window is closed
	MaxFrames uint64
}

// Loop drives the App: it feeds window events into the input state, skips
// frames while the window has no area and otherwise runs update, compute and
// composite for every iteration.
type Loop struct {
	window  glimpse.Window
	surface Surface
	app     *App

	titlePrefix string
	idleWait    time.Duration
	maxFrames   uint64

	state LoopState

	events []glimpse.Event

	// size the surface was last configured with
	surfaceWidth  uint32
	surfaceHeight uint32
	surfaceDirty  bool

	frameID uint64
	title   string

	timings FrameTimings
}

func NewLoop(opts LoopOptions) (*Loop, error) {
	if opts.Window == nil || opts.Surface == nil || opts.App == nil {
		return nil, errors.New("window, surface and app must not be nil")
	}

	if opts.Title == "" {
		opts.Title = "Cube"
	}

	if opts.IdleWait <= 0 {
		opts.IdleWait = 100 * time.Millisecond
	}

	return &Loop{
		window:       opts.Window,
		surface:      opts.Surface,
		app:          opts.App,
		titlePrefix:  opts.Title,
		idleWait:     opts.IdleWait,
		maxFrames:    opts.MaxFrames,
		state:        StateRunning,
		surfaceDirty: true,
	}, nil
}

// Run runs a new Loop until it stops and releases the app afterwards.
func Run(opts LoopOptions) error {
	loop, err := NewLoop(opts)
	if err != nil {
		return err
	}

	defer opts.App.Release()

	return loop.Run()
}

// Run iterates until the loop reaches StateStopped.
func (l *Loop) Run() error {
	for l.state == StateRunning {
		if _, err := l.Step(); err != nil {
			l.stop("error")
			return err
		}
	}

	return nil
}

func (l *Loop) State() LoopState {
	return l.state
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() uint64 {
	return l.frameID
}

func (l *Loop) Timings() *FrameTimings {
	return &l.timings
}

// Step runs a single iteration of the loop.
func (l *Loop) Step() (LoopState, error) {
	if l.state == StateStopped {
		return l.state, nil
	}

	l.timings.StartFrame()

	input := l.app.Input()

	// drain everything that is queued right now, then continue with the frame
	l.events = l.window.PollEvents(l.events[:0])
	for _, ev := range l.events {
		input.Ingest(ev)

		switch ev.(type) {
		case glimpse.ResizeEvent, glimpse.ScaleEvent:
			l.surfaceDirty = true
		}
	}

	width, height := l.window.Size()
	if width == 0 || height == 0 {
		if input.QuitRequested() {
			l.stop("quit while minimized")
			return l.state, nil
		}

		// minimized: nothing to render, wait for the window to come back
		l.app.Skip()
		l.window.WaitEvents(l.idleWait)
		return l.state, nil
	}

	if l.surfaceDirty || width != l.surfaceWidth || height != l.surfaceHeight {
		if err := l.resize(width, height); err != nil {
			return l.state, err
		}
	}

	l.timings.StartUpdate()

	deltaTime, published := l.app.Tick()
	l.app.Update(deltaTime, input)

	if !l.app.IsRunning() {
		l.stop("quit")
		return l.state, nil
	}

	if l.app.ConsumeFullscreenToggle() {
		l.window.SetFullscreen(!l.window.Fullscreen())
		l.surfaceDirty = true
	}

	l.timings.StartRender()

	presented, err := l.render()
	if err != nil {
		return l.state, err
	}

	input.Reset()

	if presented {
		l.timings.EndFrame()
	}

	if published {
		l.timings.Log(l.app.AverageFPS())
	}

	l.updateTitle()

	if l.maxFrames > 0 && l.frameID >= l.maxFrames {
		l.stop("frame limit reached")
	}

	return l.state, nil
}

// render reports whether a frame was presented.
func (l *Loop) render() (bool, error) {
	frame, err := l.surface.AcquireFrame()
	switch {
	case errors.Is(err, ErrSurfaceLost):
		// recreate the surface and try again with the next iteration
		slog.Debug("Surface lost, skipping frame", slog.Uint64("frame", l.frameID))
		l.surfaceDirty = true
		return false, nil

	case err != nil:
		return false, fmt.Errorf("acquire frame: %w", err)
	}

	l.frameID += 1

	if err := l.app.ComputeThenRender(frame, l.frameID); err != nil {
		return false, err
	}

	l.timings.StartPresent()
	l.surface.Present(frame)

	return true, nil
}

func (l *Loop) resize(width, height uint32) error {
	slog.Debug("Resize surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	if err := l.surface.Resize(width, height); err != nil {
		return fmt.Errorf("resize surface: %w", err)
	}

	l.surfaceWidth = width
	l.surfaceHeight = height
	l.surfaceDirty = false

	return nil
}

func (l *Loop) updateTitle() {
	title := fmt.Sprintf("%s fps: %.2f", l.titlePrefix, l.app.AverageFPS())
	if title == l.title {
		return
	}

	l.title = title
	l.window.SetTitle(title)
}

func (l *Loop) stop(reason string) {
	if l.state == StateStopped {
		return
	}

	slog.Info("Stop frame loop",
		slog.String("reason", reason),
		slog.Uint64("frames", l.frameID))

	l.state = StateStopped
}
