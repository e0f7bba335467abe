package orion

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oliverbestmann/cube/glimpse"
	"github.com/oliverbestmann/cube/glm"
)

// PixelFormat identifies the texture format of a presentable frame. The
// value is opaque to this package and only passed to the stages.
type PixelFormat uint32

// Submission identifies work submitted to the gpu queue.
type Submission uint64

// Image is the intermediate image the compute stage renders into.
type Image interface {
	Width() uint32
	Height() uint32
	Release()
}

// Frame is the image that will be presented next.
type Frame interface {
	Width() uint32
	Height() uint32
}

// ComputeStage renders the scene for a camera into an intermediate image.
type ComputeStage interface {
	// NewImage allocates an image that can be passed to Compute.
	NewImage(width, height uint32) (Image, error)

	Compute(target Image, camera CameraState) (Submission, error)

	Release()
}

// CompositeStage places an intermediate image over a presentable frame.
// Work it submits must be ordered after previous submissions of the
// ComputeStage reading the same image.
type CompositeStage interface {
	RenderOver(frame Frame, image Image) (Submission, error)

	Release()
}

var ErrEmptyFrame = errors.New("frame has zero area")

type AppOptions struct {
	// Clock to measure frame times with. Defaults to a SystemClock
	Clock Clock

	Camera Camera

	// orbit speed in radians per second while a direction key is held
	PanRate glm.Rad

	// each scroll step divides the camera distance by this factor
	ZoomFactor float32

	// averaging window of the fps counter
	AverageWindow time.Duration

	// upper bound for a single frame delta. Zero disables clamping
	MaxDelta time.Duration

	Bindings        Bindings
	DragSensitivity float32
}

func (opts AppOptions) withDefaults() AppOptions {
	if opts.Clock == nil {
		opts.Clock = NewSystemClock()
	}

	if opts.Camera == (Camera{}) {
		opts.Camera = DefaultCamera()
	}

	if opts.PanRate == 0 {
		opts.PanRate = glm.DegToRad(90.0)
	}

	if opts.ZoomFactor == 0 {
		opts.ZoomFactor = 1.1
	}

	if opts.Bindings.Quit == glimpse.KeyUnknown {
		opts.Bindings = DefaultBindings
	}

	if opts.DragSensitivity == 0 {
		opts.DragSensitivity = DefaultDragSensitivity
	}

	return opts
}

// App orchestrates a single frame: it applies the input of the frame to the
// camera and then runs the compute stage followed by the composite stage.
type App struct {
	compute   ComputeStage
	composite CompositeStage

	// output format of the composite stage
	format PixelFormat

	stats *FrameStats
	input *InputState

	camera     Camera
	panRate    glm.Rad
	zoomFactor float32

	// seconds of simulated time since start
	elapsed float32

	// intermediate image, owned by the app
	image Image

	running          bool
	toggleFullscreen bool

	lastSubmission Submission
}

func NewApp(compute ComputeStage, composite CompositeStage, format PixelFormat, opts AppOptions) *App {
	opts = opts.withDefaults()

	return &App{
		compute:    compute,
		composite:  composite,
		format:     format,
		stats:      NewFrameStats(opts.Clock, opts.AverageWindow, opts.MaxDelta),
		input:      NewInputState(opts.Bindings, opts.DragSensitivity),
		camera:     opts.Camera,
		panRate:    opts.PanRate,
		zoomFactor: opts.ZoomFactor,
		running:    true,
	}
}

// Tick samples the clock for a new frame and returns the frame's delta time
// in seconds. published is true if a new average frame rate is available.
func (a *App) Tick() (deltaTime float32, published bool) {
	published = a.stats.Tick()
	return a.stats.DeltaTime(), published
}

// Skip is called instead of Tick for frames that are not rendered.
func (a *App) Skip() {
	a.stats.Skip()
}

// Update applies the input of the current frame. It must be called before
// ComputeThenRender of the same frame.
func (a *App) Update(deltaTime float32, input *InputState) {
	pan := input.Pan().Scale(deltaTime * float32(a.panRate))
	drag := input.Drag()

	a.camera.Orbit(glm.Rad(pan[0]+drag[0]), glm.Rad(pan[1]+drag[1]))
	a.camera.Zoom(input.Zoom(), a.zoomFactor)

	if input.ToggleFullscreen() {
		a.toggleFullscreen = true
	}

	if input.ConsumeQuit() {
		slog.Info("Quit requested")
		a.running = false
	}

	a.elapsed += deltaTime
}

// ComputeThenRender renders the current camera into the intermediate image
// and places the image over the given frame.
func (a *App) ComputeThenRender(frame Frame, frameID uint64) error {
	width, height := frame.Width(), frame.Height()
	if width == 0 || height == 0 {
		return ErrEmptyFrame
	}

	if err := a.ensureImage(width, height); err != nil {
		return fmt.Errorf("frame %d: %w", frameID, err)
	}

	camera := a.camera.State(float32(width)/float32(height), a.elapsed)

	if _, err := a.compute.Compute(a.image, camera); err != nil {
		return fmt.Errorf("compute frame %d: %w", frameID, err)
	}

	submission, err := a.composite.RenderOver(frame, a.image)
	if err != nil {
		return fmt.Errorf("composite frame %d: %w", frameID, err)
	}

	a.lastSubmission = submission

	return nil
}

func (a *App) ensureImage(width, height uint32) error {
	if a.image != nil && a.image.Width() == width && a.image.Height() == height {
		return nil
	}

	if a.image != nil {
		a.image.Release()
		a.image = nil
	}

	slog.Info("Allocate intermediate image",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)))

	image, err := a.compute.NewImage(width, height)
	if err != nil {
		return fmt.Errorf("allocate intermediate image: %w", err)
	}

	a.image = image

	return nil
}

func (a *App) IsRunning() bool {
	return a.running
}

func (a *App) AverageFPS() float64 {
	return a.stats.AverageFPS()
}

func (a *App) Stats() *FrameStats {
	return a.stats
}

// Input returns the input state owned by the app.
func (a *App) Input() *InputState {
	return a.input
}

func (a *App) Camera() Camera {
	return a.camera
}

func (a *App) Format() PixelFormat {
	return a.format
}

// ConsumeFullscreenToggle returns true once for every requested toggle.
func (a *App) ConsumeFullscreenToggle() bool {
	toggle := a.toggleFullscreen
	a.toggleFullscreen = false
	return toggle
}

// LastSubmission returns the submission of the last composited frame.
func (a *App) LastSubmission() Submission {
	return a.lastSubmission
}

// Release frees the intermediate image and the stages.
func (a *App) Release() {
	if a.image != nil {
		a.image.Release()
		a.image = nil
	}

	a.compute.Release()
	a.composite.Release()
}
