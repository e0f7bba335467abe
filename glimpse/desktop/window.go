//go:build !js

// Package desktop implements glimpse.Window on top of glfw.
package desktop

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/cube/glimpse"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

type Options struct {
	Width     int
	Height    int
	Title     string
	Resizable bool

	// Fullscreen selects how SetFullscreen(true) behaves
	Fullscreen glimpse.FullscreenPolicy
}

type Window struct {
	win    *glfw.Window
	queue  glimpse.Queue
	policy glimpse.FullscreenPolicy

	fullscreen bool

	// window position and size before entering full-screen
	windowed [4]int

	cursorX, cursorY float32
	hasCursor        bool
	dragging         bool
}

var _ glimpse.Window = (*Window)(nil)

func NewWindow(opts Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))

	window, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	policy := opts.Fullscreen
	if !policy.Valid() {
		policy = glimpse.FullscreenBorderless
	}

	w := &Window{
		win:    window,
		policy: policy,
	}

	w.configureInput()

	return w, nil
}

func (w *Window) PollEvents(dst []glimpse.Event) []glimpse.Event {
	// only ask glfw for new events once the queue was fully drained,
	// otherwise a flood of events could grow the queue without bounds
	if w.queue.Len() == 0 {
		glfw.PollEvents()
	}

	return w.queue.Drain(dst, glimpse.MaxEventsPerPoll)
}

func (w *Window) WaitEvents(timeout time.Duration) {
	glfw.WaitEventsTimeout(timeout.Seconds())
}

func (w *Window) Size() (uint32, uint32) {
	width, height := w.win.GetFramebufferSize()
	return uint32(max(0, width)), uint32(max(0, height))
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

func (w *Window) Fullscreen() bool {
	return w.fullscreen
}

func (w *Window) SetFullscreen(fullscreen bool) {
	if fullscreen == w.fullscreen {
		return
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		slog.Warn("No monitor available for full-screen")
		return
	}

	mode := monitor.GetVideoMode()

	if fullscreen {
		x, y := w.win.GetPos()
		width, height := w.win.GetSize()
		w.windowed = [4]int{x, y, width, height}

		slog.Info("Enter full-screen",
			slog.String("policy", string(w.policy)),
			slog.Int("width", mode.Width),
			slog.Int("height", mode.Height))

		switch w.policy {
		case glimpse.FullscreenExclusive:
			w.win.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)

		default:
			mx, my := monitor.GetPos()
			w.win.SetAttrib(glfw.Decorated, glfw.False)
			w.win.SetPos(mx, my)
			w.win.SetSize(mode.Width, mode.Height)
		}
	} else {
		x, y, width, height := w.windowed[0], w.windowed[1], w.windowed[2], w.windowed[3]

		slog.Info("Leave full-screen", slog.Int("width", width), slog.Int("height", height))

		switch w.policy {
		case glimpse.FullscreenExclusive:
			w.win.SetMonitor(nil, x, y, width, height, glfw.DontCare)

		default:
			w.win.SetAttrib(glfw.Decorated, glfw.True)
			w.win.SetPos(x, y)
			w.win.SetSize(width, height)
		}
	}

	w.fullscreen = fullscreen
}

// SurfaceDescriptor describes the window surface for webgpu.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) Terminate() {
	w.win.Destroy()
	glfw.Terminate()
}

func (w *Window) configureInput() {
	w.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		w.queue.Push(glimpse.KeyEvent{Key: key, Action: actionOf(action)})
	})

	w.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := glimpse.MouseButton(btn)

		if button == glimpse.MouseButtonLeft {
			w.dragging = action != glfw.Release
		}

		w.queue.Push(glimpse.MouseButtonEvent{Button: button, Action: actionOf(action)})
	})

	w.win.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		x, y := float32(xpos), float32(ypos)

		var dx, dy float32
		if w.hasCursor {
			dx, dy = x-w.cursorX, y-w.cursorY
		}

		w.cursorX, w.cursorY = x, y
		w.hasCursor = true

		w.queue.Push(glimpse.CursorEvent{
			X: x, Y: y,
			DeltaX: dx, DeltaY: dy,
			Dragging: w.dragging,
		})
	})

	w.win.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		w.queue.Push(glimpse.ScrollEvent{OffsetX: float32(xoff), OffsetY: float32(yoff)})
	})

	w.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		w.queue.Push(glimpse.ResizeEvent{Width: uint32(max(0, width)), Height: uint32(max(0, height))})
	})

	w.win.SetContentScaleCallback(func(_win *glfw.Window, x float32, y float32) {
		w.queue.Push(glimpse.ScaleEvent{X: x, Y: y})
	})

	w.win.SetCloseCallback(func(_win *glfw.Window) {
		w.queue.Push(glimpse.CloseEvent{})
	})
}

func actionOf(action glfw.Action) glimpse.Action {
	switch action {
	case glfw.Press:
		return glimpse.Press
	case glfw.Repeat:
		return glimpse.Repeat
	default:
		return glimpse.Release
	}
}

func boolHint(value bool) int {
	if value {
		return glfw.True
	}

	return glfw.False
}
