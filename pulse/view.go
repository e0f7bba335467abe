package pulse

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// number of failed acquires in a row that are reported as lost surface
// before the error is passed on to the caller
const maxAcquireFailures = 3

var presentModes = map[string]wgpu.PresentMode{
	"fifo":      wgpu.PresentModeFifo,
	"mailbox":   wgpu.PresentModeMailbox,
	"immediate": wgpu.PresentModeImmediate,
}

// PresentModeOf parses the name of a present mode.
func PresentModeOf(name string) (wgpu.PresentMode, error) {
	mode, ok := presentModes[name]
	if !ok {
		return 0, fmt.Errorf("unknown present mode %q", name)
	}

	return mode, nil
}

// View presents frames to the window surface of a Context.
type View struct {
	*Context

	surfaceConfig *wgpu.SurfaceConfiguration

	acquireFailures int
}

var _ orion.Surface = (*View)(nil)

func NewView(ctx *Context, presentMode wgpu.PresentMode) *View {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)
	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	format := wgpu.TextureFormatBGRA8Unorm
	if len(caps.Formats) > 0 && !slices.Contains(caps.Formats, format) {
		format = caps.Formats[0]
	}

	if !slices.Contains(caps.PresentModes, presentMode) {
		slog.Warn("Present mode not supported, falling back to fifo",
			slog.Any("presentMode", presentMode))

		presentMode = wgpu.PresentModeFifo
	}

	return &View{
		Context: ctx,
		surfaceConfig: &wgpu.SurfaceConfiguration{
			Usage:       wgpu.TextureUsageRenderAttachment,
			Format:      format,
			PresentMode: presentMode,
			AlphaMode:   caps.AlphaModes[0],

			// try to reduce input latency
			DesiredMaximumFrameLatency: 1,
		},
	}
}

// Format returns the texture format of the frames of this view.
func (vs *View) Format() wgpu.TextureFormat {
	return vs.surfaceConfig.Format
}

// PixelFormat returns Format as seen by the frame orchestration.
func (vs *View) PixelFormat() orion.PixelFormat {
	return orion.PixelFormat(vs.surfaceConfig.Format)
}

// Resize configures the surface for a new size.
func (vs *View) Resize(width, height uint32) error {
	if width == 0 || height == 0 {
		return fmt.Errorf("configure surface of size %dx%d", width, height)
	}

	vs.surfaceConfig.Width = width
	vs.surfaceConfig.Height = height
	vs.Surface.Configure(vs.Device, vs.surfaceConfig)

	return nil
}

// AcquireFrame gets the next texture of the surface. A failure is reported
// as orion.ErrSurfaceLost to make the loop reconfigure the surface.
func (vs *View) AcquireFrame() (orion.Frame, error) {
	texture, err := vs.Surface.TryGetCurrentTexture()
	if err != nil {
		vs.acquireFailures++

		if vs.acquireFailures > maxAcquireFailures {
			return nil, fmt.Errorf("get current texture: %w", err)
		}

		slog.Warn("Failed to get surface texture", slog.String("err", err.Error()))
		return nil, errors.Join(orion.ErrSurfaceLost, err)
	}

	vs.acquireFailures = 0

	return &SurfaceFrame{
		texture: texture,
		view:    texture.CreateView(nil),
		format:  vs.surfaceConfig.Format,
	}, nil
}

// Present shows the frame and releases its view.
func (vs *View) Present(frame orion.Frame) {
	surfaceFrame := frame.(*SurfaceFrame)

	vs.Surface.Present()

	// the surface texture itself is owned by the surface once presented
	surfaceFrame.view.Release()
	surfaceFrame.view = nil
}

// SurfaceFrame is a texture of the surface, valid until it is presented.
type SurfaceFrame struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	format  wgpu.TextureFormat
}

func (f *SurfaceFrame) Width() uint32 {
	return f.texture.GetWidth()
}

func (f *SurfaceFrame) Height() uint32 {
	return f.texture.GetHeight()
}

func (f *SurfaceFrame) Format() wgpu.TextureFormat {
	return f.format
}

func (f *SurfaceFrame) View() *wgpu.TextureView {
	return f.view
}
