package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var forceFallbackAdapter = os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1"

func init() {
	// glfw and the surface must be driven from the main thread
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter. All gpu work of
// the viewer is submitted to the single Queue of the Context.
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	// number of command buffers submitted to the queue
	submissions uint64
}

type ContextOptions struct {
	// Request a low power adapter instead of the fastest one
	LowPower bool
}

func New(sd *wgpu.SurfaceDescriptor, opts ContextOptions) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{}

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	st.Surface = instance.CreateSurface(sd)

	powerPreference := wgpu.PowerPreferenceHighPerformance
	if opts.LowPower {
		powerPreference = wgpu.PowerPreferenceLowPower
	}

	// the adapter must be able to present to our surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
		CompatibleSurface:    st.Surface,
		PowerPreference:      powerPreference,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	st.Device, err = st.Adapter.RequestDevice(nil)
	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	slog.Info("Created webgpu context",
		slog.Bool("fallbackAdapter", forceFallbackAdapter),
		slog.Bool("lowPower", opts.LowPower))

	return st, nil
}

func (d *Context) Release() {
	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}
