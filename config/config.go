// Package config loads the settings of the viewer from a yaml file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oliverbestmann/cube/glimpse"
	"gopkg.in/yaml.v3"
)

type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`

	// how full-screen is entered, "borderless" or "exclusive"
	Fullscreen glimpse.FullscreenPolicy `yaml:"fullscreen"`

	StartFullscreen bool `yaml:"start_fullscreen"`
}

type Render struct {
	// "fifo", "mailbox" or "immediate"
	PresentMode   string `yaml:"present_mode"`
	WorkgroupSize uint32 `yaml:"workgroup_size"`
	LowPower      bool   `yaml:"low_power"`
}

type Camera struct {
	// orbit speed while a direction key is held
	PanRateDeg float32 `yaml:"pan_rate_deg"`

	ZoomFactor      float32 `yaml:"zoom_factor"`
	DragSensitivity float32 `yaml:"drag_sensitivity"`
	FovDeg          float32 `yaml:"fov_deg"`

	Distance    float32 `yaml:"distance"`
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

type Timing struct {
	AverageWindow time.Duration `yaml:"average_window"`
	MaxDelta      time.Duration `yaml:"max_delta"`
	IdleWait      time.Duration `yaml:"idle_wait"`
}

type Texture struct {
	Size      uint32     `yaml:"size"`
	Seed      int        `yaml:"seed"`
	Frequency float32    `yaml:"frequency"`
	Octaves   int        `yaml:"octaves"`
	Tint      [3]float32 `yaml:"tint,flow"`
}

type Config struct {
	Window  Window  `yaml:"window"`
	Render  Render  `yaml:"render"`
	Camera  Camera  `yaml:"camera"`
	Timing  Timing  `yaml:"timing"`
	Texture Texture `yaml:"texture"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:      "Cube",
			Width:      1024,
			Height:     768,
			Resizable:  true,
			Fullscreen: glimpse.FullscreenBorderless,
		},
		Render: Render{
			PresentMode:   "fifo",
			WorkgroupSize: 8,
		},
		Camera: Camera{
			PanRateDeg:      90,
			ZoomFactor:      1.1,
			DragSensitivity: 1.0 / 200.0,
			FovDeg:          60,
			Distance:        4,
			MinDistance:     1.5,
			MaxDistance:     20,
		},
		Timing: Timing{
			AverageWindow: time.Second,
			MaxDelta:      250 * time.Millisecond,
			IdleWait:      100 * time.Millisecond,
		},
		Texture: Texture{
			Size:      256,
			Seed:      1337,
			Frequency: 4,
			Octaves:   4,
			Tint:      [3]float32{0.95, 0.55, 0.25},
		},
	}
}

// DefaultPath resolves $XDG_CONFIG_HOME/cube/config.yaml or
// ~/.config/cube/config.yaml.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, "cube", "config.yaml")
}

// Load reads the configuration at path on top of the defaults. If path is
// empty, DefaultPath is used and a missing file is not an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	fp, err := os.Open(path)
	switch {
	case !explicit && errors.Is(err, os.ErrNotExist):
		return Default(), nil

	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	defer fp.Close()

	return Parse(fp)
}

// Parse decodes yaml from r on top of the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func Save(path string, cfg Config) error {
	buf, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	return os.WriteFile(path, buf, 0644)
}

func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window size %dx%d must be positive", c.Window.Width, c.Window.Height)

	check(c.Window.Fullscreen.Valid(),
		"unknown fullscreen policy %q", c.Window.Fullscreen)

	switch c.Render.PresentMode {
	case "fifo", "mailbox", "immediate":
	default:
		check(false, "unknown present mode %q", c.Render.PresentMode)
	}

	check(c.Render.WorkgroupSize > 0 && c.Render.WorkgroupSize <= 16,
		"workgroup size %d not in [1, 16]", c.Render.WorkgroupSize)

	check(c.Camera.ZoomFactor > 1, "zoom factor %v must be greater than 1", c.Camera.ZoomFactor)
	check(c.Camera.FovDeg > 0 && c.Camera.FovDeg < 180, "fov %v not in (0, 180)", c.Camera.FovDeg)

	check(c.Camera.MinDistance > 0 && c.Camera.MinDistance <= c.Camera.MaxDistance,
		"distance range [%v, %v] is empty", c.Camera.MinDistance, c.Camera.MaxDistance)

	check(c.Camera.Distance >= c.Camera.MinDistance && c.Camera.Distance <= c.Camera.MaxDistance,
		"distance %v not in [%v, %v]", c.Camera.Distance, c.Camera.MinDistance, c.Camera.MaxDistance)

	check(c.Timing.AverageWindow > 0, "average window must be positive")
	check(c.Timing.MaxDelta >= 0, "max delta must not be negative")
	check(c.Timing.IdleWait > 0, "idle wait must be positive")

	check(c.Texture.Size > 0, "texture size must be positive")

	return errors.Join(errs...)
}
