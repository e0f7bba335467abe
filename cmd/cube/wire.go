package main

import (
	"github.com/oliverbestmann/cube/config"
	"github.com/oliverbestmann/cube/glm"
	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/cube/procgen"
	"github.com/oliverbestmann/cube/pulse"
)

func appOptions(cfg config.Config, clock orion.Clock) orion.AppOptions {
	camera := orion.DefaultCamera()
	camera.Distance = cfg.Camera.Distance
	camera.MinDistance = cfg.Camera.MinDistance
	camera.MaxDistance = cfg.Camera.MaxDistance
	camera.FovY = glm.DegToRad(cfg.Camera.FovDeg)

	return orion.AppOptions{
		Clock:           clock,
		Camera:          camera,
		PanRate:         glm.DegToRad(cfg.Camera.PanRateDeg),
		ZoomFactor:      cfg.Camera.ZoomFactor,
		AverageWindow:   cfg.Timing.AverageWindow,
		MaxDelta:        cfg.Timing.MaxDelta,
		DragSensitivity: cfg.Camera.DragSensitivity,
	}
}

func computeOptions(cfg config.Config) pulse.CubeComputeOptions {
	return pulse.CubeComputeOptions{
		WorkgroupSize: cfg.Render.WorkgroupSize,
		Noise: procgen.NoiseOptions{
			Size:      cfg.Texture.Size,
			Seed:      cfg.Texture.Seed,
			Frequency: cfg.Texture.Frequency,
			Octaves:   cfg.Texture.Octaves,
			Tint:      cfg.Texture.Tint,
		},
	}
}
