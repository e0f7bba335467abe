package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/oliverbestmann/cube/config"
	"github.com/oliverbestmann/cube/glm"
	"github.com/oliverbestmann/cube/orion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.FovDeg = 90
	cfg.Camera.MaxDistance = 10

	clock := &orion.ManualClock{}
	opts := appOptions(cfg, clock)

	assert.Same(t, clock, opts.Clock)
	assert.InDelta(t, float32(glm.HalfPi), float32(opts.Camera.FovY), 1e-6)
	assert.Equal(t, float32(10), opts.Camera.MaxDistance)
	assert.Equal(t, cfg.Timing.MaxDelta, opts.MaxDelta)
}

func TestComputeOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Texture.Seed = 7

	opts := computeOptions(cfg)
	assert.Equal(t, uint32(8), opts.WorkgroupSize)
	assert.Equal(t, 7, opts.Noise.Seed)
	assert.Equal(t, cfg.Texture.Size, opts.Noise.Size)
}

func TestHeadlessRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window:\n  title: Test\n"), 0644))

	var out bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "--headless", "--frames", "10", "--log", "warn"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Usage:")
}

func TestHeadlessRequiresFrames(t *testing.T) {
	err := runHeadless(config.Default(), 0)
	require.Error(t, err)
}

func TestRejectsUnknownLogLevel(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log", "loud", "--headless", "--frames", "1"})

	require.Error(t, cmd.Execute())
}

func TestHeadlessRunWithShortAverageWindow(t *testing.T) {
	cfg := config.Default()
	cfg.Timing.AverageWindow = 100 * time.Millisecond

	require.NoError(t, runHeadless(cfg, 30))
}
