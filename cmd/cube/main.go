package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/cube/config"
	"github.com/oliverbestmann/cube/glimpse"
	"github.com/oliverbestmann/cube/glimpse/desktop"
	"github.com/oliverbestmann/cube/orion"
	"github.com/oliverbestmann/cube/pulse"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type flags struct {
	config   string
	log      string
	profile  string
	headless bool
	frames   uint64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Cube failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "cube",
		Short: "Orbit a camera around a ray cast cube",
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(f.log)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}

			if f.profile != "" {
				defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.profile)).Stop()
			}

			if err := orion.PrintGuide(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("print guide: %w", err)
			}

			if f.headless {
				return runHeadless(cfg, f.frames)
			}

			return runDesktop(cfg, f.frames)
		},
	}

	cmd.Flags().StringVar(&f.config, "config", "", "config file, defaults to $XDG_CONFIG_HOME/cube/config.yaml")
	cmd.Flags().StringVarP(&f.log, "log", "l", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&f.profile, "profile", "", "write a cpu profile into this directory")
	cmd.Flags().BoolVar(&f.headless, "headless", false, "run the frame loop without window and gpu")
	cmd.Flags().Uint64Var(&f.frames, "frames", 0, "stop after this many frames, required with --headless")

	return cmd
}

func configureLogging(levelName string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: level})
	slog.SetDefault(slog.New(handler))

	return nil
}

func runDesktop(cfg config.Config, frames uint64) error {
	presentMode, err := pulse.PresentModeOf(cfg.Render.PresentMode)
	if err != nil {
		return err
	}

	window, err := desktop.NewWindow(desktop.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Resizable:  cfg.Window.Resizable,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}

	defer window.Terminate()

	ctx, err := pulse.New(window.SurfaceDescriptor(), pulse.ContextOptions{LowPower: cfg.Render.LowPower})
	if err != nil {
		return fmt.Errorf("create webgpu context: %w", err)
	}

	defer ctx.Release()

	view := pulse.NewView(ctx, presentMode)

	compute, err := pulse.NewCubeCompute(ctx, computeOptions(cfg))
	if err != nil {
		return fmt.Errorf("create compute stage: %w", err)
	}

	composite := pulse.NewPlaceOverFrame(ctx, view.Format())

	app := orion.NewApp(compute, composite, view.PixelFormat(), appOptions(cfg, orion.NewSystemClock()))

	if cfg.Window.StartFullscreen {
		window.SetFullscreen(true)
	}

	return orion.Run(orion.LoopOptions{
		Window:    window,
		Surface:   view,
		App:       app,
		Title:     cfg.Window.Title,
		IdleWait:  cfg.Timing.IdleWait,
		MaxFrames: frames,
	})
}

// runHeadless drives the frame loop with stub stages and a fixed 60 Hz clock.
func runHeadless(cfg config.Config, frames uint64) error {
	if frames == 0 {
		return errors.New("headless mode requires --frames")
	}

	window := glimpse.NewHeadlessWindow(uint32(cfg.Window.Width), uint32(cfg.Window.Height))
	compute, composite, calls := orion.NewNullStages()

	clock := &orion.ManualClock{Step: time.Second / 60}
	app := orion.NewApp(compute, composite, 0, appOptions(cfg, clock))

	err := orion.Run(orion.LoopOptions{
		Window:    window,
		Surface:   &orion.NullSurface{},
		App:       app,
		Title:     cfg.Window.Title,
		IdleWait:  cfg.Timing.IdleWait,
		MaxFrames: frames,
	})

	if err != nil {
		return err
	}

	slog.Info("Headless run finished",
		slog.Int("computed", calls.Count("compute")),
		slog.Int("composited", calls.Count("composite")),
		slog.String("title", window.Title()))

	return nil
}
