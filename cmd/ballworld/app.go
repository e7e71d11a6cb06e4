package main

import (
	"flag"
	"fmt"
	"io"

	"ballworld/internal/commands"
	"ballworld/internal/engineconfig"
	"ballworld/internal/env"
	"ballworld/internal/logger"
	"ballworld/internal/physics"
	"ballworld/internal/scenario"
	"ballworld/internal/sim"
	"ballworld/internal/sound"
)

// app is what every front end shares: preferences, log, scenario and the driver built from them.
type app struct {
	prefs engineconfig.Prefs
	log   *logger.Logger
	scn   *scenario.Scenario
	sim   *sim.Sim
}

// commonFlags are accepted by every subcommand and override the preferences file.
type commonFlags struct {
	config   *string
	scenario *string
	workers  *int
	fps      *int
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config:   fs.String("config", engineconfig.DefaultPath, "preferences file"),
		scenario: fs.String("scenario", "", "scenario YAML file (default: built-in scene)"),
		workers:  fs.Int("workers", 0, "goroutines computing impacts (0: from preferences)"),
		fps:      fs.Int("fps", 0, "frames per second (0: from preferences)"),
	}
}

// newApp loads .env, preferences and the scenario, then builds the simulation.
func newApp(cf commonFlags) (*app, error) {
	if err := env.Load(".env"); err != nil {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	prefs, err := engineconfig.Load(*cf.config)
	if err != nil {
		return nil, err
	}
	prefs.ApplyEnv()
	if *cf.scenario != "" {
		prefs.Scenario = *cf.scenario
	}
	if *cf.workers > 0 {
		prefs.Workers = *cf.workers
	}
	if *cf.fps > 0 {
		prefs.TargetFPS = *cf.fps
	}

	scn := scenario.Default()
	if prefs.Scenario != "" {
		if scn, err = scenario.Load(prefs.Scenario); err != nil {
			return nil, err
		}
	}

	if prefs.FrameTime > 0 {
		scn.FrameTime = prefs.FrameTime
	}

	world := scn.NewWorld(physics.WithWorkers(prefs.Workers))
	log := logger.New(prefs.LogPath)
	log.Logf("scenario %q: %d bodies in %gx%g, workers %d", scn.Name, world.Len(), scn.Arena.Width, scn.Arena.Height, prefs.Workers)

	return &app{prefs: prefs, log: log, scn: scn, sim: sim.New(world, scn.FrameTime, log)}, nil
}

// enableSound hooks bounce clicks into the simulation when preferences ask for it.
// Audio failure is logged and the run continues silently.
func (a *app) enableSound() *sound.Player {
	player, err := sound.New(a.prefs.Sound)
	if err != nil {
		a.log.Logf("audio disabled: %v", err)
	}
	if player.Enabled() {
		a.sim.OnBounce(player.Bounce)
	}
	return player
}

func registry(out io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	windowFlags := flag.NewFlagSet("window", flag.ExitOnError)
	wcf := addCommonFlags(windowFlags)
	width := windowFlags.Int("width", 800, "window width in pixels")
	height := windowFlags.Int("height", 800, "window height in pixels")
	reg.Register("window", "open a raylib window (default)", windowFlags, func([]string) error {
		a, err := newApp(wcf)
		if err != nil {
			return err
		}
		return runWindow(a, int32(*width), int32(*height))
	})

	tuiFlags := flag.NewFlagSet("tui", flag.ExitOnError)
	tcf := addCommonFlags(tuiFlags)
	reg.Register("tui", "draw the simulation in the terminal", tuiFlags, func([]string) error {
		a, err := newApp(tcf)
		if err != nil {
			return err
		}
		return runTerminal(a)
	})

	headlessFlags := flag.NewFlagSet("headless", flag.ExitOnError)
	hcf := addCommonFlags(headlessFlags)
	frames := headlessFlags.Int("frames", 30, "frames to simulate")
	save := headlessFlags.String("save", "", "write the final state as a scenario YAML file")
	reg.Register("headless", "simulate without a display and print the final state", headlessFlags, func([]string) error {
		a, err := newApp(hcf)
		if err != nil {
			return err
		}
		return runHeadless(out, a, *frames, *save)
	})

	return reg
}
