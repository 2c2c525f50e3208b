// Command gbcore is the minimal CLI named in spec.md §6: it loads a ROM
// and drives the core headlessly, optionally with the debug-mode idle-loop
// guard turned on. Rendering, input, and an interactive inspector are
// explicitly out of the core's scope, so this is a thin runner, not an
// emulator front end.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/ochs-dev/gbcore/internal/bus"
	"github.com/ochs-dev/gbcore/internal/cpu"
)

// idleLoopThreshold is the consecutive-same-PC count that trips
// IdleLoopError in --debug mode, per spec.md §7.
const idleLoopThreshold = 10

// cyclesPerRun is one RunForCycles batch; the CLI loops indefinitely,
// calling it over and over until the core errors out. Real-time pacing is
// explicitly the host's job, not the core's (spec.md §5) — this CLI does
// not attempt to sync to wall clock.
const cyclesPerRun = 70224 // one DMG frame's worth of machine cycles

func main() {
	app := cli.NewApp()
	app.Name = "gbcore"
	app.Usage = "gbcore --rom-file <path> [--debug]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom-file",
			Usage: "path to the ROM image to load",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging and idle-loop detection",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("emulation stopped", "reason", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom-file")
	if romPath == "" {
		return errors.New("--rom-file is required")
	}

	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	data, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}

	b := bus.New(logger)
	core := cpu.New(b)
	core.LoadProgram(data)
	if c.Bool("debug") {
		core.IdleLoopThreshold = idleLoopThreshold
	}

	logger.Info("loaded ROM", "path", romPath, "size", len(data))

	for {
		if _, err := core.RunForCycles(cyclesPerRun); err != nil {
			state := core.State()
			logger.Error("emulation stopped", "pc", state.PC, "reason", err)
			return err
		}
	}
}
