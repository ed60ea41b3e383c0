package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli"

	"github.com/tiago/go-pocket/pocket"
	"github.com/tiago/go-pocket/pocket/backend/hostaudio"
	"github.com/tiago/go-pocket/pocket/backend/sdl2"
	"github.com/tiago/go-pocket/pocket/backend/terminal"
	"github.com/tiago/go-pocket/pocket/render"
	"github.com/tiago/go-pocket/pocket/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "pocket"
	app.Description = "A cycle-driven Game Boy / Color emulator"
	app.Usage = "pocket [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "bootstrap",
			Usage: "Path to a bootstrap ROM image (optional)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory for frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "terminal",
			Usage: "Render in the terminal instead of a window",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor",
			Value: 2,
		},
		cli.BoolFlag{
			Name:  "mute",
			Usage: "Disable host audio output",
		},
		cli.StringFlag{
			Name:  "wav",
			Usage: "Capture the audio session to a WAV file",
		},
	}
	app.Action = runEmulator

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	cfg := pocket.Config{}
	var err error
	cfg.ROM, err = os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}
	if battery, err := os.ReadFile(batteryPath(romPath)); err == nil {
		cfg.Battery = battery
	}
	if bootPath := c.String("bootstrap"); bootPath != "" {
		cfg.Bootstrap, err = os.ReadFile(bootPath)
		if err != nil {
			return fmt.Errorf("reading bootstrap ROM: %w", err)
		}
	}

	emu, err := pocket.NewWithConfig(cfg)
	if err != nil {
		return err
	}

	saveBattery := func(data []uint8) {
		if err := os.WriteFile(batteryPath(romPath), data, 0644); err != nil {
			slog.Error("Failed to write battery file", "error", err)
		}
	}

	if c.Bool("headless") {
		return runHeadless(c, emu, romPath, saveBattery)
	}

	if !c.Bool("mute") || c.String("wav") != "" {
		player, err := hostaudio.New(emu.APU(), c.String("wav"), c.Bool("mute"))
		if err != nil {
			slog.Warn("Host audio unavailable", "error", err)
		} else {
			defer player.Close()
		}
	}

	if c.Bool("terminal") {
		backend, err := terminal.New(emu)
		if err != nil {
			return err
		}
		err = backend.Run()
		if data := emu.SaveBattery(); len(data) > 0 {
			saveBattery(data)
		}
		return err
	}

	backend, err := sdl2.New(emu, c.Int("scale"))
	if err != nil {
		return err
	}
	return backend.Run(saveBattery)
}

func runHeadless(c *cli.Context, emu *pocket.Emulator, romPath string, saveBattery func([]uint8)) error {
	frames := c.Int("frames")
	if frames <= 0 {
		return errors.New("headless mode requires --frames with a positive value")
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	snapshotInterval := c.Int("snapshot-interval")
	snapshotDir := c.String("snapshot-dir")
	if snapshotInterval > 0 && snapshotDir == "" {
		tempDir, err := os.MkdirTemp("", "pocket-snapshots-*")
		if err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
		snapshotDir = tempDir
	}
	if snapshotDir != "" {
		if err := os.MkdirAll(snapshotDir, 0755); err != nil {
			return fmt.Errorf("creating snapshot directory: %w", err)
		}
	}

	romName := strings.TrimSuffix(filepath.Base(romPath), filepath.Ext(romPath))

	slog.Info("Running headless", "frames", frames, "snapshot_interval", snapshotInterval)

	for i := 0; i < frames; i++ {
		if err := emu.RunUntilFrame(); err != nil {
			return err
		}

		if snapshotInterval > 0 && (i+1)%snapshotInterval == 0 {
			path := filepath.Join(snapshotDir, fmt.Sprintf("%s_frame_%d.txt", romName, i+1))
			if err := saveFrameSnapshot(emu, path); err != nil {
				slog.Error("Failed to save snapshot", "frame", i+1, "error", err)
			} else {
				slog.Info("Saved frame snapshot", "frame", i+1, "path", path)
			}
		}

		if i%60 == 0 {
			if data := emu.SaveBattery(); len(data) > 0 {
				saveBattery(data)
			}
		}
	}

	if data := emu.SaveBattery(); len(data) > 0 {
		saveBattery(data)
	}

	slog.Info("Headless execution completed",
		"frames", emu.GetFrameCount(), "instructions", emu.GetInstructionCount())
	return nil
}

func saveFrameSnapshot(emu *pocket.Emulator, filename string) error {
	frame := emu.GetCurrentFrame().ToSlice()

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	fmt.Fprintf(file, "# Frame: %d, Instructions: %d\n", emu.GetFrameCount(), emu.GetInstructionCount())
	for _, line := range render.FrameToHalfBlocks(frame, video.FramebufferWidth, video.FramebufferHeight) {
		fmt.Fprintln(file, line)
	}
	return nil
}

func batteryPath(romPath string) string {
	return romPath + ".sav"
}
