package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/content"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/modes"
	"github.com/lixenwraith/vi-snake/network"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		os.Exit(1)
	}
}

// newFlagSet declares command-line overrides; names match config keys with '-' for '_'
func newFlagSet(defaults *config.Config) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("vi-snake", flag.ContinueOnError)

	configPath := fs.String("config", "", "YAML config file")
	fs.Int("width", defaults.Width, "Board width in cells")
	fs.Int("height", defaults.Height, "Board height in cells")
	fs.Bool("fit", defaults.Fit, "Size the board to the terminal")
	fs.String("boundary", defaults.Boundary, "Boundary policy: wall, clamp")
	fs.Int("queue-size", defaults.QueueSize, "Pending direction capacity")
	fs.String("mode", defaults.Mode, "Driver: auto, line, step, realtime")
	fs.Duration("tick", defaults.TickInterval, "Realtime tick interval")
	fs.String("food", defaults.FoodFile, "Preset food file of 'row col' pairs")
	fs.Int64("seed", defaults.Seed, "Random seed for food placement (0 = time)")
	fs.Bool("sound", defaults.Sound, "Enable audio cues")
	fs.Float64("volume", defaults.Volume, "Master volume 0..1")
	fs.String("listen", defaults.Listen, "Spectator API address, e.g. 127.0.0.1:8080")
	fs.Bool("autopilot", defaults.Autopilot, "Let the planner steer")
	fs.Bool("debug", defaults.Debug, "Write logs/vi-snake.log")
	return fs, configPath
}

func run(args []string) error {
	fs, configPath := newFlagSet(config.Default())
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Only flags given explicitly override file and environment
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr == nil {
			setErr = cfg.Set(f.Name, f.Value.String())
		}
	})
	if setErr != nil {
		return setErr
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	mode := modes.Resolve(cfg.Mode, os.Stdin, os.Stdout)
	if cfg.Fit {
		cols, rows := terminal.Size(os.Stdout)
		cfg.Width, cfg.Height = modes.FitBoard(cols, rows)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Printf("config: %dx%d boundary=%s mode=%s tick=%s queue=%d", cfg.Width, cfg.Height, cfg.Boundary, mode, cfg.TickInterval, cfg.QueueSize)

	var preset []engine.Coord
	if cfg.FoodFile != "" {
		if preset, err = content.LoadFood(cfg.FoodFile); err != nil {
			return err
		}
	}

	glyphs := render.Glyphs{
		Snake: config.Rune(cfg.Glyphs.Snake, constants.GlyphSnake),
		Head:  config.Rune(cfg.Glyphs.Head, constants.GlyphHead),
		Food:  config.Rune(cfg.Glyphs.Food, constants.GlyphFood),
		Empty: config.Rune(cfg.Glyphs.Empty, constants.GlyphEmpty),
	}

	player := audio.NewPlayer(cfg.Volume)
	if err := player.Init(cfg.Sound); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer player.Close()

	stats := status.NewRegistry()
	stats.SetMode(mode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if cfg.Listen != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.Listen
		spectator := network.NewServer(netCfg, stats, glyphs)
		if err := spectator.Start(); err != nil {
			return err
		}
		defer spectator.Stop(context.Background())
	}

	session, err := modes.NewSession(cfg, preset, stats, player)
	if err != nil {
		return err
	}

	switch mode {
	case config.ModeLine:
		opts := []modes.LineOption{modes.WithClearScreen(terminal.IsTerminal(os.Stdout))}
		return modes.NewLine(os.Stdin, os.Stdout, session, glyphs, opts...).Run(ctx)

	case config.ModeStep:
		keys, err := modes.OpenKeyboard()
		if err != nil {
			return err
		}
		core.SetCrashCleanup(func() { keys.Close() })
		defer terminal.ShowCursor(os.Stdout)
		terminal.HideCursor(os.Stdout)
		return modes.NewStep(keys, os.Stdout, session, glyphs).Run(ctx)

	case config.ModeRealtime:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("init screen: %w", err)
		}
		screen.HideCursor()
		return modes.NewRealtime(screen, session, glyphs, cfg.TickInterval).Run(ctx)
	}
	return fmt.Errorf("%w: mode %q", config.ErrInvalidConfig, mode)
}
