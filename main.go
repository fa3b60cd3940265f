package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"rsnake/config"
	"rsnake/play"
	"rsnake/stats"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "window", "Frontend: window, term or headless")
	seed := flag.Uint64("seed", 0, "RNG seed for fruit placement (0 = config, then time-based)")
	games := flag.Int("games", 0, "Games to play in headless mode (0 = use config)")
	outputDir := flag.String("output-dir", "", "Directory for CSV session telemetry (empty = use config)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer")
	logFile := flag.String("log-file", "", "Write logs to this file instead of stdout")
	verbose := flag.Bool("v", false, "Log game events at debug level")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *games > 0 {
		cfg.Headless.Games = *games
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}
	if *autopilot {
		cfg.Game.Autopilot = true
	}

	logger, closeLog, err := newLogger(*mode, *logFile, *verbose)
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	if err := run(*mode, cfg, logger); err != nil {
		logger.Error("exiting", "mode", *mode, "error", err)
		closeLog()
		os.Exit(1)
	}
}

func run(mode string, cfg *config.Config, logger *slog.Logger) error {
	out, err := stats.NewOutputManager(cfg.Telemetry.OutputDir)
	if err != nil {
		return err
	}
	tr := play.NewTracker(stats.NewSession(), out, logger)

	return play.Run(tr, func() error {
		if err := out.WriteConfig(cfg); err != nil {
			return err
		}

		seed := cfg.Game.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g, err := play.NewGame(cfg, seed, logger)
		if err != nil {
			return err
		}

		grid := g.Grid()
		logger.Info("starting",
			"mode", mode,
			"session", tr.Session().ID,
			"seed", seed,
			"grid", fmt.Sprintf("%dx%d", grid.Width, grid.Height),
			"facing", g.Facing(),
			"autopilot", cfg.Game.Autopilot,
			"output_dir", out.Dir(),
		)

		switch mode {
		case "window":
			return runWindow(g, cfg, tr)
		case "term":
			return play.RunTerminal(g, cfg, tr)
		case "headless":
			return play.RunHeadless(g, cfg, tr)
		default:
			return fmt.Errorf("unknown mode %q", mode)
		}
	})
}

// newLogger follows the mode: JSON to stdout for headless runs, text otherwise.
// The terminal frontend owns the screen, so it only logs to a file.
func newLogger(mode, path string, verbose bool) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var w io.Writer = os.Stdout
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	} else if mode == "term" {
		w = io.Discard
	}

	if mode == "headless" {
		return slog.New(slog.NewJSONHandler(w, opts)), closeFn, nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), closeFn, nil
}
