package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/backdrop/config"
	"github.com/pthm-cable/backdrop/game"
	"github.com/pthm-cable/backdrop/renderer"
	"github.com/pthm-cable/backdrop/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	mode := flag.String("mode", "field", "Backdrop to render: field or gradient")
	headless := flag.Bool("headless", false, "Run the field without graphics")
	scriptPath := flag.String("script", "", "YAML input script for headless runs")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Int("stats-window", 0, "Stats window size in frames (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N frames (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:        rngSeed,
		LogStats:    *logStats,
		StatsWindow: *statsWindow,
		OutputDir:   *outputDir,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case *headless:
		err = runHeadless(ctx, opts, *scriptPath, *maxTicks)
	case *mode == "field":
		err = runField(ctx, opts, *maxTicks)
	case *mode == "gradient":
		err = runGradient(ctx, opts, *maxTicks)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// runHeadless runs the field against a scripted host, counting draw calls
// instead of drawing.
func runHeadless(ctx context.Context, opts game.Options, scriptPath string, maxTicks int) error {
	var script *game.Script
	if scriptPath != "" {
		s, err := game.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		script = s
	} else {
		// Default viewport so the field has particles
		cfg := config.Cfg()
		script = &game.Script{Events: []game.ScriptEvent{
			{Tick: 0, Type: "resize", W: cfg.Screen.Width, H: cfg.Screen.Height},
		}}
	}
	if maxTicks <= 0 && !script.HasStop() {
		return errors.New("headless runs need -max-ticks or a script ending in stop")
	}

	field, err := game.NewField(config.Cfg(), nil, opts)
	if err != nil {
		return err
	}
	defer field.Stop()

	slog.Info("starting headless field",
		"seed", opts.Seed,
		"script", scriptPath,
		"max_ticks", maxTicks,
	)

	ticks, err := game.Run(ctx, game.NewScriptHost(script), field, maxTicks)
	slog.Info("headless field finished", "ticks", ticks, "particles", field.Particles())
	return err
}

// openWindow creates the raylib window from the screen config.
func openWindow(title string) {
	cfg := config.Cfg()
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), title)
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
}

// runField runs the particle field in a window.
func runField(ctx context.Context, opts game.Options, maxTicks int) error {
	openWindow("Backdrop")
	defer rl.CloseWindow()

	cfg := config.Cfg()
	field, err := game.NewField(cfg, renderer.NewSurface(cfg.Derived.Background), opts)
	if err != nil {
		return err
	}
	defer field.Stop()

	panel := ui.NewPanel(field)
	host := renderer.NewWindowHost()
	host.SetOverlay(panel.Draw)
	host.SetCapture(panel.Contains)

	slog.Info("starting field", "seed", opts.Seed)
	_, err = game.Run(ctx, host, field, maxTicks)
	return err
}

// runGradient runs the shader background in a window.
func runGradient(ctx context.Context, opts game.Options, maxTicks int) error {
	openWindow("Backdrop")
	defer rl.CloseWindow()

	cfg := config.Cfg()
	program, err := renderer.NewGradientRenderer(cfg.Gradient.Base, cfg.Gradient.Amplitude)
	if err != nil {
		return fmt.Errorf("loading gradient: %w", err)
	}
	defer program.Unload()

	gradient := game.NewGradient(cfg, program, opts)
	defer gradient.Stop()

	slog.Info("starting gradient")
	_, err = game.Run(ctx, renderer.NewWindowHost(), gradient, maxTicks)
	return err
}
