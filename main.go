// vent-display renders the operator display of a PULMORA ventilation unit
// in a terminal.
//
// The display composes an 800x480 design surface every telemetry frame and
// rasterizes it onto a 100x30 cell grid: alarm banner on top, live pressure
// waveform, telemetry tiles along the bottom edge, full-screen overlays for
// boot, fault, disconnect and stopped states. Telemetry comes from the
// built-in feed simulator.
//
// Usage:
//
//	vent-display [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/vent-display/config.toml)
//	-render           Render one frame to stdout and exit (no TTY needed)
//	-render-at dur    Feed time of the frame rendered by -render (default 45s)
//	-list-alarms      Print the alarm catalog and exit
//	-seed int         Waveform seed override
//	-log-level string Log level override (debug|info|warn|error)
//	-version          Print version and exit
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"gitlab.com/pulmora/vent-display/pkg/app"
	"gitlab.com/pulmora/vent-display/pkg/config"
	"gitlab.com/pulmora/vent-display/pkg/feed"
	"gitlab.com/pulmora/vent-display/pkg/logging"
	"gitlab.com/pulmora/vent-display/pkg/panel"
	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
	"gitlab.com/pulmora/vent-display/pkg/term"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		renderOnce  = flag.Bool("render", false, "Render one frame to stdout and exit")
		renderAt    = flag.Duration("render-at", 45*time.Second, "Feed time of the frame rendered by -render")
		listAlarms  = flag.Bool("list-alarms", false, "Print the alarm catalog and exit")
		seed        = flag.Int64("seed", 0, "Waveform seed override (0 = config value)")
		logLevel    = flag.String("log-level", "", "Log level override (debug|info|warn|error)")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vent-display %s (%s) built %s\n", version, commit, date)
		return
	}

	if *listAlarms {
		printAlarmCatalog()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Feed.Seed = *seed
	}

	profile := profileFor(cfg.Display.ColorProfile)

	if *renderOnce {
		fmt.Println(renderFrame(cfg, *renderAt, profile))
		return
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use -render for one-shot output")
		os.Exit(1)
	}

	logger, closeLogger, err := newLogger(cfg, *logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer closeLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("received shutdown signal")
		cancel()
	}()

	if err := runDisplay(ctx, cfg, logger, profile); err != nil {
		logger.Error("display error", zap.Error(err))
		os.Exit(1)
	}
}

// runDisplay wires the simulator into the bubbletea shell and runs it until
// quit or signal.
func runDisplay(ctx context.Context, cfg *config.Config, logger *zap.Logger, profile termenv.Profile) error {
	lay := cfg.Layout()
	store, raster, p := app.NewDisplay(lay, versionsOf(cfg))

	sim := feed.NewSimulator(cfg.SimulatorConfig())
	snaps := make(chan telemetry.Snapshot, 1)
	go func() {
		if err := sim.Run(ctx, snaps); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("feed stopped", zap.Error(err))
		}
	}()

	needCols := int(lay.WindowWidth / surface.CellWidth)
	needRows := int(lay.WindowHeight/surface.CellHeight) + 1
	if sz := term.DetectSize(); !sz.Fits(needCols, needRows) {
		logger.Warn("terminal smaller than the display frame",
			zap.Int("cols", sz.Cols), zap.Int("rows", sz.Rows),
			zap.Int("need_cols", needCols), zap.Int("need_rows", needRows))
	}

	logger.Info("starting operator display",
		zap.String("feed", sim.Name()),
		zap.Int64("seed", cfg.Feed.Seed))

	model := app.New(p, store, raster, snaps, app.Options{
		FeedName: sim.Name(),
		Profile:  profile,
		Log:      logger,
	})
	prog := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// renderFrame replays the simulated feed up to the requested moment and
// rasterizes the final frame, so the waveform history is as full as it
// would be live.
func renderFrame(cfg *config.Config, at time.Duration, profile termenv.Profile) string {
	store, raster, p := app.NewDisplay(cfg.Layout(), versionsOf(cfg))

	simCfg := cfg.SimulatorConfig()
	sim := feed.NewSimulator(simCfg)
	for t := time.Duration(0); t <= at; t += simCfg.Interval {
		p.RenderFrame(sim.SnapshotAt(t))
	}
	return raster.Paint(store).Render(profile)
}

func printAlarmCatalog() {
	for _, e := range telemetry.Entries() {
		fmt.Printf("%3d  %-6s  %s\n", int(e.Code), e.Priority, e.Message)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func versionsOf(cfg *config.Config) panel.Versions {
	return panel.Versions{
		Firmware: cfg.Versions.Firmware,
		Control:  cfg.Versions.Control,
	}
}

// newLogger builds the shell logger. The display owns the terminal, so
// logs go to the configured file, or nowhere.
func newLogger(cfg *config.Config, override string) (*zap.Logger, func(), error) {
	name := cfg.General.LogLevel
	if override != "" {
		name = override
	}
	level, ok := logging.ParseLevel(name)
	if !ok {
		return nil, nil, fmt.Errorf("unknown log level %q", name)
	}

	if cfg.General.LogFile == "" {
		return logging.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(level, f), func() { f.Close() }, nil
}

// profileFor maps the configured name to a termenv profile; auto detects
// from the terminal.
func profileFor(name string) termenv.Profile {
	switch name {
	case "truecolor":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16":
		return termenv.ANSI
	case "mono":
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}
