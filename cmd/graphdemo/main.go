// Command graphdemo shows animated graphs in the terminal.
//
// Usage:
//
//	graphdemo [-config dash.yaml [-watch]] [-log graph.log]
//	graphdemo -snapshot 80x24 [-frames 30] [-json]
//
// With -snapshot the dashboard is rendered headlessly and the final frame
// is printed to stdout. Otherwise it runs until q, Esc, or Ctrl-C, and
// with -watch it reloads the dashboard when the config file changes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/odvcencio/furry-graph/agent"
	backendtcell "github.com/odvcencio/furry-graph/backend/tcell"
	"github.com/odvcencio/furry-graph/config"
	"github.com/odvcencio/furry-graph/graph"
	"github.com/odvcencio/furry-graph/runtime"
)

var (
	configPath = flag.String("config", "", "dashboard YAML file (default: built-in dashboard)")
	logPath    = flag.String("log", "", "write logs to this file (overrides the config)")
	snapshotAt = flag.String("snapshot", "", "render headlessly at WxH and print the frame")
	frames     = flag.Int("frames", 0, "ticks to advance before a snapshot")
	asJSON     = flag.Bool("json", false, "print the snapshot as JSON")
	watch      = flag.Bool("watch", false, "reload the dashboard when the config file changes")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "graphdemo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logPath != "" {
		cfg.Log = *logPath
	}
	closeLog, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	dash, err := newDashboard(cfg)
	if err != nil {
		return err
	}

	if *snapshotAt != "" {
		w, h, err := parseSize(*snapshotAt)
		if err != nil {
			return err
		}
		return snapshot(os.Stdout, dash, w, h, *frames, *asJSON)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal; use -snapshot")
	}
	return interactive(cfg, dash)
}

// setupLogging routes logs to the configured file. Logging to the
// terminal would corrupt the display, so without a file nothing is logged.
func setupLogging(cfg *config.Config) (func(), error) {
	if cfg.Log == "" {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)
	graph.SetLogger(logger)
	logger.Info("graphdemo starting", "panels", len(cfg.Panels), "layout", cfg.Layout, "tick", cfg.TickInterval())
	return func() {
		graph.SetLogger(nil)
		f.Close()
	}, nil
}

func interactive(cfg *config.Config, dash *dashboard) error {
	be, err := backendtcell.New()
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := runtime.NewApp(runtime.AppConfig{
		Backend:  be,
		Root:     dash,
		Update:   reloadUpdate,
		TickRate: cfg.TickInterval(),
	})
	if *watch && *configPath != "" {
		if err := watchConfig(ctx, *configPath, app.TryPost); err != nil {
			return err
		}
	}
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func snapshot(out io.Writer, dash *dashboard, width, height, ticks int, asJSON bool) error {
	a, err := agent.New(agent.Config{Root: dash, Width: width, Height: height})
	if err != nil {
		return err
	}
	defer a.Close()

	for range ticks {
		a.Send(runtime.TickMsg{})
	}
	a.Frame()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(a.Snapshot())
	}
	_, err = fmt.Fprintln(out, a.CaptureText())
	return err
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
