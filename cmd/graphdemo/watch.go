package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/odvcencio/furry-graph/config"
	"github.com/odvcencio/furry-graph/runtime"
)

// watchConfig rebuilds the dashboard whenever the file at path is written
// and posts it as a runtime.CustomMsg. Invalid edits are logged and
// skipped. The watch stops when ctx is done.
func watchConfig(ctx context.Context, path string, post func(runtime.Message) bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				dash, err := loadDashboard(path)
				if err != nil {
					slog.Warn("config reload failed", "path", path, "err", err)
					continue
				}
				slog.Info("config reloaded", "path", path)
				post(runtime.CustomMsg{Value: dash})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watch error", "err", err)
			}
		}
	}()
	return nil
}

func loadDashboard(path string) (*dashboard, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newDashboard(cfg)
}

// reloadUpdate swaps in dashboards posted by watchConfig.
func reloadUpdate(app *runtime.App, msg runtime.Message) bool {
	if m, ok := msg.(runtime.CustomMsg); ok {
		if dash, ok := m.Value.(*dashboard); ok {
			app.SetRoot(dash)
			return true
		}
		return false
	}
	return runtime.DefaultUpdate(app, msg)
}
