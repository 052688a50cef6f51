package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch converts every workbook once, then watches the input directory and
// reconverts workbooks as they change. Changes are debounced so a save that
// produces several filesystem events converts the workbook once. Watch runs
// until the context is cancelled or an interrupt arrives.
func (a *App) Watch(ctx context.Context) error {
	if err := a.ConvertAll(); err != nil {
		a.logger.Warn("Initial conversion had failures", slog.String("error", err.Error()))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := os.MkdirAll(a.cfg.Input.Dir, 0755); err != nil {
		return fmt.Errorf("creating input directory: %w", err)
	}
	if err := watcher.Add(a.cfg.Input.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", a.cfg.Input.Dir, err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := a.cfg.Watch.GetDebounce()
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	ticker := time.NewTicker(debounce)
	defer ticker.Stop()

	a.logger.Info("Watching for workbook changes",
		slog.String("dir", a.cfg.Input.Dir),
		slog.String("pattern", a.cfg.Input.Pattern),
		slog.Duration("debounce", debounce))

	// Accumulate changed paths between ticks
	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			a.logger.Info("Watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !a.matchesPattern(event.Name) {
				continue
			}
			pending[event.Name] = struct{}{}
			a.logger.Debug("Workbook change detected",
				slog.String("workbook", event.Name),
				slog.String("op", event.Op.String()))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			for path := range pending {
				delete(pending, path)
				if _, err := os.Stat(path); err != nil {
					continue
				}
				if err := a.ConvertWorkbook(path); err != nil {
					a.logger.Error("Conversion failed",
						slog.String("workbook", path),
						slog.String("error", err.Error()))
				}
			}
		}
	}
}
