package dataset

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/munro/internal/checksum"
)

// EventCallback is called when the source file diverges from the loaded
// collection. kind is "changed" or "removed".
type EventCallback func(kind, path string)

// Watch starts an fsnotify watcher on the dataset source file and reports
// drift until ctx is cancelled. The in-memory collection is never reloaded;
// a change on disk is only surfaced so operators know the process is
// serving a stale snapshot until restart.
//
// Editors and exports tend to rewrite the file in several bursts, so events
// are debounced and compared by checksum before anything is reported.
func Watch(ctx context.Context, store *Store, logger *slog.Logger, cb EventCallback) error {
	path := store.SourcePath()
	if path == "" {
		// Store was built in memory; nothing on disk to drift from.
		return nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	// Watch the directory, not the file: rewrites via rename replace the
	// inode and would silently detach a file-level watch.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("path", abs))

	var checkTimer *time.Timer
	var checkCh <-chan time.Time

	scheduleCheck := func() {
		if checkTimer == nil {
			checkTimer = time.NewTimer(200 * time.Millisecond)
			checkCh = checkTimer.C
		} else {
			checkTimer.Reset(200 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if checkTimer != nil {
				checkTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-checkCh:
			cs, sumErr := checksum.SumFile(abs)
			if sumErr != nil {
				logger.Warn("watcher: source file gone or unreadable",
					slog.String("path", path),
					slog.String("error", sumErr.Error()))
				if cb != nil {
					cb("removed", path)
				}
				continue
			}
			if cs == store.Checksum() {
				continue
			}
			logger.Warn("watcher: source file changed on disk; serving stale dataset until restart",
				slog.String("path", path))
			if cb != nil {
				cb("changed", path)
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				scheduleCheck()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
