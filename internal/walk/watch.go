package sift

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits after the last change before
// searching again.
const DefaultDebounce = 200 * time.Millisecond

// WatchOptions controls a watch session.
type WatchOptions struct {
	Debounce time.Duration // Quiet period before a re-run, DefaultDebounce if zero
	Timeout  time.Duration // Stop after this long, 0 means until ctx is done
}

// WatchHandler receives the complete result of every search run.
type WatchHandler func(ctx context.Context, result Result) error

// Watch runs Search once, then runs it again in full after each burst of
// changes beneath cfg.Root. Every directory found by the walk is watched,
// and directories created later are picked up on the next run.
//
// Watch returns nil when ctx is done or the timeout expires, and returns
// the first error from handler.
func Watch(ctx context.Context, cfg Config, opts Options, wopts WatchOptions, handler WatchHandler) error {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(LogLevelWarn)
		defer logger.Sync()
	}
	if wopts.Debounce <= 0 {
		wopts.Debounce = DefaultDebounce
	}
	if wopts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wopts.Timeout)
		defer cancel()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Root); err != nil {
		return fmt.Errorf("error watching directory %s: %w", cfg.Root, err)
	}
	watched := map[string]struct{}{cfg.Root: {}}

	run := func() error {
		res, entries := search(cfg, opts, logger)
		watched = syncWatches(watcher, watched, cfg.Root, entries, logger)
		return handler(ctx, res)
	}

	if err := run(); err != nil {
		return err
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			pending = time.After(wopts.Debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			if err := run(); err != nil {
				return err
			}
		}
	}
}

// syncWatches adds a watch for every directory in entries that is not yet
// watched and returns the new watched set. Watches on removed directories
// are released by fsnotify itself.
func syncWatches(w *fsnotify.Watcher, watched map[string]struct{}, root string, entries []Entry, logger *zap.Logger) map[string]struct{} {
	next := map[string]struct{}{root: {}}
	for _, e := range entries {
		if e.Type != EntryDirectory {
			continue
		}
		next[e.Path] = struct{}{}
		if _, ok := watched[e.Path]; ok {
			continue
		}
		if err := w.Add(e.Path); err != nil {
			logger.Debug("cannot watch directory", zap.String("path", e.Path), zap.Error(err))
			delete(next, e.Path)
		}
	}
	return next
}
