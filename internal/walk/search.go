package sift

import (
	"sort"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one search.
type Result struct {
	Root    string   // Root the search started from
	Paths   []string // Matched paths
	Scanned int      // Entries produced by the walker
}

// Search walks cfg.Root and returns the paths of every entry matching cfg.
// The walk completes before filtering starts. Per-entry failures never
// surface as errors; an unreadable or missing root gives an empty result.
func Search(cfg Config, opts Options) Result {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(LogLevelWarn)
		defer logger.Sync()
	}
	res, _ := search(cfg, opts, logger)
	return res
}

// search runs both phases and also hands back the walked entries.
func search(cfg Config, opts Options, logger *zap.Logger) (Result, []Entry) {
	pred := NewPredicate(cfg)
	workers := opts.workers()
	logger.Debug("starting search",
		zap.String("root", cfg.Root),
		zap.Strings("checks", pred.Active()),
		zap.Int("workers", workers),
	)

	start := time.Now()
	entries := Collect(cfg.Root, logger)
	walked := time.Since(start)

	matched := Filter(entries, pred, workers)

	paths := make([]string, len(matched))
	for i, e := range matched {
		paths[i] = e.Path
	}
	if opts.Sort {
		sort.Strings(paths)
	}

	logger.Debug("search finished",
		zap.Int("scanned", len(entries)),
		zap.Int("matched", len(paths)),
		zap.Duration("walk_time", walked),
		zap.Duration("total_time", time.Since(start)),
	)

	return Result{Root: cfg.Root, Paths: paths, Scanned: len(entries)}, entries
}
