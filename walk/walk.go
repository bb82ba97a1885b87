// Package walk is the public API of sift: a two-phase file finder that walks
// a tree serially and filters the collected entries in parallel.
//
//	cfg := walk.NewConfig()
//	cfg.Root = "./src"
//	cfg.Extension = "go"
//	cfg.Type = walk.EntryFile
//	res := walk.Search(cfg, walk.Options{Sort: true})
//	for _, p := range res.Paths {
//		fmt.Println(p)
//	}
//
// Watch repeats the same search whenever the tree changes:
//
//	err := walk.Watch(ctx, cfg, walk.Options{}, walk.WatchOptions{}, func(ctx context.Context, res walk.Result) error {
//		fmt.Println(len(res.Paths), "matches")
//		return nil
//	})
package walk

import (
	"context"

	internal "github.com/TFMV/sift/internal/walk"
	"go.uber.org/zap"
)

// Re-export the types from the internal package
type (
	// Config holds the fully resolved search criteria.
	Config = internal.Config

	// Options carries runtime settings that do not affect which entries match.
	Options = internal.Options

	// Entry is one filesystem object found by the walker.
	Entry = internal.Entry

	// EntryType is the kind of filesystem object an entry refers to.
	EntryType = internal.EntryType

	// Predicate is the conjunction of the checks enabled by a Config.
	Predicate = internal.Predicate

	// Result is the outcome of one search.
	Result = internal.Result

	// LogLevel defines the verbosity of logging.
	LogLevel = internal.LogLevel

	// WatchOptions controls a watch session.
	WatchOptions = internal.WatchOptions

	// WatchHandler receives the complete result of every search run.
	WatchHandler = internal.WatchHandler
)

const (
	// Entry types
	EntryAny       = internal.EntryAny
	EntryFile      = internal.EntryFile
	EntryDirectory = internal.EntryDirectory
	EntrySymlink   = internal.EntrySymlink
	EntryOther     = internal.EntryOther

	// Log levels
	LogLevelError = internal.LogLevelError
	LogLevelWarn  = internal.LogLevelWarn
	LogLevelInfo  = internal.LogLevelInfo
	LogLevelDebug = internal.LogLevelDebug

	// SizeUnset marks a size bound that was not configured.
	SizeUnset = internal.SizeUnset

	// DefaultDebounce is how long Watch waits after the last change before searching again.
	DefaultDebounce = internal.DefaultDebounce
)

// ErrInvalidEntryType is returned when an entry type string cannot be parsed.
var ErrInvalidEntryType = internal.ErrInvalidEntryType

// NewConfig returns a Config rooted at the current directory with no filters.
func NewConfig() Config {
	return internal.NewConfig()
}

// ParseEntryType parses f, d or l into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	return internal.ParseEntryType(s)
}

// NewLogger creates a zap logger writing to stderr at the given level.
func NewLogger(level LogLevel) *zap.Logger {
	return internal.NewLogger(level)
}

// Collect walks the tree rooted at root and returns every readable entry.
func Collect(root string, logger *zap.Logger) []Entry {
	return internal.Collect(root, logger)
}

// NewPredicate builds the composite predicate for cfg.
func NewPredicate(cfg Config) Predicate {
	return internal.NewPredicate(cfg)
}

// Filter evaluates p over entries in parallel and returns the matches.
func Filter(entries []Entry, p Predicate, workers int) []Entry {
	return internal.Filter(entries, p, workers)
}

// Search walks cfg.Root and returns the paths of every entry matching cfg.
func Search(cfg Config, opts Options) Result {
	return internal.Search(cfg, opts)
}

// Watch repeats Search each time the tree beneath cfg.Root changes.
func Watch(ctx context.Context, cfg Config, opts Options, wopts WatchOptions, handler WatchHandler) error {
	return internal.Watch(ctx, cfg, opts, wopts, handler)
}
