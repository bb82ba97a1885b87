// Package sift finds filesystem entries by name, extension, type and size.
//
// A search runs in two phases. The tree is walked serially into a slice of
// entries, then a composite predicate is evaluated over that slice in
// parallel. Nothing is printed until both phases are finished.
package sift

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// SizeUnset marks a size bound that was not configured.
const SizeUnset int64 = -1

// ErrInvalidEntryType is returned when an entry type string cannot be parsed.
var ErrInvalidEntryType = errors.New("invalid entry type")

// EntryType is the kind of filesystem object an entry refers to.
type EntryType int

const (
	EntryAny       EntryType = iota // No type restriction
	EntryFile                       // Regular file
	EntryDirectory                  // Directory
	EntrySymlink                    // Symbolic link (not followed)
	EntryOther                      // Devices, sockets, pipes
)

// String returns the short flag form of the entry type.
func (t EntryType) String() string {
	switch t {
	case EntryFile:
		return "f"
	case EntryDirectory:
		return "d"
	case EntrySymlink:
		return "l"
	case EntryOther:
		return "other"
	default:
		return "any"
	}
}

// ParseEntryType parses f, d or l (and their long forms) into an EntryType.
// An empty string yields EntryAny.
func ParseEntryType(s string) (EntryType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return EntryAny, nil
	case "f", "file":
		return EntryFile, nil
	case "d", "dir", "directory":
		return EntryDirectory, nil
	case "l", "link", "symlink":
		return EntrySymlink, nil
	}
	return EntryAny, fmt.Errorf("%w: %q (expected f, d or l)", ErrInvalidEntryType, s)
}

// Config holds the fully resolved search criteria. It is never modified
// by the search once it starts.
type Config struct {
	Root         string    // Directory to start from
	Name         string    // Substring the final path component must contain
	Extension    string    // Exact extension, without the leading dot
	HasExtension bool      // Extension filter is set even when Extension is empty
	Type         EntryType // Entry kind, EntryAny for no restriction
	MinSize      int64     // Inclusive lower size bound, SizeUnset if absent
	MaxSize      int64     // Inclusive upper size bound, SizeUnset if absent
	Normalize    bool      // Compare names in Unicode NFC form
}

// NewConfig returns a Config rooted at the current directory with no filters.
func NewConfig() Config {
	return Config{
		Root:    ".",
		MinSize: SizeUnset,
		MaxSize: SizeUnset,
	}
}

// ExtensionActive reports whether the extension filter applies. An empty
// Extension only filters when HasExtension is set, and then matches names
// ending in a dot such as "archive.".
func (c Config) ExtensionActive() bool {
	return c.Extension != "" || c.HasExtension
}

// HasSizeBounds reports whether either size bound is configured.
func (c Config) HasSizeBounds() bool {
	return c.MinSize != SizeUnset || c.MaxSize != SizeUnset
}

// LogLevel defines the verbosity of logging.
type LogLevel int

const (
	LogLevelError LogLevel = iota
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
)

// Options carries runtime settings that do not affect which entries match.
type Options struct {
	Workers int         // Filter goroutines, NumCPU when <= 0
	Sort    bool        // Sort matched paths lexically
	Logger  *zap.Logger // Defaults to a Warn-level production logger
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}
