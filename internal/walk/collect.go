package sift

import (
	"os"
	"sort"
	"strings"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"
)

// Collect walks the tree rooted at root and returns every entry it can
// read, root included. Entries that fail during traversal are dropped and
// logged at debug level; a root that does not exist yields no entries.
//
// A root that is a symlink to a directory is descended into and reported
// as a symlink. Symlinks found below the root are reported but never
// followed. Child paths are built on root exactly as given, so "./src/"
// yields "./src/main.rs".
//
// The walk is serial and sorted, so repeated runs over an unchanged tree
// return the same sequence.
func Collect(root string, logger *zap.Logger) []Entry {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &collector{logger: logger, scratch: make([]byte, scratchSize)}

	info, err := os.Lstat(root)
	if err != nil {
		logger.Debug("cannot read root", zap.String("root", root), zap.Error(err))
		return nil
	}
	c.entries = append(c.entries, Entry{Path: root, Type: typeOf(info.Mode())})

	descend := info.IsDir()
	if info.Mode()&os.ModeSymlink != 0 {
		if target, err := os.Stat(root); err == nil && target.IsDir() {
			descend = true
		}
	}
	if descend {
		c.walkDir(root)
	}

	logger.Debug("walk finished",
		zap.String("root", root),
		zap.Int("entries", len(c.entries)),
		zap.Int("skipped", c.skipped),
	)
	return c.entries
}

// scratchSize is the buffer handed to ReadDirents for directory reads.
const scratchSize = 64 * 1024

type collector struct {
	logger  *zap.Logger
	scratch []byte
	entries []Entry
	skipped int
}

func (c *collector) walkDir(dir string) {
	children, err := godirwalk.ReadDirents(dir, c.scratch)
	if err != nil {
		c.skipped++
		c.logger.Debug("skipping unreadable directory", zap.String("path", dir), zap.Error(err))
		return
	}
	sort.Sort(children)

	for _, de := range children {
		path := joinPath(dir, de.Name())
		c.entries = append(c.entries, Entry{Path: path, Type: typeOf(de.ModeType())})
		if de.IsDir() {
			c.walkDir(path)
		}
	}
}

// joinPath appends name to dir without cleaning dir.
func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
