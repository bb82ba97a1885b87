package sift

import (
	"os"
	"path/filepath"
	"strings"
)

// Entry is one filesystem object found by the walker. Its kind is recorded
// at traversal time; metadata is read on demand and may fail.
type Entry struct {
	Path string
	Type EntryType
}

// Info stats the entry, following symlinks. It fails for entries that have
// vanished, are unreadable or are dangling links.
func (e Entry) Info() (os.FileInfo, error) {
	return os.Stat(e.Path)
}

// Name returns the final path component. ok is false when the path has
// none, as for "/", "." and "..".
func (e Entry) Name() (name string, ok bool) {
	return finalComponent(e.Path)
}

// Ext returns the extension of the final component without its dot. A name
// with no dot, or whose only dot is the leading one (".bashrc"), has no
// extension. "archive." has the empty extension.
func (e Entry) Ext() (ext string, ok bool) {
	name, ok := e.Name()
	if !ok {
		return "", false
	}
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", false
	}
	return name[i+1:], true
}

func finalComponent(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	trimmed := strings.TrimRight(path, string(os.PathSeparator))
	if trimmed == "" || trimmed == filepath.VolumeName(trimmed) {
		return "", false
	}
	base := filepath.Base(trimmed)
	if base == "." || base == ".." {
		return "", false
	}
	return base, true
}

// typeOf maps file mode type bits onto an EntryType.
func typeOf(mode os.FileMode) EntryType {
	switch {
	case mode&os.ModeSymlink != 0:
		return EntrySymlink
	case mode.IsDir():
		return EntryDirectory
	case mode.IsRegular():
		return EntryFile
	default:
		return EntryOther
	}
}
