package sift

import (
	"strings"

	"github.com/sourcegraph/conc/iter"
	"golang.org/x/text/unicode/norm"
)

// checkKind tags a single rule in a Predicate.
type checkKind int

const (
	checkName checkKind = iota
	checkExtension
	checkType
	checkSize
)

func (k checkKind) String() string {
	switch k {
	case checkName:
		return "name"
	case checkExtension:
		return "extension"
	case checkType:
		return "type"
	case checkSize:
		return "size"
	}
	return "unknown"
}

type check struct {
	kind checkKind
	test func(Entry) bool
}

// Predicate is the conjunction of the checks enabled by a Config. It holds
// no mutable state and is safe for concurrent use.
type Predicate struct {
	checks []check
}

// NewPredicate builds the checks that cfg enables, cheapest first. A Config
// with no filters yields a predicate that accepts every entry.
func NewPredicate(cfg Config) Predicate {
	var p Predicate

	if cfg.Name != "" {
		needle := cfg.Name
		if cfg.Normalize {
			needle = norm.NFC.String(needle)
		}
		normalize := cfg.Normalize
		p.checks = append(p.checks, check{kind: checkName, test: func(e Entry) bool {
			name, ok := e.Name()
			if !ok {
				// No final component: the check does not apply.
				return true
			}
			if normalize {
				name = norm.NFC.String(name)
			}
			return strings.Contains(name, needle)
		}})
	}

	if cfg.ExtensionActive() {
		want := cfg.Extension
		p.checks = append(p.checks, check{kind: checkExtension, test: func(e Entry) bool {
			ext, ok := e.Ext()
			return ok && ext == want
		}})
	}

	if cfg.Type != EntryAny {
		want := cfg.Type
		p.checks = append(p.checks, check{kind: checkType, test: func(e Entry) bool {
			return e.Type == want
		}})
	}

	if cfg.HasSizeBounds() {
		minSize, maxSize := cfg.MinSize, cfg.MaxSize
		p.checks = append(p.checks, check{kind: checkSize, test: func(e Entry) bool {
			info, err := e.Info()
			if err != nil {
				return false
			}
			size := info.Size()
			if minSize != SizeUnset && size < minSize {
				return false
			}
			if maxSize != SizeUnset && size > maxSize {
				return false
			}
			return true
		}})
	}

	return p
}

// Match reports whether e passes every check, stopping at the first failure.
func (p Predicate) Match(e Entry) bool {
	for _, c := range p.checks {
		if !c.test(e) {
			return false
		}
	}
	return true
}

// Active returns the names of the enabled checks in evaluation order.
func (p Predicate) Active() []string {
	names := make([]string, len(p.checks))
	for i, c := range p.checks {
		names[i] = c.kind.String()
	}
	return names
}

// Filter evaluates p over entries using up to workers goroutines and
// returns the entries that match. Surviving entries keep their input order.
func Filter(entries []Entry, p Predicate, workers int) []Entry {
	if len(entries) == 0 {
		return nil
	}
	if len(p.checks) == 0 {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	mapper := iter.Mapper[Entry, bool]{MaxGoroutines: workers}
	keep := mapper.Map(entries, func(e *Entry) bool {
		return p.Match(*e)
	})

	var out []Entry
	for i, ok := range keep {
		if ok {
			out = append(out, entries[i])
		}
	}
	return out
}
