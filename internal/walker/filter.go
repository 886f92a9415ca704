package walker

import (
	"fmt"
	"path/filepath"
)

// Filter selects which discovered files are emitted.
type Filter struct {
	globs   []string
	maxSize int64
}

// NewFilter creates a Filter. A file passes when its base name matches any
// of globs (or globs is empty) and its size does not exceed maxSize
// (or maxSize <= 0).
func NewFilter(globs []string, maxSize int64) (*Filter, error) {
	for _, g := range globs {
		if _, err := filepath.Match(g, ""); err != nil {
			return nil, fmt.Errorf("invalid glob %q: %w", g, err)
		}
	}
	return &Filter{globs: globs, maxSize: maxSize}, nil
}

// Match reports whether a file with the given base name and size passes.
func (f *Filter) Match(name string, size int64) bool {
	if f == nil {
		return true
	}
	if f.maxSize > 0 && size > f.maxSize {
		return false
	}
	if len(f.globs) == 0 {
		return true
	}
	for _, g := range f.globs {
		if ok, _ := filepath.Match(g, name); ok {
			return true
		}
	}
	return false
}

// skipDir reports whether a directory is never descended into.
// VCS directories are always skipped; other hidden directories unless hidden is set.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && isHidden(name)
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
