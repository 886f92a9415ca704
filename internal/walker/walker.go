package walker

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileEntry is a file selected for formatting.
type FileEntry struct {
	Path string
	// Seq numbers entries from 1 in emission order, so results produced
	// concurrently can be written back in a stable order.
	Seq int
}

// WalkOptions configures traversal.
type WalkOptions struct {
	Recursive bool
	NoIgnore  bool // skip .gitignore processing
	Hidden    bool // include hidden files and directories
	Filter    *Filter
}

var errIsDir = errors.New("is a directory")

// Walk resolves roots into files and sends them on the returned channel.
// Without Recursive, roots must be regular files. With Recursive, directories
// are visited depth-first in lexical order, skipping VCS and hidden entries
// and anything matched by a .gitignore along the way. Both channels are
// closed when the walk ends; callers must drain the error channel.
func Walk(roots []string, opts WalkOptions) (<-chan FileEntry, <-chan error) {
	fileCh := make(chan FileEntry, 64)
	errCh := make(chan error, 16)

	go func() {
		defer close(fileCh)
		defer close(errCh)

		w := &walk{fileCh: fileCh, errCh: errCh, opts: opts}
		for _, root := range roots {
			w.root(root)
		}
	}()

	return fileCh, errCh
}

type walk struct {
	fileCh chan<- FileEntry
	errCh  chan<- error
	opts   WalkOptions
	seq    int
}

func (w *walk) emit(path string) {
	w.seq++
	w.fileCh <- FileEntry{Path: path, Seq: w.seq}
}

func (w *walk) fail(path string, err error) {
	w.errCh <- &WalkError{Path: path, Err: err}
}

func (w *walk) root(root string) {
	info, err := os.Stat(root)
	if err != nil {
		w.fail(root, err)
		return
	}
	switch {
	case info.Mode().IsRegular():
		// Explicit file arguments bypass hidden, ignore and glob rules.
		w.emit(root)
	case info.IsDir() && w.opts.Recursive:
		var stack *ignoreStack
		if !w.opts.NoIgnore {
			stack = newIgnoreStack()
		}
		w.dir(root, stack)
	case info.IsDir():
		w.fail(root, errIsDir)
	}
}

func (w *walk) dir(dir string, stack *ignoreStack) {
	if stack != nil {
		stack.push(dir)
		defer stack.pop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.fail(dir, err)
		return
	}

	for _, e := range entries {
		name := e.Name()
		full := filepath.Join(dir, name)

		mode := e.Type()
		if mode&fs.ModeSymlink != 0 {
			// Follow links to files only; linked directories may form cycles.
			target, err := os.Stat(full)
			if err != nil || !target.Mode().IsRegular() {
				continue
			}
			mode = target.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if skipDir(name, w.opts.Hidden) {
				continue
			}
			if stack != nil && stack.isIgnored(full, true) {
				continue
			}
			w.dir(full, stack)

		case mode.IsRegular():
			if !w.opts.Hidden && isHidden(name) {
				continue
			}
			if stack != nil && stack.isIgnored(full, false) {
				continue
			}
			if w.opts.Filter != nil {
				info, err := os.Stat(full)
				if err != nil {
					w.fail(full, err)
					continue
				}
				if !w.opts.Filter.Match(name, info.Size()) {
					continue
				}
			}
			w.emit(full)
		}
	}
}

// WalkError reports a path that could not be visited.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
