package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrRootNotFound indicates that the scan root does not exist or is not a
// directory.
var ErrRootNotFound = errors.New("directory not found")

// Walker produces candidate directories under a root in depth-first order.
// Directory names in the exclude set (case-insensitive) and names starting
// with a dot are not descended into. Symbolic links are never followed.
type Walker struct {
	exclude  map[string]bool
	warnings []string
}

// NewWalker creates a walker that skips the given directory names in
// addition to hidden directories.
func NewWalker(exclude []string) *Walker {
	excMap := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		excMap[strings.ToLower(e)] = true
	}
	return &Walker{exclude: excMap}
}

// Warnings returns the soft failures recorded during the last walk.
func (w *Walker) Warnings() []string {
	return append([]string(nil), w.warnings...)
}

func (w *Walker) addWarning(msg string) {
	if len(w.warnings) < 500 {
		w.warnings = append(w.warnings, msg)
	}
}

func (w *Walker) skip(name string) bool {
	return strings.HasPrefix(name, ".") || w.exclude[strings.ToLower(name)]
}

// Walk returns the root followed by its transitive subdirectories in
// depth-first, lexical order. With recursive disabled the result is just
// the root. Listing errors below the root are recorded as warnings and
// the walk continues with the remaining directories.
func (w *Walker) Walk(root string, recursive bool) ([]string, error) {
	w.warnings = nil

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
	}

	if !recursive {
		return []string{root}, nil
	}

	// Explicit stack instead of recursion: deep trees must not grow the
	// call stack. Children are pushed in reverse so pop order is lexical.
	var dirs []string
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		dirs = append(dirs, dir)

		entries, err := os.ReadDir(dir)
		if err != nil {
			// Permission denied or a raced deletion. Siblings still walk.
			w.addWarning("cannot read " + dir + ": " + err.Error())
			continue
		}
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			// ReadDir does not resolve symlinks, so IsDir is false for a
			// link to a directory. That keeps cyclic links out of the walk.
			if !e.IsDir() || w.skip(e.Name()) {
				continue
			}
			stack = append(stack, filepath.Join(dir, e.Name()))
		}
	}
	return dirs, nil
}
