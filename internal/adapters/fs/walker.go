// Package fs provides file system adapters for walking, hashing and mutating build trees.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/zerr"
)

var errStop = errors.New("stop walking")

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every non-directory entry under root in lexical order, skipping .git and any
// entry whose base name matches one of the ignore patterns. Yielded paths include root.
// An entry that cannot be read is yielded with its error and ends the walk.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root && w.ignored(d.Name(), ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return errStop
			}

			return nil
		})
		if err != nil && !errors.Is(err, errStop) {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk tree"), "path", root))
		}
	}
}

func (w *Walker) ignored(name string, ignores []string) bool {
	if name == ".git" {
		return true
	}
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
