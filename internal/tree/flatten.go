// Package tree flattens a directory subtree into one ordered sequence of
// depth-tagged entries. The walk is pre-order and depth-first with siblings
// in byte-sorted name order, so two structurally identical trees flatten to
// sequences a downstream diff can pair item by item.
package tree

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"dircomp/internal/classify"
	serr "dircomp/internal/errors"
	log "dircomp/internal/log"
	"dircomp/pkg/types"
)

// Walker flattens directory subtrees. The zero value is not usable; create
// one with New.
type Walker struct {
	engine *classify.Engine
	ignore []glob.Glob
	logger log.Logging
}

// Option configures a Walker.
type Option func(*Walker)

// WithEngine makes the walker classify entries through engine.
func WithEngine(engine *classify.Engine) Option {
	return func(w *Walker) {
		w.engine = engine
	}
}

// WithIgnore skips any entry whose base name matches one of the compiled
// glob patterns. Ignored directories are not recursed into.
func WithIgnore(globs ...glob.Glob) Option {
	return func(w *Walker) {
		w.ignore = append(w.ignore, globs...)
	}
}

// WithLogger directs walker logging to l.
func WithLogger(l log.Logging) Option {
	return func(w *Walker) {
		w.logger = l
	}
}

// New creates a Walker.
func New(opts ...Option) *Walker {
	w := &Walker{
		engine: classify.New(),
		logger: log.LogWithFields(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Flatten produces the flattened view of the subtree rooted at root.
//
// Fails with a RootUnreadable error when root does not classify as a
// directory or when a directory's children cannot be listed. A child that
// merely fails to classify becomes a KindInvalid leaf in the sequence and
// the walk continues; one unreadable entry never hides its siblings.
func (w *Walker) Flatten(root string) (*types.FlattenedTree, error) {
	rootEntry := w.engine.Classify(root)
	if !rootEntry.IsDir() {
		var cause error
		if inv, ok := rootEntry.Kind.(types.KindInvalid); ok {
			cause = inv.Cause
		} else {
			cause = serr.Newf("entry is %s", rootEntry.Kind)
		}
		return nil, serr.NewEntryError("root is not a readable directory", root, serr.RootUnreadable, cause)
	}

	items, err := w.walk(0, root)
	if err != nil {
		return nil, err
	}

	w.logger.With(log.F("root", root), log.F("entries", len(items))).Debug("flattened subtree")
	return &types.FlattenedTree{Root: root, Items: items}, nil
}

// walk lists dir, classifies each child in byte-sorted name order and
// recurses into directory children one level deeper. Symlink children stay
// leaves even when their target is a directory.
func (w *Walker) walk(depth int, dir string) ([]types.TreeItem, error) {
	children, err := os.ReadDir(dir)
	if err != nil {
		return nil, serr.NewEntryError("cannot list directory", dir, serr.RootUnreadable, err)
	}

	names := make([]string, 0, len(children))
	for _, child := range children {
		names = append(names, child.Name())
	}
	// Go string comparison is bytewise, which gives the locale-independent
	// total order the pairing downstream relies on.
	sort.Strings(names)

	var items []types.TreeItem
	for _, name := range names {
		if w.ignored(name) {
			w.logger.With(log.F("name", name), log.F("dir", dir)).Debug("entry ignored")
			continue
		}

		entry := w.engine.Classify(filepath.Join(dir, name))
		items = append(items, types.TreeItem{Depth: depth, Entry: entry})

		if entry.IsDir() {
			sub, err := w.walk(depth+1, entry.Path)
			if err != nil {
				return nil, err
			}
			items = append(items, sub...)
		}
	}
	return items, nil
}

func (w *Walker) ignored(name string) bool {
	for _, g := range w.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// Flatten is a convenience wrapper flattening root with a default walker.
func Flatten(root string) (*types.FlattenedTree, error) {
	return New().Flatten(root)
}
