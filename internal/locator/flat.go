package locator

import (
	"os"
	"path/filepath"

	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/target"
)

// FlatLocator lists one directory and yields at most one Makefile
// descriptor: whichever candidate filename present has the highest
// priority.
type FlatLocator struct {
	priorities PriorityTable
}

// NewFlatLocator returns a FlatLocator using priorities.
func NewFlatLocator(priorities PriorityTable) *FlatLocator {
	return &FlatLocator{priorities: priorities}
}

// FlatContext is the scoped resource handle a FlatLocator hands out:
// acquiring it opens the directory, and Close releases that handle
// regardless of whether Iterator was ever called.
type FlatContext struct {
	dir    *os.File
	root   string
	table  PriorityTable
	closed bool
}

// Acquire opens root and returns a scoped context over it.
func (l *FlatLocator) Acquire(root string) (*FlatContext, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewLocatorIOError(root, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.NewLocatorIOError(abs, err)
	}
	return &FlatContext{dir: f, root: abs, table: l.priorities}, nil
}

// Iterator lists the directory's entries and yields the single best match,
// or an empty iterator if nothing in the directory matches the priority
// table.
func (c *FlatContext) Iterator() (iter.Iterator[target.Makefile], error) {
	names, err := c.dir.Readdirnames(-1)
	if err != nil {
		return nil, errors.NewLocatorIOError(c.root, err)
	}
	picked, ok := c.table.Pick(names)
	if !ok {
		return iter.FromSlice[target.Makefile](nil), nil
	}
	return iter.FromSlice([]target.Makefile{{ExecPath: c.root, FilePath: picked}}), nil
}

// Close releases the directory handle. Safe to call more than once and
// safe to call whether or not Iterator was ever called.
func (c *FlatContext) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dir.Close()
}
