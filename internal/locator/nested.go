package locator

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/target"
)

// NestedLocator walks a directory tree top-down, yielding a Makefile
// descriptor for every directory (other than the root) whose best
// candidate filename is present. A directory with no matching filename is
// pruned: its subtree is never visited, even if a deeper descendant would
// otherwise match.
type NestedLocator struct {
	priorities PriorityTable
}

// NewNestedLocator returns a NestedLocator using priorities.
func NewNestedLocator(priorities PriorityTable) *NestedLocator {
	return &NestedLocator{priorities: priorities}
}

// NestedContext is the scoped resource handle a NestedLocator hands out.
// Acquiring it opens the root directory to confirm it is readable; Close
// releases that handle.
type NestedContext struct {
	root    string
	table   PriorityTable
	rootDir *os.File
	closed  bool
}

// Acquire opens root and returns a scoped context over it.
func (l *NestedLocator) Acquire(root string) (*NestedContext, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.NewLocatorIOError(root, err)
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, errors.NewLocatorIOError(abs, err)
	}
	return &NestedContext{root: abs, table: l.priorities, rootDir: f}, nil
}

// Iterator returns a lazy, pruning, top-down walk of the tree rooted at
// the acquired directory.
func (c *NestedContext) Iterator() *nestedIterator {
	return &nestedIterator{root: c.root, table: c.table, stack: []string{c.root}}
}

// Close releases the root directory handle. Safe to call more than once.
func (c *NestedContext) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.rootDir.Close()
}

type nestedIterator struct {
	root  string
	table PriorityTable
	stack []string

	st  int // 0=start,1=intermediate,2=end
	cur target.Makefile
}

const (
	nestedStart = iota
	nestedIntermediate
	nestedEnd
)

// Advance implements iter.Iterator.
func (n *nestedIterator) Advance() error {
	if n.st == nestedEnd {
		return nil
	}
	for len(n.stack) > 0 {
		dir := n.stack[len(n.stack)-1]
		n.stack = n.stack[:len(n.stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			return errors.NewLocatorIOError(dir, err)
		}

		var subdirs, filenames []string
		for _, e := range entries {
			if e.IsDir() {
				subdirs = append(subdirs, e.Name())
			} else {
				filenames = append(filenames, e.Name())
			}
		}
		sort.Strings(subdirs)

		picked, ok := n.table.Pick(filenames)
		if !ok {
			// Prune: do not descend into this directory's subtree.
			continue
		}

		for i := len(subdirs) - 1; i >= 0; i-- {
			n.stack = append(n.stack, filepath.Join(dir, subdirs[i]))
		}

		if dir == n.root {
			// The root itself is never emitted, only ever walked.
			continue
		}

		n.cur = target.Makefile{ExecPath: dir, FilePath: picked}
		n.st = nestedIntermediate
		return nil
	}
	n.st = nestedEnd
	n.cur = target.Makefile{}
	return nil
}

// Current implements iter.Iterator.
func (n *nestedIterator) Current() target.Makefile { return n.cur }

// HasCurrent implements iter.Iterator.
func (n *nestedIterator) HasCurrent() bool { return n.st == nestedIntermediate }

// AtStart implements iter.Iterator.
func (n *nestedIterator) AtStart() bool { return n.st == nestedStart }

// AtEnd implements iter.Iterator.
func (n *nestedIterator) AtEnd() bool { return n.st == nestedEnd }
