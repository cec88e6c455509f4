package lint

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

// FixResult reports what PrefixFixer changed.
type FixResult struct {
	// TotalFixed is the number of target names renamed.
	TotalFixed int

	// Renamed maps a directory's ExecPath to the new, prefixed names of
	// the targets it had renamed.
	Renamed map[string][]string
}

// PrefixFixer resolves target-collision warnings by renaming every
// colliding target to "<dir>-<name>", where <dir> is the base name of the
// directory that defines it. Unlike the teacher's line-patch Fixer, this
// operates on the in-memory ForwardingModel rather than a hand-maintained
// file: makefwd's forwarding block is always regenerated wholesale and
// spliced back between its markers (see internal/generator), so there is
// no block content to preserve around a surgical edit.
type PrefixFixer struct{}

// Apply returns a new ForwardingModel with every colliding target renamed,
// and a FixResult describing what changed. The returned model has no
// remaining collisions among the renamed targets, unless a rename itself
// introduces a new clash (two directories sharing the same base name),
// which is reported back to the caller as a leftover Collision instead of
// being silently dropped.
func (PrefixFixer) Apply(fm *model.ForwardingModel) (*model.ForwardingModel, *FixResult) {
	collided := make(map[string]bool, len(fm.Collisions))
	for _, c := range fm.Collisions {
		collided[c.Name] = true
	}

	result := &FixResult{Renamed: make(map[string][]string)}

	fixed := &model.ForwardingModel{
		Directories: make([]model.Directory, len(fm.Directories)),
	}

	for i, dir := range fm.Directories {
		newDir := dir
		newDir.Targets = make([]target.Target, len(dir.Targets))
		base := filepath.Base(dir.Makefile.ExecPath)

		for j, tgt := range dir.Targets {
			newTgt := tgt
			if collided[tgt.Path] {
				newTgt.Path = fmt.Sprintf("%s-%s", base, tgt.Path)
				result.Renamed[dir.Makefile.ExecPath] = append(result.Renamed[dir.Makefile.ExecPath], newTgt.Path)
				result.TotalFixed++
			}
			newDir.Targets[j] = newTgt
		}

		fixed.Directories[i] = newDir
	}

	for execPath := range result.Renamed {
		sort.Strings(result.Renamed[execPath])
	}

	builder := model.NewBuilder()
	rebuilt := builder.Build(fixed.Directories)
	return rebuilt, result
}
