package ordering

import (
	"sort"
	"strings"

	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

// sortDirectoriesAlphabetically sorts directories by their makefile's
// ExecPath in ascending order. Case-insensitive comparison is used for
// natural sorting.
func sortDirectoriesAlphabetically(dirs []model.Directory) {
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Makefile.ExecPath) < strings.ToLower(dirs[j].Makefile.ExecPath)
	})
}

// sortDirectoriesByDiscoveryOrder sorts directories by their discovery
// order. This preserves the order in which directories were first
// encountered during discovery.
func sortDirectoriesByDiscoveryOrder(dirs []model.Directory) {
	sort.Slice(dirs, func(i, j int) bool {
		return dirs[i].DiscoveryOrder < dirs[j].DiscoveryOrder
	})
}

// applyExplicitDirOrder applies an explicit directory order, keyed on each
// directory's ExecPath. Directories named in order are placed first (in
// the specified order), and remaining directories are appended
// alphabetically. Returns an error if any name in order is not a
// discovered directory.
func applyExplicitDirOrder(fm *model.ForwardingModel, order []string) error {
	dirMap := make(map[string]model.Directory, len(fm.Directories))
	for _, d := range fm.Directories {
		dirMap[d.Makefile.ExecPath] = d
	}

	for _, name := range order {
		if _, exists := dirMap[name]; !exists {
			available := make([]string, 0, len(dirMap))
			for path := range dirMap {
				available = append(available, path)
			}
			sort.Strings(available)
			return errors.NewUnknownDirOrderError(name, available)
		}
	}

	ordered := make([]model.Directory, 0, len(fm.Directories))
	used := make(map[string]bool)

	for _, name := range order {
		if d, exists := dirMap[name]; exists && !used[name] {
			ordered = append(ordered, d)
			used[name] = true
		}
	}

	remaining := make([]model.Directory, 0)
	for _, d := range fm.Directories {
		if !used[d.Makefile.ExecPath] {
			remaining = append(remaining, d)
		}
	}
	sortDirectoriesAlphabetically(remaining)
	ordered = append(ordered, remaining...)

	fm.Directories = ordered
	return nil
}

// sortTargetsAlphabetically sorts targets by path in ascending order.
// Case-insensitive comparison is used for natural sorting.
func sortTargetsAlphabetically(targets []target.Target) {
	sort.Slice(targets, func(i, j int) bool {
		return strings.ToLower(targets[i].Path) < strings.ToLower(targets[j].Path)
	})
}
