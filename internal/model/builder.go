package model

import "github.com/sdlcforge/makefwd/internal/target"

// Builder constructs a ForwardingModel from the targets discovered in each
// subdirectory Makefile.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build aggregates dirs into a ForwardingModel, assigning each Directory's
// DiscoveryOrder from its position in dirs and detecting any target name
// declared in two or more directories. dirs is consumed in the order the
// caller discovered them; that order is what --keep-order-dirs preserves.
func (b *Builder) Build(dirs []Directory) *ForwardingModel {
	model := &ForwardingModel{
		Directories: make([]Directory, len(dirs)),
	}

	nameToDirs := make(map[string][]target.Makefile)
	var nameOrder []string
	seenName := make(map[string]bool)

	for i, d := range dirs {
		d.DiscoveryOrder = i
		model.Directories[i] = d

		for _, t := range d.Targets {
			nameToDirs[t.Path] = append(nameToDirs[t.Path], d.Makefile)
			if !seenName[t.Path] {
				seenName[t.Path] = true
				nameOrder = append(nameOrder, t.Path)
			}
		}
	}

	for _, name := range nameOrder {
		mfs := nameToDirs[name]
		if len(mfs) < 2 {
			continue
		}
		model.Collisions = append(model.Collisions, Collision{
			Name:        name,
			Directories: mfs,
		})
	}

	return model
}
