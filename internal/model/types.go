package model

import "github.com/sdlcforge/makefwd/internal/target"

// ForwardingModel is the aggregate view the formatters render and the
// generator writes from: every subdirectory Makefile discovered, the
// targets found in it, and any target names that collide across two or
// more directories.
type ForwardingModel struct {
	// Directories contains one entry per discovered subdirectory Makefile.
	Directories []Directory

	// Collisions lists target names shared by two or more Directories. A
	// forwarded `make <target>` from the root is ambiguous for any of
	// these until the conflict is resolved (see internal/lint).
	Collisions []Collision
}

// Directory is the set of targets discovered in a single subdirectory
// Makefile.
type Directory struct {
	// Makefile identifies the file the targets below were discovered in.
	Makefile target.Makefile

	// Targets contains every target discovered in this Makefile, in
	// discovery order.
	Targets []target.Target

	// DiscoveryOrder tracks when this directory was first encountered
	// (used for --keep-order-dirs).
	DiscoveryOrder int
}

// Collision records a target name shared by two or more directories.
type Collision struct {
	// Name is the colliding target name.
	Name string

	// Directories lists, in discovery order, every directory whose
	// Makefile declares a target named Name.
	Directories []target.Makefile
}

// HasCollisions reports whether the model found any cross-directory
// target name collisions.
func (m ForwardingModel) HasCollisions() bool {
	return len(m.Collisions) > 0
}
