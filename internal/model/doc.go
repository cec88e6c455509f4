// Package model defines the aggregate view the rest of the tool renders
// and generates from: a ForwardingModel groups the targets discovered in
// every subdirectory Makefile and flags any target name two or more
// directories share, since a shared name would make a forwarded
// `make <target>` from the root ambiguous.
//
// # Data Model
//
// The model hierarchy is:
//
//	ForwardingModel
//	├── Directories []Directory
//	│   ├── Makefile target.Makefile
//	│   └── Targets  []target.Target
//	└── Collisions []Collision  // target names shared by 2+ Directories
//
// # Discovery Order
//
// Directory carries a DiscoveryOrder field recording the order the locator
// first produced it, the same role the teacher's Category.DiscoveryOrder
// played for --keep-order-categories; here it backs --keep-order-dirs.
package model
