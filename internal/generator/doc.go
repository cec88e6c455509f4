// Package generator writes the forwarding rules makefwd discovers into a
// Makefile, adapted from the teacher's target package: AtomicWriteFile's
// write-to-temp-then-rename idiom (file.go) and the generated-by marker
// line add.go used to recognize and safely regenerate its own prior
// output. Where the teacher generates a whole separate included file,
// this package also supports splicing a single marked block into an
// existing Makefile in place, since makefwd's forwarding rules are meant
// to live alongside a project's own root Makefile rather than always
// requiring a new include.
package generator
