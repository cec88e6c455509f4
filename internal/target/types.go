package target

// Makefile is a (exec_path, file_path) pair: the absolute directory in
// which `make` would be run, and the filename relative to it. Equality is
// structural, so two descriptors naming the same directory and filename
// compare equal regardless of which locator produced them.
type Makefile struct {
	// ExecPath is the absolute, canonicalized directory make would run in.
	ExecPath string

	// FilePath is the makefile's filename, relative to ExecPath.
	FilePath string
}

// Target is the pipeline's emitted record: one real target, its path, its
// normal and order-only prerequisites, its recipe lines, and the Makefile
// it was discovered in. Targets are value objects — once emitted they are
// immutable, and nothing downstream mutates them in place.
type Target struct {
	// Path is the target's identifier text.
	Path string

	// Prerequisites is the ordered list of normal prerequisite names.
	// Possibly empty; duplicates are preserved; order is significant.
	Prerequisites []string

	// OrderOnlyPrerequisites is the ordered list of prerequisite names
	// listed after '|'. Same shape as Prerequisites.
	OrderOnlyPrerequisites []string

	// RecipeLines is the ordered list of recipe lines, each with at most
	// one trailing tab and then at most one trailing newline stripped.
	RecipeLines []string

	// Makefile is the descriptor for the makefile this target was
	// discovered in.
	Makefile Makefile
}
