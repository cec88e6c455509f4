// Package config holds the resolved CLI configuration shape shared between
// internal/cli (which populates it from flags and the config file) and the
// service packages that act on it (internal/ordering, internal/app). Keeping
// it separate from internal/cli lets those service packages depend on the
// configuration without depending on flag parsing, which avoids an import
// cycle back into internal/cli.
package config

// ColorMode represents the color output mode for the CLI.
type ColorMode int

const (
	// ColorAuto enables color output when connected to a terminal.
	ColorAuto ColorMode = iota

	// ColorAlways forces color output regardless of terminal detection.
	ColorAlways

	// ColorNever disables color output.
	ColorNever
)

// String returns the string representation of ColorMode.
func (c ColorMode) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// Config holds all CLI configuration options.
type Config struct {
	// Global options

	// Root is the directory to search for subdirectory Makefiles.
	// Defaults to the current working directory.
	Root string

	// MakeExecutable is the path to the `make` binary invoked for every
	// discovered Makefile. Defaults to "make" (resolved via PATH).
	MakeExecutable string

	// ConfigFilePath overrides the automatic upward search for
	// .makefwd.yaml with an explicit file path.
	ConfigFilePath string

	// MakefilePriority orders candidate makefile filenames from lowest to
	// highest priority, passed to locator.NewPriorityTable. Defaults to
	// "Makefile", "GNUmakefile", "makefile" if unset.
	MakefilePriority []string

	// ExcludeDirs lists directory basenames to skip during discovery.
	ExcludeDirs []string

	// Mode selects the parse pipeline assembly: "streaming" (default),
	// "buffered", or "balanced".
	Mode string

	// ColorMode determines when to use colored output.
	ColorMode ColorMode

	// Verbose enables verbose output for debugging discovery and parsing.
	Verbose bool

	// Ordering options

	// KeepOrderDirs preserves directory discovery order instead of
	// alphabetical.
	KeepOrderDirs bool

	// KeepOrderTargets preserves target discovery order within a
	// directory instead of alphabetical.
	KeepOrderTargets bool

	// DirOrder specifies explicit directory ordering, keyed on each
	// directory Makefile's ExecPath. Directories not listed are appended
	// alphabetically.
	DirOrder []string

	// Output options

	// Format selects the report format: "text" (default), "json", or
	// "markdown". Ignored when generating a Makefile.
	Format string

	// List, when true, only reports discovered targets and collisions;
	// no forwarding Makefile is written.
	List bool

	// DryRun shows what would be written without touching any file.
	DryRun bool

	// Output is the path the forwarding rules are written to. If empty,
	// defaults to "Makefile" under Root. The rules are spliced into the
	// existing file rather than replacing it.
	Output string

	// Lint options

	// Lint runs the collision checks and reports warnings instead of (or
	// in addition to, see Fix) generating output.
	Lint bool

	// Fix renames colliding targets with a directory prefix instead of
	// just reporting them.
	Fix bool

	// Remove deletes a previously spliced forwarding block instead of
	// generating one.
	Remove bool

	// Derived state (computed at runtime)

	// UseColor is the resolved color setting based on ColorMode and
	// terminal detection.
	UseColor bool
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		ColorMode:        ColorAuto,
		MakeExecutable:   "make",
		Mode:             "streaming",
		Format:           "text",
		MakefilePriority: []string{"Makefile", "GNUmakefile", "makefile"},
	}
}
