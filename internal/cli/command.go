package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// setupFlags configures flags on a Cobra command and binds them to a
// Config. This allows reusing the same flag setup logic for both the
// top-level command and any future subcommand.
func setupFlags(cmd *cobra.Command, config *Config) {
	var noColor bool
	var forceColor bool

	// Mode flags
	cmd.Flags().BoolVar(&config.Lint,
		"lint", false, "Check discovered targets for cross-directory name collisions")
	cmd.Flags().BoolVar(&config.Fix,
		"fix", false, "Rename colliding targets with a directory prefix (requires --lint)")
	cmd.Flags().BoolVar(&config.Remove,
		"remove", false, "Remove a previously generated forwarding block instead of writing one")
	cmd.Flags().BoolVar(&config.List,
		"list", false, "Report discovered targets and collisions; write nothing")
	cmd.Flags().BoolVar(&config.DryRun,
		"dry-run", false, "Show what would be written without touching any file")

	// Input flags
	cmd.PersistentFlags().StringVar(&config.Root,
		"root", "", "Directory to search for subdirectory Makefiles (defaults to the current directory)")
	cmd.Flags().StringVar(&config.MakeExecutable,
		"make-executable", config.MakeExecutable, "Path to the make executable invoked for each discovered Makefile")
	cmd.Flags().StringVar(&config.ConfigFilePath,
		"config-file", "", "Path to a custom .makefwd.yaml, skipping the automatic upward search")
	cmd.Flags().StringSliceVar(&config.MakefilePriority,
		"makefile-priority", config.MakefilePriority, "Candidate makefile filenames, lowest priority first")
	cmd.Flags().StringSliceVar(&config.ExcludeDirs,
		"exclude-dir", nil, "Directory basenames to skip during discovery (repeatable, comma-separated)")
	cmd.Flags().StringVar(&config.Mode,
		"mode", config.Mode, "Parse pipeline assembly: streaming, buffered, or balanced")

	// Output/formatting flags
	cmd.Flags().StringVar(&config.Format,
		"format", config.Format, "Report format for --list: text, json, or markdown")
	cmd.Flags().StringVar(&config.Output,
		"output", "", "Path the forwarding rules are spliced into (defaults to Root/Makefile)")
	cmd.PersistentFlags().BoolVar(&forceColor,
		"color", false, "Force colored output")
	cmd.PersistentFlags().BoolVar(&noColor,
		"no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&config.KeepOrderDirs,
		"keep-order-dirs", false, "Preserve directory discovery order instead of alphabetical")
	cmd.Flags().BoolVar(&config.KeepOrderTargets,
		"keep-order-targets", false, "Preserve target discovery order within a directory instead of alphabetical")
	cmd.Flags().StringSliceVar(&config.DirOrder,
		"dir-order", nil, "Explicit directory order, keyed on each directory's absolute path (comma-separated)")

	// Misc flags
	cmd.PersistentFlags().BoolVarP(&config.Verbose,
		"verbose", "v", false, "Enable verbose output for debugging discovery and parsing")
}

// processFlagsAfterParse processes flags that need special handling after
// Cobra parsing, mirroring the teacher's color-flag resolution.
func processFlagsAfterParse(cmd *cobra.Command, config *Config) error {
	noColor := cmd.Flags().Lookup("no-color").Changed
	forceColor := cmd.Flags().Lookup("color").Changed

	if noColor && forceColor {
		return fmt.Errorf("cannot use both --color and --no-color flags")
	}

	if forceColor {
		config.ColorMode = ColorAlways
	} else if noColor {
		config.ColorMode = ColorNever
	} else {
		config.ColorMode = ColorAuto
	}

	return nil
}
