// Package cli provides the command-line interface for makefwd using Cobra.
//
// This package handles argument parsing, flag validation, terminal
// detection, and delegates to internal/app for actual functionality. It is
// the only package that interacts with os.Args and stdout/stderr.
//
// # Operation selection
//
// makefwd has a single command with no subcommands; the operation it
// performs is selected by flag combination:
//   - (default): discover subdirectory Makefiles and splice forwarding
//     rules into the root Makefile.
//   - --list: report discovered targets and collisions without writing
//     anything.
//   - --dry-run: render what would be spliced, without writing it.
//   - --lint: run collision checks and report warnings; combine with
//     --fix to rename colliding targets instead of just reporting them.
//   - --remove: delete a previously spliced forwarding block.
//
// # Color Detection
//
// Color output is automatically enabled when stdout is a terminal. This
// can be overridden with --color (force on) or --no-color (force off).
// When output is piped, colors are disabled by default.
//
// # Configuration
//
// The Config struct holds all CLI configuration and is passed to service
// packages. It includes both user-provided flags and derived state
// computed at runtime (e.g., UseColor). An optional .makefwd.yaml found
// by walking up from Root supplies defaults for flags left unset.
package cli
