// Package ordering applies sorting rules to directories and targets.
//
// It supports three ordering strategies:
//   - Alphabetical (default)
//   - Discovery order (--keep-order-* flags)
//   - Explicit order (--dir-order flag)
//
// # Ordering Strategies
//
// Alphabetical ordering sorts directories and targets by name using
// case-insensitive string comparison.
//
// Discovery order preserves the order in which directories and targets
// were first encountered during discovery. This is useful when the
// locator's priority table has already put makefiles in a meaningful
// order.
//
// Explicit ordering allows specifying exact directory order via
// --dir-order. Directories not in the list are appended alphabetically.
//
// # Strategy Selection
//
// The package uses the strategy pattern to select the appropriate sorting
// algorithm based on configuration flags:
//   - --keep-order-dirs: use discovery order for directories
//   - --keep-order-targets: use discovery order for targets within a directory
//   - --dir-order: explicit directory order (overrides --keep-order-dirs)
package ordering
