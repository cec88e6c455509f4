// Package discovery finds subdirectory Makefiles under a root directory
// and extracts the targets each one declares.
//
// It pairs internal/locator, which walks the directory tree looking for
// candidate Makefile filenames, with internal/pipeline, which parses the
// `make -np` database dump each discovered Makefile produces when
// invoked. All external `make` invocations use a context with a timeout
// to prevent indefinite hangs on a malformed or pathological Makefile.
//
// # Discovery
//
// Service.Discover finds every subdirectory Makefile by:
//  1. Walking the tree with a locator.NestedLocator, pruning any subtree
//     whose directory has no candidate filename.
//  2. Running `make -C <dir> -f <file> -np` in each matching directory.
//  3. Feeding the database dump through internal/pipeline to recover its
//     target.Target values.
//
// # Timeouts
//
// Every `make -np` invocation uses a 30-second timeout to prevent
// indefinite hangs on malformed or pathological Makefiles.
package discovery
