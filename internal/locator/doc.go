// Package locator discovers makefiles on disk: a flat locator for a single
// directory and a nested locator that walks a directory tree, pruning
// subtrees that don't contain a matching filename. Both strategies share
// one priority table and expose a scoped iterator context so the
// directory handles they open are always closed, on every exit path.
package locator
