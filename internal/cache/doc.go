// Package cache stores, on disk, the last target listing discovered for
// each makefile so repeated runs of makefwd can skip re-invoking `make
// -np` for directories whose makefile content has not changed. Entries
// are keyed by the makefile's absolute path; invalidation compares a
// github.com/cespare/xxhash/v2 fingerprint of the makefile's current
// bytes against the fingerprint recorded when the entry was written,
// rather than reaching for crypto/sha256 for what is a non-adversarial,
// purely local invalidation check.
package cache
