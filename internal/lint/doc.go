// Package lint inspects a built ForwardingModel for problems the generator
// can't safely paper over. Its shape is adapted from the teacher's own
// lint package: a registry of named Checks, each a CheckFunc producing
// Warnings, run together by Run.
//
// The teacher's Warning/CheckContext described a directive-based help
// Makefile (file, line, phony/alias/doc bookkeeping) that has no
// equivalent here, so this package defines its own, narrower Warning tied
// to a ForwardingModel. The teacher's line-indexed Fix/FixOperation/Fixer
// trio, which patches specific lines of a hand-maintained file, also has
// no natural referent: makefwd's forwarding rules are always regenerated
// wholesale (see internal/generator), never hand-edited, so there is
// nothing to surgically patch. PrefixFixer replaces it with a fix that
// operates on the ForwardingModel directly.
package lint
