// Package makegrammar is the concrete grammar the production binary feeds
// into internal/pipeline: a ParagraphLexer, RuleLexer and RuleParser over
// real `make --print-data-base` output, once internal/dbfilter has already
// cut that output down to the "Files" section.
//
// spec.md treats these grammars as given, generated ANTLR collaborators
// and out of scope; no such generated artifact was available to retrieve,
// so this package supplies a small hand-written stand-in with the same
// shape grammar.ParagraphLexer/RuleLexer/RuleParser require, built for
// real rule syntax rather than grammartest's test-fixture subset. It
// handles `target: prereq | order-only` headers, double-colon rules, '#'
// comment lines and tab-introduced recipe lines. Static pattern rules,
// target-specific variable assignments and backslash-continued
// prerequisite lists get no special treatment: their extra ':', '=' and
// '\' are read as ordinary header tokens.
package makegrammar
