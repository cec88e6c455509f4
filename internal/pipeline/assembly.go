package pipeline

import (
	"io"

	"github.com/sdlcforge/makefwd/internal/charstream"
	"github.com/sdlcforge/makefwd/internal/dbfilter"
	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/grammar"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/target"
	"github.com/sdlcforge/makefwd/internal/tokenstream"
)

// Mode selects which pipeline assembly Build wires together. All three
// produce the same sequence of target.Target values; they differ only in
// how eagerly each stage is materialized.
type Mode int

const (
	// ModeStreaming never holds more than one item of any stage in memory
	// at a time.
	ModeStreaming Mode = iota

	// ModeBuffered fully drains every stage into a slice before feeding
	// the next.
	ModeBuffered

	// ModeBalanced streams the dump-sized stages and materializes only
	// the final target list.
	ModeBalanced
)

// Grammar bundles the three external-grammar collaborators the pipeline
// treats as an opaque boundary (component design, "grammar boundary"):
// callers supply concrete lexers and a parser; the pipeline only ever
// drives them through the grammar package's interfaces.
type Grammar struct {
	Paragraph grammar.ParagraphLexer
	Rule      grammar.RuleLexer
	Parser    grammar.RuleParser
}

// Build assembles the full pipeline over r (the character content of a
// `make -np` database dump) using the given mode, and attaches mf to every
// Target it emits.
func Build(mode Mode, r io.Reader, g Grammar, mf target.Makefile) (iter.Iterator[target.Target], error) {
	lines := filteredLines(NewLineSource(r))

	switch mode {
	case ModeBuffered:
		return buildBuffered(lines, g, mf)
	case ModeBalanced:
		return buildBalanced(lines, g, mf)
	default:
		return buildStreaming(lines, g, mf), nil
	}
}

// filteredLines chains the three line-level filters in the fixed order the
// database dump's shape requires: the database-section filter must run
// before the file-section filter, since the file section's start anchor
// can otherwise appear verbatim inside recipe text preceding the database
// proper.
func filteredLines(src iter.Iterator[dbline.Line]) iter.Iterator[dbline.Line] {
	afterDB := iter.NewConditionFilter[dbline.Line](src, dbfilter.NewDatabaseSectionFilter())
	afterFile := iter.NewConditionFilter[dbline.Line](afterDB, dbfilter.NewFileSectionFilter())
	return iter.NewConditionFilter[dbline.Line](afterFile, dbfilter.NewInformationalCommentFilter())
}

// buildStreaming wires every remaining stage lazily: each adapter pulls
// from the one before it on demand, and nothing downstream of the line
// source is ever fully materialized.
func buildStreaming(lines iter.Iterator[dbline.Line], g Grammar, mf target.Makefile) *target.Emitter {
	cs := charstream.New(lines)
	paragraphs := tokenstream.NewFromParagraphLexer(g.Paragraph, cs)
	chars2 := charstream.NewFromRunes(tokenstream.NewTokenToCharAdapter(paragraphs))
	rules := tokenstream.NewFromRuleLexer(g.Rule, chars2)
	return target.NewEmitter(g.Parser, rules, mf)
}

// buildBuffered drains each stage into a slice before constructing the
// next, trading memory for an assembly whose intermediate results are
// plain, inspectable values.
func buildBuffered(lines iter.Iterator[dbline.Line], g Grammar, mf target.Makefile) (iter.Iterator[target.Target], error) {
	lineSlice, err := iter.Drain[dbline.Line](lines)
	if err != nil {
		return nil, err
	}

	cs := charstream.New(iter.FromSlice(lineSlice))
	paragraphs := tokenstream.NewFromParagraphLexer(g.Paragraph, cs)
	paragraphTokens, err := drainTokens(paragraphs)
	if err != nil {
		return nil, err
	}

	replay := tokenstream.NewFromParagraphLexer(newReplayParagraphLexer(paragraphTokens), nil)
	runes, err := iter.Drain[rune](tokenstream.NewTokenToCharAdapter(replay))
	if err != nil {
		return nil, err
	}

	chars2 := charstream.NewFromRunes(iter.FromSlice(runes))
	rules := tokenstream.NewFromRuleLexer(g.Rule, chars2)
	emitter := target.NewEmitter(g.Parser, rules, mf)

	targets, err := iter.Drain[target.Target](emitter)
	if err != nil {
		return nil, err
	}
	return iter.FromSlice(targets), nil
}

// buildBalanced streams the line source, the three line filters, the first
// character stream, and the paragraph lexer (stages sized with the raw
// database dump), then buffers the paragraph-token output before handing
// it to the rule lexer: paragraphs are small and bounded, unlike the dump
// they were cut from, so materializing them costs little and simplifies
// everything downstream. This split is a tuning choice the spec leaves
// open, not a contract: moving the boundary does not change the resulting
// iter.Iterator[target.Target] for any caller.
func buildBalanced(lines iter.Iterator[dbline.Line], g Grammar, mf target.Makefile) (iter.Iterator[target.Target], error) {
	cs := charstream.New(lines)
	paragraphs := tokenstream.NewFromParagraphLexer(g.Paragraph, cs)
	paragraphTokens, err := drainTokens(paragraphs)
	if err != nil {
		return nil, err
	}

	replay := tokenstream.NewFromParagraphLexer(newReplayParagraphLexer(paragraphTokens), nil)
	chars2 := charstream.NewFromRunes(tokenstream.NewTokenToCharAdapter(replay))
	rules := tokenstream.NewFromRuleLexer(g.Rule, chars2)
	return target.NewEmitter(g.Parser, rules, mf), nil
}
