// Package pipeline wires the line source, the three line-level filters,
// the character- and token-stream adapters, and the target emitter into
// one assembly, in the order fixed by the parse pipeline's stage list: raw
// line source -> database-section filter -> file-section filter ->
// informational-comment filter -> character stream -> paragraph lexer ->
// token-to-character adapter -> second character stream -> rule lexer ->
// rule parser -> target emitter.
//
// Three assemblies are offered behind the same Build entry point:
//
//   - ModeStreaming never materializes more than one item of any stage at
//     a time; it is the default and the cheapest on memory for a large
//     database dump.
//   - ModeBuffered fully drains every stage before feeding the next,
//     trading memory for an assembly that is trivial to reason about and
//     to re-run.
//   - ModeBalanced streams the dump-sized stages (line source through the
//     paragraph lexer) but buffers the paragraph-token output before the
//     rule lexer, since paragraphs are small and bounded unlike the dump
//     they were cut from. Which stages land on which side of that line is
//     an implementation choice, not a contract any caller may depend on.
package pipeline
