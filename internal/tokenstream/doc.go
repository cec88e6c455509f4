// Package tokenstream provides the markable token stream the rule parser
// reads from, and the adapter that turns a single paragraph token's text
// back into a character stream for re-lexing. It is built on package
// markbuf exactly as package charstream is, parameterized on
// grammar.Token instead of rune.
//
// The one twist markbuf's generic contract doesn't cover on its own: the
// underlying lexer signals end of input with an in-band TokenEOF token
// rather than plain iterator exhaustion (see grammar.ParagraphLexer). That
// token is cached like any other buffered item, so once it has been seen,
// repeated lookahead or seeks to its position never re-invoke the lexer.
package tokenstream
