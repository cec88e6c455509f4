package grammar

// CharStream is the read surface a Lexer needs. Both package charstream's
// Stream and the hand-written fakes in grammartest satisfy it structurally;
// grammar never imports charstream, keeping the dependency arrow pointing
// from charstream/tokenstream toward grammar and not back.
type CharStream interface {
	LA(k int) (rune, error)
	Consume() error
	Mark() int
	Release(mark int)
	Seek(index int) error
	Index() int
	GetText(start, stop int) (string, error)
}

// TokenSource is the read surface a Parser needs from a token stream.
// Package tokenstream's Stream satisfies it.
//
// LT never fails on mere over- or under-run: a lookahead offset resolving
// to a negative global index returns the zero Token (no token exists
// there, matching known ANTLR runtime behavior); an offset past the last
// real token returns the in-band EOF token the lexer already produced and
// cached. A non-nil error here means the lexer itself failed.
type TokenSource interface {
	LT(k int) (Token, error)
	Consume() error
	Mark() int
	Release(mark int)
	Seek(index int) error
	Index() int
}

// ParagraphLexer splits a database listing's character stream into
// paragraph-level tokens: the coarse units (a variable's name-and-origin
// line plus its value, a target's header plus its prerequisites and
// recipe) that the rule parser then re-lexes internally. NextToken returns
// a TokenEOF token, not an error, once the stream is exhausted; it must be
// safe to call again after that and return the same EOF token.
type ParagraphLexer interface {
	NextToken(cs CharStream) (Token, error)
}

// RuleLexer re-lexes the paragraph tokens' reconstituted text into the
// finer tokens (target name, colon, prerequisite, recipe line) a RuleParser
// consumes. Like ParagraphLexer, it signals exhaustion with an in-band
// TokenEOF token.
type RuleLexer interface {
	NextToken(cs CharStream) (Token, error)
}

// RuleContext is the parse result for a single paragraph: everything the
// core needs to build a target.Target, without the core needing to know
// the grammar's internal tree shape.
type RuleContext interface {
	// IsTarget reports whether this paragraph parsed as a target rule
	// (false for a variable assignment or a rule the core doesn't model).
	IsTarget() bool

	// TargetNames returns every name this rule's header fan-out declares
	// (a single rule with multiple targets shares one recipe).
	TargetNames() []string

	// Prerequisites returns the normal prerequisite names listed after the
	// colon, before any '|'.
	Prerequisites() []string

	// OrderOnlyPrerequisites returns the prerequisite names listed after
	// '|'.
	OrderOnlyPrerequisites() []string

	// Recipe returns the raw recipe line tokens' text exactly as the
	// grammar produced it, untrimmed.
	Recipe() []string
}

// RuleParser consumes the finer token stream a RuleLexer produces and
// builds one RuleContext per paragraph. It returns ParseCancelledError
// (package errors) once input is exhausted; this is a sentinel, not a
// pipeline failure.
type RuleParser interface {
	ParseRule(ts TokenSource) (RuleContext, error)
}
