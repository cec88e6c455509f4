package tokenstream

import (
	"errors"

	makeerrors "github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/grammar"
	"github.com/sdlcforge/makefwd/internal/markbuf"
)

// Stream is a markable token stream, the concrete implementation behind
// grammar.TokenSource. It is driven lazily by a lexer reading from a
// character stream; see NewFromParagraphLexer and NewFromRuleLexer.
type Stream struct {
	buf *markbuf.Buffer[grammar.Token]
}

// NewFromParagraphLexer returns a Stream of paragraph tokens lexed from cs.
func NewFromParagraphLexer(lex grammar.ParagraphLexer, cs grammar.CharStream) *Stream {
	return &Stream{buf: markbuf.New[grammar.Token](newLexerSource(lex.NextToken, cs))}
}

// NewFromRuleLexer returns a Stream of rule tokens lexed from cs.
func NewFromRuleLexer(lex grammar.RuleLexer, cs grammar.CharStream) *Stream {
	return &Stream{buf: markbuf.New[grammar.Token](newLexerSource(lex.NextToken, cs))}
}

// LT returns the token k positions from the current read position without
// consuming it, implementing grammar.TokenSource's sentinel contract: a
// negative resolved index yields the zero Token, and an index past the
// last real token yields the cached EOF token rather than an error.
func (s *Stream) LT(k int) (grammar.Token, error) {
	tok, err := s.buf.LA(k)
	if err == nil {
		return tok, nil
	}

	var pastEnd *makeerrors.ReadPastEndError
	if errors.As(err, &pastEnd) {
		if pastEnd.Index < 0 {
			return grammar.Token{}, nil
		}
		if total, exhausted := s.buf.Total(); exhausted && total > 0 {
			return s.buf.ItemAt(total - 1)
		}
	}
	return grammar.Token{}, err
}

// Consume advances the read position by one token.
func (s *Stream) Consume() error {
	return s.buf.Consume()
}

// Mark retains the current read position until Release is called.
func (s *Stream) Mark() int {
	return s.buf.Mark()
}

// Release drops a hold placed by Mark.
func (s *Stream) Release(mark int) {
	s.buf.Release(mark)
}

// Seek moves the read position to an absolute token index. Seeking to the
// position of an already-seen TokenEOF token is cheap: it is an ordinary
// buffered item by that point, not a re-invocation of the lexer.
func (s *Stream) Seek(index int) error {
	return s.buf.Seek(index)
}

// Index returns the absolute index of the next unconsumed token.
func (s *Stream) Index() int {
	return s.buf.Index()
}
