package tokenstream

import (
	"github.com/sdlcforge/makefwd/internal/grammar"
)

// lexerSource adapts a grammar.ParagraphLexer or grammar.RuleLexer reading
// from a grammar.CharStream into an iter.Iterator[grammar.Token]. Once the
// lexer has produced its TokenEOF token, the adapter reports AtEnd without
// invoking the lexer again: the EOF token itself was already appended to
// the buffered window as an ordinary item by the caller (see
// markbuf.Buffer.pull), so nothing is lost by stopping the iterator there.
type lexerSource struct {
	lex func(grammar.CharStream) (grammar.Token, error)
	cs  grammar.CharStream

	cur     grammar.Token
	st      int // 0=start,1=intermediate,2=end
	eofSeen bool
}

const (
	lsStart = iota
	lsIntermediate
	lsEnd
)

func newLexerSource(lex func(grammar.CharStream) (grammar.Token, error), cs grammar.CharStream) *lexerSource {
	return &lexerSource{lex: lex, cs: cs, st: lsStart}
}

// Advance implements iter.Iterator.
func (s *lexerSource) Advance() error {
	if s.st == lsEnd {
		return nil
	}
	if s.eofSeen {
		s.st = lsEnd
		return nil
	}
	tok, err := s.lex(s.cs)
	if err != nil {
		return err
	}
	s.cur = tok
	s.st = lsIntermediate
	if tok.IsEOF() {
		s.eofSeen = true
	}
	return nil
}

// Current implements iter.Iterator.
func (s *lexerSource) Current() grammar.Token { return s.cur }

// HasCurrent implements iter.Iterator.
func (s *lexerSource) HasCurrent() bool { return s.st == lsIntermediate }

// AtStart implements iter.Iterator.
func (s *lexerSource) AtStart() bool { return s.st == lsStart }

// AtEnd implements iter.Iterator.
func (s *lexerSource) AtEnd() bool { return s.st == lsEnd }
