package tokenstream

import "github.com/sdlcforge/makefwd/internal/grammar"

// TokenToCharAdapter flattens a paragraph token stream back into a rune
// stream: each non-EOF token's text is re-exposed character by character,
// followed by a newline (after the last token too) so the rule grammar
// can tell where one paragraph's text ends and the next begins. The EOF
// token is consumed but never itself re-emitted as characters.
type TokenToCharAdapter struct {
	src grammar.TokenSource

	runes []rune
	pos   int
	done  bool

	st  int
	cur rune
}

// NewTokenToCharAdapter returns a rune iterator over the paragraph tokens
// read from src, one token at a time via src.Consume.
func NewTokenToCharAdapter(src grammar.TokenSource) *TokenToCharAdapter {
	return &TokenToCharAdapter{src: src, st: lsStart}
}

// Advance implements iter.Iterator.
func (a *TokenToCharAdapter) Advance() error {
	if a.st == lsEnd {
		return nil
	}
	for a.pos >= len(a.runes) {
		if a.done {
			a.st = lsEnd
			return nil
		}
		if err := a.loadNextToken(); err != nil {
			return err
		}
	}
	a.cur = a.runes[a.pos]
	a.pos++
	a.st = lsIntermediate
	return nil
}

// loadNextToken pulls the next paragraph token and loads its text (plus a
// trailing newline separator) into the pending rune buffer. It sets done
// once the EOF token is reached.
func (a *TokenToCharAdapter) loadNextToken() error {
	tok, err := a.src.LT(1)
	if err != nil {
		return err
	}
	if tok.IsEOF() {
		a.done = true
		return nil
	}
	if err := a.src.Consume(); err != nil {
		return err
	}
	a.runes = append([]rune(tok.Text), '\n')
	a.pos = 0
	return nil
}

// Current implements iter.Iterator.
func (a *TokenToCharAdapter) Current() rune { return a.cur }

// HasCurrent implements iter.Iterator.
func (a *TokenToCharAdapter) HasCurrent() bool { return a.st == lsIntermediate }

// AtStart implements iter.Iterator.
func (a *TokenToCharAdapter) AtStart() bool { return a.st == lsStart }

// AtEnd implements iter.Iterator.
func (a *TokenToCharAdapter) AtEnd() bool { return a.st == lsEnd }
