package pipeline

import "github.com/sdlcforge/makefwd/internal/grammar"

// replayParagraphLexer re-presents an already-lexed slice of paragraph
// tokens as a grammar.ParagraphLexer, ignoring the character stream it is
// handed. The buffered assembly uses it to materialize the paragraph-lex
// stage into a plain slice before handing it to the token-to-character
// adapter, without inventing a second kind of token source for replay.
type replayParagraphLexer struct {
	tokens []grammar.Token
	idx    int
	eof    grammar.Token
}

func newReplayParagraphLexer(tokens []grammar.Token) *replayParagraphLexer {
	return &replayParagraphLexer{tokens: tokens, eof: grammar.Token{Type: grammar.TokenEOF}}
}

// NextToken implements grammar.ParagraphLexer.
func (l *replayParagraphLexer) NextToken(grammar.CharStream) (grammar.Token, error) {
	if l.idx >= len(l.tokens) {
		return l.eof, nil
	}
	tok := l.tokens[l.idx]
	l.idx++
	return tok, nil
}

// drainTokens pulls every non-EOF token out of src via the LT/Consume
// protocol, stopping at (but not consuming past) the in-band EOF token.
func drainTokens(src grammar.TokenSource) ([]grammar.Token, error) {
	var out []grammar.Token
	for {
		tok, err := src.LT(1)
		if err != nil {
			return out, err
		}
		if tok.IsEOF() {
			return out, nil
		}
		out = append(out, tok)
		if err := src.Consume(); err != nil {
			return out, err
		}
	}
}
