package makegrammar

import (
	"strings"

	"github.com/sdlcforge/makefwd/internal/grammar"
)

// TokenParagraph marks a paragraph token: a run of text up to (but not
// including) a blank line, mirroring how `make -p` separates each rule's
// header, prerequisites and recipe from the next.
const TokenParagraph grammar.TokenType = 100

// ParagraphLexer groups characters into paragraphs separated by a blank
// line and emits a TokenEOF token once the stream is exhausted, caching
// that fact so NextToken is safe to call again.
type ParagraphLexer struct {
	eofReached bool
}

// NewParagraphLexer returns a fresh ParagraphLexer.
func NewParagraphLexer() *ParagraphLexer { return &ParagraphLexer{} }

// NextToken implements grammar.ParagraphLexer.
func (l *ParagraphLexer) NextToken(cs grammar.CharStream) (grammar.Token, error) {
	if l.eofReached {
		return grammar.Token{Type: grammar.TokenEOF}, nil
	}

	start := cs.Index()

	for {
		r, err := cs.LA(1)
		if err != nil {
			l.eofReached = true
			return grammar.Token{Type: grammar.TokenEOF, CharStart: start, CharStop: start - 1}, nil
		}
		if r != '\n' {
			break
		}
		if err := cs.Consume(); err != nil {
			return grammar.Token{}, err
		}
		start = cs.Index()
	}

	var sb strings.Builder
	stop := start - 1
	for {
		r, err := cs.LA(1)
		if err != nil {
			l.eofReached = true
			break
		}
		if r == '\n' {
			next, err2 := cs.LA(2)
			if err2 != nil {
				if err := cs.Consume(); err != nil {
					return grammar.Token{}, err
				}
				stop = cs.Index() - 1
				l.eofReached = true
				break
			}
			if next == '\n' {
				if err := cs.Consume(); err != nil {
					return grammar.Token{}, err
				}
				stop = cs.Index() - 1
				break
			}
		}
		sb.WriteRune(r)
		if err := cs.Consume(); err != nil {
			return grammar.Token{}, err
		}
		stop = cs.Index() - 1
	}

	return grammar.Token{
		Type:      TokenParagraph,
		Text:      sb.String(),
		CharStart: start,
		CharStop:  stop,
	}, nil
}
