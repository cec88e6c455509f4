package charstream

import (
	"strings"

	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/markbuf"
)

// Stream is a markable character stream over an iter.Iterator[dbline.Line].
// It is the concrete implementation behind the grammar.CharStream
// interface: every method here is a thin pass-through to a markbuf.Buffer,
// rendering rune slices back to text only when GetText is actually called.
type Stream struct {
	buf *markbuf.Buffer[rune]
}

// New returns a Stream over a line source, expanding each Line to runes
// with an inserted trailing '\n'.
func New(src iter.Iterator[dbline.Line]) *Stream {
	return NewFromRunes(NewLineToCharAdapter(src))
}

// NewFromRunes returns a Stream directly over a rune source, bypassing the
// line adapter. The rule-lexing stage uses this to re-lex a paragraph
// token's own text without the database stream's line framing.
func NewFromRunes(src iter.Iterator[rune]) *Stream {
	return &Stream{buf: markbuf.New[rune](src)}
}

// LA returns the character k positions from the current read position
// without consuming it, per ANTLR's lookahead convention (LA(1) is next).
func (s *Stream) LA(k int) (rune, error) {
	return s.buf.LA(k)
}

// Consume advances the read position by one character.
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

// Seek moves the read position to an absolute character index.
func (s *Stream) Seek(index int) error {
	return s.buf.Seek(index)
}

// Index returns the absolute index of the next unconsumed character.
func (s *Stream) Index() int {
	return s.buf.Index()
}

// GetText renders the characters in [start, stop], inclusive, as a string.
func (s *Stream) GetText(start, stop int) (string, error) {
	runes, err := s.buf.GetTextSlice(start, stop)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(runes))
	for _, r := range runes {
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Size forces the stream to fully drain and returns the total character
// count. Reserved for diagnostics; the grammar boundary does not call this
// on the hot path.
func (s *Stream) Size() (int, error) {
	if err := s.buf.FillAll(); err != nil {
		return 0, err
	}
	total, _ := s.buf.Total()
	return total, nil
}
