package dbline

import (
	"strings"

	"github.com/sdlcforge/makefwd/internal/errors"
)

// Line is a string with no line terminator. It is constructed from a
// fragment whose terminator has already been stripped; a fragment still
// containing any line break ('\n' or '\r') is rejected.
type Line struct {
	text string
}

// New constructs a Line from text that has already been split on newlines
// by the caller (e.g. a line read from bufio.Scanner, which strips the
// terminator). It fails if text still contains an embedded line break,
// which would mean the caller handed over more than one line.
func New(text string) (Line, error) {
	if strings.ContainsAny(text, "\n\r") {
		return Line{}, errors.NewMalformedLineError(text)
	}
	return Line{text: text}, nil
}

// MustNew is like New but panics on error. Intended for literals in tests
// and internal callers that already know the text is well formed.
func MustNew(text string) Line {
	l, err := New(text)
	if err != nil {
		panic(err)
	}
	return l
}

// Text returns the line's content, without any line terminator.
func (l Line) Text() string {
	return l.text
}

// String implements fmt.Stringer.
func (l Line) String() string {
	return l.text
}
