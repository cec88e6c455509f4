package pipeline

import (
	"bufio"
	"io"

	"github.com/sdlcforge/makefwd/internal/dbline"
)

// lineSourceState mirrors the shared S/I/E protocol.
type lineSourceState int

const (
	lineSourceStart lineSourceState = iota
	lineSourceIntermediate
	lineSourceEnd
)

// LineSource is the pipeline's first stage: it reads r line by line via
// bufio.Scanner, which already strips the trailing terminator, so every
// scanned fragment satisfies dbline.New without further trimming.
type LineSource struct {
	scanner *bufio.Scanner

	st  lineSourceState
	cur dbline.Line
	err error
}

// NewLineSource returns a LineSource reading from r (typically the stdout
// of `make -np`, or a file holding a previously captured dump).
// maxLineSize raises the scanner's buffer well past bufio's 64KiB default:
// a single long shell pipeline on one recipe line is not unusual in large
// Makefiles.
const maxLineSize = 1 << 20

func NewLineSource(r io.Reader) *LineSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &LineSource{scanner: scanner, st: lineSourceStart}
}

// Advance implements iter.Iterator.
func (s *LineSource) Advance() error {
	if s.st == lineSourceEnd {
		return nil
	}
	if s.err != nil {
		return s.err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			s.err = err
			return err
		}
		s.st = lineSourceEnd
		s.cur = dbline.Line{}
		return nil
	}
	line, err := dbline.New(s.scanner.Text())
	if err != nil {
		s.err = err
		return err
	}
	s.cur = line
	s.st = lineSourceIntermediate
	return nil
}

// Current implements iter.Iterator.
func (s *LineSource) Current() dbline.Line { return s.cur }

// HasCurrent implements iter.Iterator.
func (s *LineSource) HasCurrent() bool { return s.st == lineSourceIntermediate }

// AtStart implements iter.Iterator.
func (s *LineSource) AtStart() bool { return s.st == lineSourceStart }

// AtEnd implements iter.Iterator.
func (s *LineSource) AtEnd() bool { return s.st == lineSourceEnd }
