package charstream

import (
	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
)

// LineToCharAdapter exposes an iter.Iterator[dbline.Line] as an
// iter.Iterator[rune], inserting a '\n' after every line's runes. This is
// the only place the stream's line structure is reconstituted as text; once
// runes leave this adapter, line boundaries live only as '\n' characters.
type LineToCharAdapter struct {
	src     iter.Iterator[dbline.Line]
	runes   []rune
	pos     int
	st      int // 0=start, 1=intermediate, 2=end
	current rune
}

const (
	adapterStart = iota
	adapterIntermediate
	adapterEnd
)

// NewLineToCharAdapter returns a rune iterator over src.
func NewLineToCharAdapter(src iter.Iterator[dbline.Line]) *LineToCharAdapter {
	return &LineToCharAdapter{src: src, st: adapterStart}
}

// Advance implements iter.Iterator.
func (a *LineToCharAdapter) Advance() error {
	if a.st == adapterEnd {
		return nil
	}
	for a.pos >= len(a.runes) {
		if err := a.src.Advance(); err != nil {
			return err
		}
		if a.src.AtEnd() {
			a.st = adapterEnd
			return nil
		}
		line := a.src.Current()
		a.runes = append([]rune(line.Text()), '\n')
		a.pos = 0
	}
	a.current = a.runes[a.pos]
	a.pos++
	a.st = adapterIntermediate
	return nil
}

// Current implements iter.Iterator.
func (a *LineToCharAdapter) Current() rune { return a.current }

// HasCurrent implements iter.Iterator.
func (a *LineToCharAdapter) HasCurrent() bool { return a.st == adapterIntermediate }

// AtStart implements iter.Iterator.
func (a *LineToCharAdapter) AtStart() bool { return a.st == adapterStart }

// AtEnd implements iter.Iterator.
func (a *LineToCharAdapter) AtEnd() bool { return a.st == adapterEnd }
