package markbuf

import (
	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/iter"
)

// Buffer adapts a lazy iter.Iterator[T] into a markable, random-access
// stream. It is the shared primitive behind the character stream and the
// token stream; both differ only in what T is and in how GetText renders a
// slice of T back into text.
type Buffer[T any] struct {
	src iter.Iterator[T]

	items []T // items[i] holds absolute index base+i
	base  int // absolute index of items[0]
	index int // absolute index of the next unconsumed item

	srcExhausted bool
	srcErr       error

	marks    map[int]int // mark id -> absolute index it holds open
	nextMark int
}

// New returns a Buffer pulling from src. src must be freshly constructed
// (AtStart); the buffer drives it exclusively from then on.
func New[T any](src iter.Iterator[T]) *Buffer[T] {
	return &Buffer[T]{
		src:      src,
		marks:    make(map[int]int),
		nextMark: 1, // 0 is the reserved "no mark" sentinel
	}
}

// Index returns the absolute index of the next unconsumed item.
func (b *Buffer[T]) Index() int { return b.index }

// pull advances the underlying source by one item, appending it to the
// buffered window. Returns false once the source is exhausted.
func (b *Buffer[T]) pull() (bool, error) {
	if b.srcExhausted {
		return false, b.srcErr
	}
	if err := b.src.Advance(); err != nil {
		b.srcExhausted = true
		b.srcErr = err
		return false, err
	}
	if b.src.AtEnd() {
		b.srcExhausted = true
		return false, nil
	}
	b.items = append(b.items, b.src.Current())
	return true, nil
}

// fill ensures the buffered window covers absolute index upTo (inclusive),
// pulling from the source as needed. It stops without error if the source
// runs out first, and returns only a source error.
func (b *Buffer[T]) fill(upTo int) error {
	for b.base+len(b.items)-1 < upTo {
		ok, err := b.pull()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	return nil
}

// resolve converts a 1-based lookahead offset (ANTLR convention: LA(1) is
// the next unconsumed item, LA(-1) is the previously consumed item) into an
// absolute index.
func (b *Buffer[T]) resolve(k int) int {
	if k > 0 {
		return b.index + k - 1
	}
	return b.index + k
}

// LA returns the item k positions from the current read position without
// consuming it. k follows ANTLR convention: LA(1) is the next item, LA(2)
// the one after, LA(-1) the previously consumed item. k == 0 is invalid.
func (b *Buffer[T]) LA(k int) (T, error) {
	var zero T
	if k == 0 {
		return zero, errors.NewReadPastEndError(b.index)
	}
	abs := b.resolve(k)
	if abs < 0 {
		return zero, errors.NewReadPastEndError(abs)
	}
	if abs < b.base {
		return zero, errors.NewReleasedPositionError(abs, b.base)
	}
	if err := b.fill(abs); err != nil {
		return zero, err
	}
	if abs >= b.base+len(b.items) {
		return zero, errors.NewReadPastEndError(abs)
	}
	return b.items[abs-b.base], nil
}

// HasLA reports whether LA(k) would succeed, without surfacing an error for
// the common end-of-stream check.
func (b *Buffer[T]) HasLA(k int) bool {
	_, err := b.LA(k)
	return err == nil
}

// Consume advances the read position by one item. It fails with the same
// error LA(1) would if no further item is available.
func (b *Buffer[T]) Consume() error {
	if _, err := b.LA(1); err != nil {
		return err
	}
	b.index++
	return nil
}

// Mark records the current read position and returns a handle that keeps
// it, and everything after it, retained until Release is called. The
// returned handle is never 0.
func (b *Buffer[T]) Mark() int {
	id := b.nextMark
	b.nextMark++
	b.marks[id] = b.index
	return id
}

// Release drops the hold a prior Mark placed on the stream, then garbage
// collects any buffered items no mark and no read position reference
// anymore.
func (b *Buffer[T]) Release(mark int) {
	delete(b.marks, mark)
	b.gc()
}

// gc trims the buffered prefix up to the lowest absolute index still held
// by an active mark or the current read position.
func (b *Buffer[T]) gc() {
	low := b.index
	for _, idx := range b.marks {
		if idx < low {
			low = idx
		}
	}
	if low <= b.base {
		return
	}
	drop := low - b.base
	if drop > len(b.items) {
		drop = len(b.items)
	}
	b.items = b.items[drop:]
	b.base += drop
}

// Seek moves the read position to an absolute index. Seeking backward past
// a position already garbage collected returns ReleasedPositionError;
// seeking forward pulls from the source as needed.
func (b *Buffer[T]) Seek(index int) error {
	if index < b.base {
		return errors.NewReleasedPositionError(index, b.base)
	}
	if index > b.base {
		if err := b.fill(index - 1); err != nil {
			return err
		}
	}
	b.index = index
	return nil
}

// ItemAt returns the single buffered item at absolute index, without
// touching the read position. It is a convenience for callers that already
// know the index is buffered, such as re-reading a cached sentinel item.
func (b *Buffer[T]) ItemAt(index int) (T, error) {
	s, err := b.GetTextSlice(index, index)
	if err != nil {
		var zero T
		return zero, err
	}
	return s[0], nil
}

// GetTextSlice returns the items in [start, stop], inclusive, as a slice.
// Both bounds are absolute indices. It fails with ReleasedPositionError if
// start precedes the buffer's low-water mark, or ReadPastEndError if stop
// is beyond the end of the source.
func (b *Buffer[T]) GetTextSlice(start, stop int) ([]T, error) {
	if start < b.base {
		return nil, errors.NewReleasedPositionError(start, b.base)
	}
	if stop < start {
		return nil, nil
	}
	if err := b.fill(stop); err != nil {
		return nil, err
	}
	if stop >= b.base+len(b.items) {
		return nil, errors.NewReadPastEndError(stop)
	}
	out := make([]T, stop-start+1)
	copy(out, b.items[start-b.base:stop-b.base+1])
	return out, nil
}

// FillAll pulls every remaining item from the source into the buffer. It is
// the only operation that defeats the stream's laziness; callers should
// reserve it for cases that genuinely need the total size, such as an error
// message reporting how far a lookahead request overran.
func (b *Buffer[T]) FillAll() error {
	for !b.srcExhausted {
		if _, err := b.pull(); err != nil {
			return err
		}
	}
	return nil
}

// Total returns the number of items pulled from the source so far, and
// whether the source is known to be fully exhausted. Because gc only ever
// trims the buffered prefix in lockstep with base, base+len(items) is
// invariant across garbage collection, so this is accurate even after
// positions have been released.
func (b *Buffer[T]) Total() (int, bool) {
	return b.base + len(b.items), b.srcExhausted
}

// AtEnd reports whether the read position has reached the end of the
// source: every item has been consumed and the source is exhausted.
func (b *Buffer[T]) AtEnd() bool {
	if !b.srcExhausted {
		return false
	}
	return b.index >= b.base+len(b.items)
}
