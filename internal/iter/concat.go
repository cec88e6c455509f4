package iter

// Concatenator flattens an iterator of iterators into a single stream,
// skipping any inner iterator that turns out to be empty. It preserves
// input order: every item of the first inner iterator precedes every item
// of the second, and so on.
type Concatenator[T any] struct {
	outer Iterator[Iterator[T]]
	inner Iterator[T]
	st    state
	cur   T
}

// NewConcatenator returns a Concatenator over outer.
func NewConcatenator[T any](outer Iterator[Iterator[T]]) *Concatenator[T] {
	return &Concatenator[T]{outer: outer, st: stateStart}
}

// Advance implements Iterator.
func (c *Concatenator[T]) Advance() error {
	if c.st == stateEnd {
		return nil
	}
	for {
		if c.inner != nil {
			if err := c.inner.Advance(); err != nil {
				return err
			}
			if !c.inner.AtEnd() {
				c.cur = c.inner.Current()
				c.st = stateIntermediate
				return nil
			}
			c.inner = nil
		}

		if err := c.outer.Advance(); err != nil {
			return err
		}
		if c.outer.AtEnd() {
			var zero T
			c.cur = zero
			c.st = stateEnd
			return nil
		}
		c.inner = c.outer.Current()
	}
}

// Current implements Iterator.
func (c *Concatenator[T]) Current() T { return c.cur }

// HasCurrent implements Iterator.
func (c *Concatenator[T]) HasCurrent() bool { return c.st.hasCurrent() }

// AtStart implements Iterator.
func (c *Concatenator[T]) AtStart() bool { return c.st.atStart() }

// AtEnd implements Iterator.
func (c *Concatenator[T]) AtEnd() bool { return c.st.atEnd() }
