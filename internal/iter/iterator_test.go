package iter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertStateInvariant checks that exactly one of AtStart/HasCurrent/AtEnd holds.
func assertStateInvariant(t *testing.T, it Iterator[int]) {
	t.Helper()
	count := 0
	if it.AtStart() {
		count++
	}
	if it.HasCurrent() {
		count++
	}
	if it.AtEnd() {
		count++
	}
	assert.Equal(t, 1, count, "exactly one of AtStart/HasCurrent/AtEnd must hold")
}

func TestSliceIteratorStates(t *testing.T) {
	it := FromSlice([]int{1, 2, 3})
	assert.True(t, it.AtStart())
	assertStateInvariant(t, it)

	require.NoError(t, it.Advance())
	assert.True(t, it.HasCurrent())
	assert.Equal(t, 1, it.Current())
	assertStateInvariant(t, it)

	require.NoError(t, it.Advance())
	assert.Equal(t, 2, it.Current())

	require.NoError(t, it.Advance())
	assert.Equal(t, 3, it.Current())

	require.NoError(t, it.Advance())
	assert.True(t, it.AtEnd())
	assertStateInvariant(t, it)

	// E is absorbing.
	require.NoError(t, it.Advance())
	assert.True(t, it.AtEnd())
}

func TestSliceIteratorEmpty(t *testing.T) {
	it := FromSlice([]int{})
	require.NoError(t, it.Advance())
	assert.True(t, it.AtEnd())
}

func TestAdvanceToEndIdempotent(t *testing.T) {
	it := FromSlice([]int{1, 2, 3})
	require.NoError(t, AdvanceToEnd[int](it))
	assert.True(t, it.AtEnd())
	// Safe to call again from any state, including E.
	require.NoError(t, AdvanceToEnd[int](it))
	assert.True(t, it.AtEnd())
}

func TestDrain(t *testing.T) {
	it := FromSlice([]int{4, 5, 6})
	out, err := Drain[int](it)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, out)
}

func TestDrainEmpty(t *testing.T) {
	out, err := Drain[int](FromSlice([]int{}))
	require.NoError(t, err)
	assert.Empty(t, out)
}

type errorIterator struct {
	failAt int
	idx    int
	st     state
}

func (e *errorIterator) Advance() error {
	if e.st == stateEnd {
		return nil
	}
	if e.idx == e.failAt {
		return errors.New("boom")
	}
	e.idx++
	if e.idx > 3 {
		e.st = stateEnd
		return nil
	}
	e.st = stateIntermediate
	return nil
}
func (e *errorIterator) Current() int     { return e.idx }
func (e *errorIterator) HasCurrent() bool { return e.st == stateIntermediate }
func (e *errorIterator) AtStart() bool    { return e.st == stateStart }
func (e *errorIterator) AtEnd() bool      { return e.st == stateEnd }

func TestDrainPropagatesError(t *testing.T) {
	it := &errorIterator{failAt: 2}
	out, err := Drain[int](it)
	require.Error(t, err)
	assert.Equal(t, []int{1, 2}, out)
}
