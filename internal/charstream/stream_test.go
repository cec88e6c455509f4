package charstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamLAAndConsume(t *testing.T) {
	s := New(linesOf("ab"))

	r, err := s.LA(1)
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	require.NoError(t, s.Consume())
	r, err = s.LA(1)
	require.NoError(t, err)
	assert.Equal(t, 'b', r)
}

func TestStreamGetText(t *testing.T) {
	s := New(linesOf("ab", "cd"))
	txt, err := s.GetText(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", txt)
}

func TestStreamMarkSeekRelease(t *testing.T) {
	s := New(linesOf("abcd"))
	m := s.Mark()
	require.NoError(t, s.Consume())
	require.NoError(t, s.Consume())

	require.NoError(t, s.Seek(0))
	r, err := s.LA(1)
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	s.Release(m)
}

func TestStreamSize(t *testing.T) {
	s := New(linesOf("ab", "c"))
	n, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 5, n) // "ab\n" + "c\n"
}

func TestStreamIndex(t *testing.T) {
	s := New(linesOf("ab"))
	assert.Equal(t, 0, s.Index())
	require.NoError(t, s.Consume())
	assert.Equal(t, 1, s.Index())
}
