package charstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
)

func linesOf(texts ...string) iter.Iterator[dbline.Line] {
	lines := make([]dbline.Line, len(texts))
	for i, t := range texts {
		lines[i] = dbline.MustNew(t)
	}
	return iter.FromSlice(lines)
}

func TestLineToCharAdapterInsertsNewlines(t *testing.T) {
	a := NewLineToCharAdapter(linesOf("ab", "cd"))
	out, err := iter.Drain[rune](a)
	require.NoError(t, err)
	assert.Equal(t, []rune("ab\ncd\n"), out)
}

func TestLineToCharAdapterEmptyLine(t *testing.T) {
	a := NewLineToCharAdapter(linesOf("", "x"))
	out, err := iter.Drain[rune](a)
	require.NoError(t, err)
	assert.Equal(t, []rune("\nx\n"), out)
}

func TestLineToCharAdapterEmptySource(t *testing.T) {
	a := NewLineToCharAdapter(linesOf())
	out, err := iter.Drain[rune](a)
	require.NoError(t, err)
	assert.Empty(t, out)
}
