package grammartest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/charstream"
	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/tokenstream"
)

func linesOf(texts ...string) iter.Iterator[dbline.Line] {
	lines := make([]dbline.Line, len(texts))
	for i, t := range texts {
		lines[i] = dbline.MustNew(t)
	}
	return iter.FromSlice(lines)
}

func TestRuleParserMultiTargetFanOut(t *testing.T) {
	cs := charstream.New(linesOf("a b c : d | e"))
	ts := tokenstream.NewFromRuleLexer(NewRuleLexer(), cs)
	ctx, err := NewRuleParser().ParseRule(ts)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, ctx.TargetNames())
	assert.Equal(t, []string{"d"}, ctx.Prerequisites())
	assert.Equal(t, []string{"e"}, ctx.OrderOnlyPrerequisites())
}

func TestRuleParserRecipeLines(t *testing.T) {
	cs := charstream.New(linesOf("build:", "\tcmd1", "\tcmd2"))
	ts := tokenstream.NewFromRuleLexer(NewRuleLexer(), cs)
	ctx, err := NewRuleParser().ParseRule(ts)
	require.NoError(t, err)

	assert.Equal(t, []string{"build"}, ctx.TargetNames())
	require.Len(t, ctx.Recipe(), 2)
	assert.Equal(t, "cmd1\t\n", ctx.Recipe()[0])
	assert.Equal(t, "cmd2\t\n", ctx.Recipe()[1])
}

func TestRuleParserEndOfInputIsParseCancelled(t *testing.T) {
	cs := charstream.New(linesOf(""))
	ts := tokenstream.NewFromRuleLexer(NewRuleLexer(), cs)

	// Drain the one (empty) token then expect ParseCancelled.
	_, err := NewRuleParser().ParseRule(ts)
	require.Error(t, err)
}
