package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/grammar/grammartest"
	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/target"
)

const sampleDump = `noise before anything
# Pattern-specific Variable Values
# Files
build: dep1 | dep2
	cmd1

test:
	cmd2
# files hash-table stats:
trailing noise
`

func testGrammar() Grammar {
	return Grammar{
		Paragraph: grammartest.NewParagraphLexer(),
		Rule:      grammartest.NewRuleLexer(),
		Parser:    grammartest.NewRuleParser(),
	}
}

func wantTargets(mf target.Makefile) []target.Target {
	return []target.Target{
		{
			Path:                   "build",
			Prerequisites:          []string{"dep1"},
			OrderOnlyPrerequisites: []string{"dep2"},
			RecipeLines:            []string{"cmd1\t"},
			Makefile:               mf,
		},
		{
			Path:                   "test",
			Prerequisites:          nil,
			OrderOnlyPrerequisites: nil,
			RecipeLines:            []string{"cmd2\t"},
			Makefile:               mf,
		},
	}
}

func TestBuildStreamingEndToEnd(t *testing.T) {
	mf := target.Makefile{ExecPath: "/proj", FilePath: "Makefile"}
	it, err := Build(ModeStreaming, strings.NewReader(sampleDump), testGrammar(), mf)
	require.NoError(t, err)

	got, err := iter.Drain[target.Target](it)
	require.NoError(t, err)
	assert.Equal(t, wantTargets(mf), got)
}

func TestBuildBufferedEndToEnd(t *testing.T) {
	mf := target.Makefile{ExecPath: "/proj", FilePath: "Makefile"}
	it, err := Build(ModeBuffered, strings.NewReader(sampleDump), testGrammar(), mf)
	require.NoError(t, err)

	got, err := iter.Drain[target.Target](it)
	require.NoError(t, err)
	assert.Equal(t, wantTargets(mf), got)
}

func TestBuildBalancedEndToEnd(t *testing.T) {
	mf := target.Makefile{ExecPath: "/proj", FilePath: "Makefile"}
	it, err := Build(ModeBalanced, strings.NewReader(sampleDump), testGrammar(), mf)
	require.NoError(t, err)

	got, err := iter.Drain[target.Target](it)
	require.NoError(t, err)
	assert.Equal(t, wantTargets(mf), got)
}

func TestBuildEmptyDumpProducesNoTargets(t *testing.T) {
	mf := target.Makefile{ExecPath: "/proj", FilePath: "Makefile"}
	it, err := Build(ModeStreaming, strings.NewReader(""), testGrammar(), mf)
	require.NoError(t, err)

	got, err := iter.Drain[target.Target](it)
	require.NoError(t, err)
	assert.Empty(t, got)
}
