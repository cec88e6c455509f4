package locator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/iter"
	"github.com/sdlcforge/makefwd/internal/target"
)

// Spec scenario 5: nested locator pruning. Root R has Makefile, R/sub1 has
// Makefile, R/sub2 has no makefile, R/sub2/deep has Makefile. With
// priority [Makefile], only R/sub1/Makefile is emitted: the root is
// skipped and sub2 is pruned, hiding sub2/deep.
func TestNestedLocatorPruning(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Makefile"), nil, 0o644))

	sub1 := filepath.Join(root, "sub1")
	require.NoError(t, os.MkdirAll(sub1, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub1, "Makefile"), nil, 0o644))

	sub2 := filepath.Join(root, "sub2")
	require.NoError(t, os.MkdirAll(sub2, 0o755))

	deep := filepath.Join(sub2, "deep")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(deep, "Makefile"), nil, 0o644))

	l := NewNestedLocator(NewPriorityTable("Makefile"))
	ctx, err := l.Acquire(root)
	require.NoError(t, err)
	defer ctx.Close()

	got, err := iter.Drain[target.Makefile](ctx.Iterator())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sub1, got[0].ExecPath)
	assert.Equal(t, "Makefile", got[0].FilePath)
}

func TestNestedLocatorRootWithNoMatchPrunesEverything(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Makefile"), nil, 0o644))

	l := NewNestedLocator(NewPriorityTable("Makefile"))
	ctx, err := l.Acquire(root)
	require.NoError(t, err)
	defer ctx.Close()

	got, err := iter.Drain[target.Makefile](ctx.Iterator())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNestedLocatorTieBreak(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "Makefile"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "GNUmakefile"), nil, 0o644))
	// Root needs a match too, or sub never gets visited.
	require.NoError(t, os.WriteFile(filepath.Join(root, "Makefile"), nil, 0o644))

	l := NewNestedLocator(NewPriorityTable("does_not_exist", "Makefile", "GNUmakefile"))
	ctx, err := l.Acquire(root)
	require.NoError(t, err)
	defer ctx.Close()

	got, err := iter.Drain[target.Makefile](ctx.Iterator())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "GNUmakefile", got[0].FilePath)
}
