package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/target"
)

func TestOpenMissingFileStartsEmpty(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	_, ok := c.Lookup("/proj/Makefile", []byte("content"))
	assert.False(t, ok)
}

func TestStoreThenLookupHit(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	targets := []target.Target{{Path: "build"}}
	c.Store("/proj/Makefile", []byte("content"), targets)

	got, ok := c.Lookup("/proj/Makefile", []byte("content"))
	require.True(t, ok)
	assert.Equal(t, targets, got)
}

func TestLookupMissAfterContentChanges(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	c.Store("/proj/Makefile", []byte("content"), []target.Target{{Path: "build"}})

	_, ok := c.Lookup("/proj/Makefile", []byte("different content"))
	assert.False(t, ok)
}

func TestSaveThenReopenRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "cache.json")

	c, err := Open(path)
	require.NoError(t, err)
	targets := []target.Target{{Path: "build", Prerequisites: []string{"dep"}}}
	c.Store("/proj/Makefile", []byte("content"), targets)
	require.NoError(t, c.Save())

	reopened, err := Open(path)
	require.NoError(t, err)
	got, ok := reopened.Lookup("/proj/Makefile", []byte("content"))
	require.True(t, ok)
	assert.Equal(t, targets, got)
}

func TestFingerprintIsDeterministic(t *testing.T) {
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}
