package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdlcforge/makefwd/internal/target"
)

func TestBuilderAssignsDiscoveryOrder(t *testing.T) {
	mfA := target.Makefile{ExecPath: "/proj/a", FilePath: "Makefile"}
	mfB := target.Makefile{ExecPath: "/proj/b", FilePath: "Makefile"}

	got := NewBuilder().Build([]Directory{
		{Makefile: mfA, Targets: []target.Target{{Path: "build", Makefile: mfA}}},
		{Makefile: mfB, Targets: []target.Target{{Path: "test", Makefile: mfB}}},
	})

	assert.Equal(t, 0, got.Directories[0].DiscoveryOrder)
	assert.Equal(t, 1, got.Directories[1].DiscoveryOrder)
	assert.Empty(t, got.Collisions)
	assert.False(t, got.HasCollisions())
}

func TestBuilderDetectsCrossDirectoryCollision(t *testing.T) {
	mfA := target.Makefile{ExecPath: "/proj/a", FilePath: "Makefile"}
	mfB := target.Makefile{ExecPath: "/proj/b", FilePath: "Makefile"}
	mfC := target.Makefile{ExecPath: "/proj/c", FilePath: "Makefile"}

	got := NewBuilder().Build([]Directory{
		{Makefile: mfA, Targets: []target.Target{{Path: "build", Makefile: mfA}, {Path: "test", Makefile: mfA}}},
		{Makefile: mfB, Targets: []target.Target{{Path: "build", Makefile: mfB}}},
		{Makefile: mfC, Targets: []target.Target{{Path: "lint", Makefile: mfC}}},
	})

	require := assert.New(t)
	require.True(got.HasCollisions())
	require.Len(got.Collisions, 1)
	require.Equal("build", got.Collisions[0].Name)
	require.Equal([]target.Makefile{mfA, mfB}, got.Collisions[0].Directories)
}

func TestBuilderCollisionAcrossThreeDirectories(t *testing.T) {
	mfA := target.Makefile{ExecPath: "/proj/a", FilePath: "Makefile"}
	mfB := target.Makefile{ExecPath: "/proj/b", FilePath: "Makefile"}
	mfC := target.Makefile{ExecPath: "/proj/c", FilePath: "Makefile"}

	got := NewBuilder().Build([]Directory{
		{Makefile: mfA, Targets: []target.Target{{Path: "deploy", Makefile: mfA}}},
		{Makefile: mfB, Targets: []target.Target{{Path: "deploy", Makefile: mfB}}},
		{Makefile: mfC, Targets: []target.Target{{Path: "deploy", Makefile: mfC}}},
	})

	assert.Len(t, got.Collisions, 1)
	assert.Equal(t, []target.Makefile{mfA, mfB, mfC}, got.Collisions[0].Directories)
}

func TestBuilderNoDirectoriesProducesEmptyModel(t *testing.T) {
	got := NewBuilder().Build(nil)
	assert.Empty(t, got.Directories)
	assert.Empty(t, got.Collisions)
}
