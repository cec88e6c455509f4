package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

func dirsWithCollidingBuild() []model.Directory {
	return []model.Directory{
		{
			Makefile: target.Makefile{ExecPath: "/proj/service-a"},
			Targets:  []target.Target{{Path: "build"}, {Path: "test"}},
		},
		{
			Makefile: target.Makefile{ExecPath: "/proj/service-b"},
			Targets:  []target.Target{{Path: "build"}},
		},
	}
}

func TestPrefixFixerRenamesOnlyCollidingTargets(t *testing.T) {
	builder := model.NewBuilder()
	fm := builder.Build(dirsWithCollidingBuild())
	require.True(t, fm.HasCollisions())

	fixed, result := PrefixFixer{}.Apply(fm)

	require.False(t, fixed.HasCollisions())
	assert.Equal(t, 2, result.TotalFixed)

	var names []string
	for _, dir := range fixed.Directories {
		for _, tgt := range dir.Targets {
			names = append(names, tgt.Path)
		}
	}
	assert.Contains(t, names, "service-a-build")
	assert.Contains(t, names, "service-b-build")
	assert.Contains(t, names, "test")
}

func TestPrefixFixerNoCollisionsIsNoOp(t *testing.T) {
	builder := model.NewBuilder()
	fm := builder.Build([]model.Directory{
		{
			Makefile: target.Makefile{ExecPath: "/proj/service-a"},
			Targets:  []target.Target{{Path: "build"}},
		},
	})

	fixed, result := PrefixFixer{}.Apply(fm)
	assert.Equal(t, 0, result.TotalFixed)
	assert.Equal(t, "build", fixed.Directories[0].Targets[0].Path)
}

func TestPrefixFixerRecordsRenamedTargetsPerDirectory(t *testing.T) {
	builder := model.NewBuilder()
	fm := builder.Build(dirsWithCollidingBuild())

	_, result := PrefixFixer{}.Apply(fm)
	assert.Equal(t, []string{"service-a-build"}, result.Renamed["/proj/service-a"])
	assert.Equal(t, []string{"service-b-build"}, result.Renamed["/proj/service-b"])
}
