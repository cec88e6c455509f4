package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/makefwd/internal/config"
	"github.com/sdlcforge/makefwd/internal/errors"
	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

func mf(path string) target.Makefile {
	return target.Makefile{ExecPath: path, FilePath: "Makefile"}
}

func createTestModel() *model.ForwardingModel {
	return &model.ForwardingModel{
		Directories: []model.Directory{
			{
				Makefile:       mf("development"),
				DiscoveryOrder: 2,
				Targets: []target.Target{
					{Path: "test", Makefile: mf("development")},
					{Path: "build", Makefile: mf("development")},
					{Path: "lint", Makefile: mf("development")},
				},
			},
			{
				Makefile:       mf("deployment"),
				DiscoveryOrder: 1,
				Targets: []target.Target{
					{Path: "deploy", Makefile: mf("deployment")},
					{Path: "package", Makefile: mf("deployment")},
				},
			},
			{
				Makefile:       mf("ci"),
				DiscoveryOrder: 3,
				Targets: []target.Target{
					{Path: "ci-test", Makefile: mf("ci")},
					{Path: "ci-build", Makefile: mf("ci")},
				},
			},
		},
	}
}

func TestApplyOrdering_DefaultAlphabeticalDirectories(t *testing.T) {
	service := NewService(&config.Config{})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	assert.Equal(t, "ci", fm.Directories[0].Makefile.ExecPath)
	assert.Equal(t, "deployment", fm.Directories[1].Makefile.ExecPath)
	assert.Equal(t, "development", fm.Directories[2].Makefile.ExecPath)
}

func TestApplyOrdering_DefaultAlphabeticalTargets(t *testing.T) {
	service := NewService(&config.Config{})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	for _, d := range fm.Directories {
		if d.Makefile.ExecPath == "development" {
			assert.Equal(t, "build", d.Targets[0].Path)
			assert.Equal(t, "lint", d.Targets[1].Path)
			assert.Equal(t, "test", d.Targets[2].Path)
		}
	}
}

func TestApplyOrdering_KeepOrderDirs(t *testing.T) {
	service := NewService(&config.Config{KeepOrderDirs: true})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	assert.Equal(t, 1, fm.Directories[0].DiscoveryOrder)
	assert.Equal(t, 2, fm.Directories[1].DiscoveryOrder)
	assert.Equal(t, 3, fm.Directories[2].DiscoveryOrder)
}

func TestApplyOrdering_KeepOrderTargets(t *testing.T) {
	service := NewService(&config.Config{KeepOrderTargets: true})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	for _, d := range fm.Directories {
		if d.Makefile.ExecPath == "development" {
			assert.Equal(t, "test", d.Targets[0].Path)
			assert.Equal(t, "build", d.Targets[1].Path)
			assert.Equal(t, "lint", d.Targets[2].Path)
		}
	}
}

func TestApplyOrdering_ExplicitDirOrder(t *testing.T) {
	service := NewService(&config.Config{DirOrder: []string{"development", "ci"}})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	assert.Equal(t, "development", fm.Directories[0].Makefile.ExecPath)
	assert.Equal(t, "ci", fm.Directories[1].Makefile.ExecPath)
	assert.Equal(t, "deployment", fm.Directories[2].Makefile.ExecPath)
}

func TestApplyOrdering_ExplicitDirOrder_UnknownDir(t *testing.T) {
	service := NewService(&config.Config{DirOrder: []string{"development", "nonexistent", "ci"}})
	fm := createTestModel()

	err := service.ApplyOrdering(fm)
	require.Error(t, err)

	var unknownErr *errors.UnknownDirOrderError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "nonexistent", unknownErr.Name)
	assert.Contains(t, unknownErr.Available, "ci")
	assert.Contains(t, unknownErr.Available, "development")
	assert.Contains(t, unknownErr.Available, "deployment")
}

func TestApplyOrdering_EmptyModel(t *testing.T) {
	service := NewService(&config.Config{})
	fm := &model.ForwardingModel{}

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)
	assert.Empty(t, fm.Directories)
}

func TestApplyOrdering_CaseInsensitiveSorting(t *testing.T) {
	service := NewService(&config.Config{})
	fm := &model.ForwardingModel{
		Directories: []model.Directory{
			{
				Makefile: mf("build"),
				Targets: []target.Target{
					{Path: "Test"},
					{Path: "build"},
					{Path: "LINT"},
					{Path: "compile"},
				},
			},
		},
	}

	err := service.ApplyOrdering(fm)
	require.NoError(t, err)

	targets := fm.Directories[0].Targets
	assert.Equal(t, "build", targets[0].Path)
	assert.Equal(t, "compile", targets[1].Path)
	assert.Equal(t, "LINT", targets[2].Path)
	assert.Equal(t, "Test", targets[3].Path)
}

func TestSortDirectoriesAlphabetically(t *testing.T) {
	dirs := []model.Directory{
		{Makefile: mf("Zebra")},
		{Makefile: mf("apple")},
		{Makefile: mf("Banana")},
	}

	sortDirectoriesAlphabetically(dirs)

	assert.Equal(t, "apple", dirs[0].Makefile.ExecPath)
	assert.Equal(t, "Banana", dirs[1].Makefile.ExecPath)
	assert.Equal(t, "Zebra", dirs[2].Makefile.ExecPath)
}

func TestSortDirectoriesByDiscoveryOrder(t *testing.T) {
	dirs := []model.Directory{
		{Makefile: mf("third"), DiscoveryOrder: 3},
		{Makefile: mf("first"), DiscoveryOrder: 1},
		{Makefile: mf("second"), DiscoveryOrder: 2},
	}

	sortDirectoriesByDiscoveryOrder(dirs)

	assert.Equal(t, "first", dirs[0].Makefile.ExecPath)
	assert.Equal(t, "second", dirs[1].Makefile.ExecPath)
	assert.Equal(t, "third", dirs[2].Makefile.ExecPath)
}

func TestApplyExplicitDirOrder_PartialOrder(t *testing.T) {
	fm := &model.ForwardingModel{
		Directories: []model.Directory{
			{Makefile: mf("e")},
			{Makefile: mf("d")},
			{Makefile: mf("c")},
			{Makefile: mf("b")},
			{Makefile: mf("a")},
		},
	}

	err := applyExplicitDirOrder(fm, []string{"c", "a"})
	require.NoError(t, err)

	assert.Equal(t, "c", fm.Directories[0].Makefile.ExecPath)
	assert.Equal(t, "a", fm.Directories[1].Makefile.ExecPath)
	assert.Equal(t, "b", fm.Directories[2].Makefile.ExecPath)
	assert.Equal(t, "d", fm.Directories[3].Makefile.ExecPath)
	assert.Equal(t, "e", fm.Directories[4].Makefile.ExecPath)
}

func TestApplyExplicitDirOrder_DuplicatesInOrder(t *testing.T) {
	fm := &model.ForwardingModel{
		Directories: []model.Directory{
			{Makefile: mf("a")},
			{Makefile: mf("b")},
			{Makefile: mf("c")},
		},
	}

	err := applyExplicitDirOrder(fm, []string{"b", "b", "a"})
	require.NoError(t, err)

	assert.Equal(t, "b", fm.Directories[0].Makefile.ExecPath)
	assert.Equal(t, "a", fm.Directories[1].Makefile.ExecPath)
	assert.Equal(t, "c", fm.Directories[2].Makefile.ExecPath)
}
