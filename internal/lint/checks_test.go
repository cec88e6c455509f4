package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sdlcforge/makefwd/internal/model"
	"github.com/sdlcforge/makefwd/internal/target"
)

func TestCheckTargetCollisionsReportsEachCollision(t *testing.T) {
	fm := &model.ForwardingModel{
		Collisions: []model.Collision{
			{
				Name: "build",
				Directories: []target.Makefile{
					{ExecPath: "/proj/a"},
					{ExecPath: "/proj/b"},
				},
			},
		},
	}

	warnings := Run(fm)
	assert.Len(t, warnings, 1)
	assert.Equal(t, "target-collision", warnings[0].Check)
	assert.Equal(t, SeverityError, warnings[0].Severity)
	assert.Equal(t, "build", warnings[0].Target)
	assert.ElementsMatch(t, []string{"/proj/a", "/proj/b"}, warnings[0].Directories)
}

func TestCheckTargetCollisionsNoCollisionsNoWarnings(t *testing.T) {
	fm := &model.ForwardingModel{}
	assert.Empty(t, Run(fm))
}

func TestAllChecksIncludesTargetCollision(t *testing.T) {
	checks := AllChecks()
	assert.Len(t, checks, 1)
	assert.Equal(t, "target-collision", checks[0].Name)
}
