package lint

import (
	"fmt"

	"github.com/sdlcforge/makefwd/internal/model"
)

// TargetCollisionCheck flags every target name shared by two or more
// directories: forwarding such a name from the root would be ambiguous,
// since `make -C <dir> <name>` would need to run in more than one place.
var TargetCollisionCheck = Check{
	Name: "target-collision",
	Run:  checkTargetCollisions,
}

func checkTargetCollisions(fm *model.ForwardingModel) []Warning {
	warnings := make([]Warning, 0, len(fm.Collisions))
	for _, c := range fm.Collisions {
		dirs := make([]string, 0, len(c.Directories))
		for _, mf := range c.Directories {
			dirs = append(dirs, mf.ExecPath)
		}
		warnings = append(warnings, Warning{
			Check:       TargetCollisionCheck.Name,
			Severity:    SeverityError,
			Message:     fmt.Sprintf("target %q is defined in %d directories and cannot be forwarded unambiguously", c.Name, len(dirs)),
			Target:      c.Name,
			Directories: dirs,
		})
	}
	return warnings
}

// AllChecks returns every registered check, in the order they run.
func AllChecks() []Check {
	return []Check{TargetCollisionCheck}
}

// Run executes every registered check against fm and returns their combined
// warnings.
func Run(fm *model.ForwardingModel) []Warning {
	var warnings []Warning
	for _, c := range AllChecks() {
		warnings = append(warnings, c.Run(fm)...)
	}
	return warnings
}
