package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityTableLaterWins(t *testing.T) {
	// Spec scenario: priority tie-break. [does_not_exist, Makefile,
	// GNUmakefile] with both Makefile and GNUmakefile present picks
	// GNUmakefile (later in list = higher priority).
	table := NewPriorityTable("does_not_exist", "Makefile", "GNUmakefile")
	picked, ok := table.Pick([]string{"Makefile", "GNUmakefile"})
	assert.True(t, ok)
	assert.Equal(t, "GNUmakefile", picked)
}

func TestPriorityTableNoMatch(t *testing.T) {
	table := NewPriorityTable("Makefile")
	_, ok := table.Pick([]string{"readme.txt"})
	assert.False(t, ok)
}

func TestEmptyPriorityTableMatchesNothing(t *testing.T) {
	table := NewPriorityTable()
	_, ok := table.Pick([]string{"Makefile"})
	assert.False(t, ok)
}
