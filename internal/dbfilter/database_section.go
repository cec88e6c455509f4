package dbfilter

import (
	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
)

// databaseSectionAnchor is the only line `make -np` emits that reliably
// marks the start of the database dump proper; it never appears in recipe
// text, so a literal-equality match is sufficient.
const databaseSectionAnchor = "# Pattern-specific Variable Values"

// DatabaseSectionFilter drops every line preceding the database dump's
// start anchor and forwards everything from the anchor line onward. It has
// two states, N (suppressing) and Y (forwarding): the anchor moves N to Y
// and leaves Y unchanged; every other line leaves either state unchanged.
type DatabaseSectionFilter struct {
	inSection bool
}

var _ iter.Condition[dbline.Line] = (*DatabaseSectionFilter)(nil)

// NewDatabaseSectionFilter returns a filter starting in state N.
func NewDatabaseSectionFilter() *DatabaseSectionFilter {
	return &DatabaseSectionFilter{}
}

// Accept implements iter.Condition.
func (f *DatabaseSectionFilter) Accept(line dbline.Line) bool {
	if line.Text() == databaseSectionAnchor {
		f.inSection = true
	}
	return f.inSection
}
