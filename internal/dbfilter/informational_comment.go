package dbfilter

import (
	"regexp"

	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
)

// informationalPattern matches make's verbose explanatory comments (hash
// followed by two spaces), as distinct from target-defining comments that
// start with a single space after the hash.
var informationalPattern = regexp.MustCompile(`^#  `)

// InformationalCommentFilter drops informational comment lines and
// forwards everything else. It starts in the forwarding state Y.
type InformationalCommentFilter struct {
	forwarding bool
}

var _ iter.Condition[dbline.Line] = (*InformationalCommentFilter)(nil)

// NewInformationalCommentFilter returns a filter starting in state Y.
func NewInformationalCommentFilter() *InformationalCommentFilter {
	return &InformationalCommentFilter{forwarding: true}
}

// Accept implements iter.Condition.
func (f *InformationalCommentFilter) Accept(line dbline.Line) bool {
	f.forwarding = !informationalPattern.MatchString(line.Text())
	return f.forwarding
}
