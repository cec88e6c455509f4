package dbfilter

import (
	"github.com/sdlcforge/makefwd/internal/dbline"
	"github.com/sdlcforge/makefwd/internal/iter"
)

const (
	fileSectionStartAnchor = "# Files"
	fileSectionEndAnchor   = "# files hash-table stats:"
)

// fileState is one of the four states the file-section filter occupies.
type fileState int

const (
	fileStateN fileState = iota // initial: before the section
	fileStateB                  // armed: just saw the start anchor
	fileStateY                  // forwarding: inside the section
	fileStateF                  // terminal: section closed for good
)

// label classifies an incoming line against the filter's two anchors.
type label int

const (
	labelStart label = iota
	labelEnd
	labelLine
)

func classify(text string) label {
	switch text {
	case fileSectionStartAnchor:
		return labelStart
	case fileSectionEndAnchor:
		return labelEnd
	default:
		return labelLine
	}
}

// fileTransition is the filter's transition table, verbatim: rows are the
// current state, columns are the line's label. B's "start" and "line"
// columns both land on Y — only the end anchor from B returns to N. F
// absorbs every label.
var fileTransition = map[fileState]map[label]fileState{
	fileStateN: {labelStart: fileStateB, labelEnd: fileStateN, labelLine: fileStateN},
	fileStateB: {labelStart: fileStateY, labelEnd: fileStateN, labelLine: fileStateY},
	fileStateY: {labelStart: fileStateY, labelEnd: fileStateF, labelLine: fileStateY},
	fileStateF: {labelStart: fileStateF, labelEnd: fileStateF, labelLine: fileStateF},
}

// FileSectionFilter keeps only the lines strictly between the `# Files`
// start anchor and the `# files hash-table stats:` end anchor. The start
// anchor line itself is never forwarded (the B armed state exists for
// exactly this); once the end anchor has been seen the filter is
// permanently closed, so a later recipe line that happens to read
// `# Files` cannot reopen it.
type FileSectionFilter struct {
	state fileState
}

var _ iter.Condition[dbline.Line] = (*FileSectionFilter)(nil)

// NewFileSectionFilter returns a filter starting in state N.
func NewFileSectionFilter() *FileSectionFilter {
	return &FileSectionFilter{state: fileStateN}
}

// Accept implements iter.Condition.
func (f *FileSectionFilter) Accept(line dbline.Line) bool {
	f.state = fileTransition[f.state][classify(line.Text())]
	return f.state == fileStateY
}
