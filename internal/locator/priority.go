package locator

// PriorityTable orders candidate makefile filenames. A filename's priority
// is its index in the list it was built from: later entries outrank
// earlier ones, so a caller lists its least-preferred candidate first. An
// empty table matches nothing.
type PriorityTable struct {
	priority map[string]int
}

// NewPriorityTable builds a table from filenames, lowest priority first.
func NewPriorityTable(filenames ...string) PriorityTable {
	priority := make(map[string]int, len(filenames))
	for i, name := range filenames {
		priority[name] = i
	}
	return PriorityTable{priority: priority}
}

// Priority returns name's priority and whether it is a candidate at all.
func (t PriorityTable) Priority(name string) (int, bool) {
	p, ok := t.priority[name]
	return p, ok
}

// Pick returns the highest-priority filename present in names, and
// whether any candidate was found at all.
func (t PriorityTable) Pick(names []string) (string, bool) {
	best := ""
	bestPriority := -1
	found := false
	for _, name := range names {
		p, ok := t.priority[name]
		if !ok {
			continue
		}
		if !found || p > bestPriority {
			best = name
			bestPriority = p
			found = true
		}
	}
	return best, found
}
