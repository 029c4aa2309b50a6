package xtractvm

// LabelTable is the direct name-index -> position map spec.md §9 Open
// Questions settles on, in preference to the sources' competing 32-slot
// generation-LRU scheme: it is simpler, and the label-name alphabet
// ([A-Z0-9_-], ≤16 chars, ≤128 distinct names per spec.md §9) is small
// enough that a direct array beats any cache.
type LabelTable [LabelSlots]int64

// unsetLabel is the sentinel position meaning "not yet written".
const unsetLabel = -1

// NewLabelTable returns a LabelTable with every slot unset.
func NewLabelTable() LabelTable {
	var t LabelTable
	for i := range t {
		t[i] = unsetLabel
	}
	return t
}

// Get returns the committed position for idx, or (0, false) if unset.
func (t LabelTable) Get(idx int) (int64, bool) {
	if idx < 0 || idx >= len(t) {
		return 0, false
	}
	if t[idx] == unsetLabel {
		return 0, false
	}
	return t[idx], true
}

// Set records pos for idx.
func (t *LabelTable) Set(idx int, pos int64) {
	t[idx] = pos
}

// LabelWrite is a staged label mutation (spec.md §3): a clause that
// succeeds applies all of its LabelWrites to the committed VM's
// LabelTable atomically, in order.
type LabelWrite struct {
	NameIdx int
	Pos     int64
}

// resolveStaged looks up idx first among staged writes for the current
// clause (latest wins), then in the committed table -- the "staged
// overrides committed, latest staged wins" rule of spec.md §4.3.
func resolveStaged(staged []LabelWrite, committed LabelTable, idx int) (int64, bool) {
	for i := len(staged) - 1; i >= 0; i-- {
		if staged[i].NameIdx == idx {
			return staged[i].Pos, true
		}
	}
	return committed.Get(idx)
}
