package xtractvm

import "strconv"

// Range is an emitted [Start,End) byte span, queued by TAKE* and
// PRINT ops until the clause that produced it commits.
type Range struct {
	Start, End int64
	Literal    []byte // non-nil for PRINT of a literal; nil for a take span read from src
}

// stagedClause accumulates everything one clause's ops produce before
// the clause is known to succeed: a new VM state, the ranges it wants
// to emit, and the label writes it wants to commit. None of it is
// visible outside the clause until the linker commits it. ranges,
// labels and marks are preallocated to clauseCaps's plan and never
// grow past it: an op that would overrun its slot fails CAPACITY
// instead of silently reallocating, the arena discipline spec.md's
// resource model calls for.
type stagedClause struct {
	vm     VM
	ranges []Range
	labels []LabelWrite
	marks  [][20]byte // inline decimal buffers for PRINT's cursor marks
}

// newStagedClause starts staging from committed state vm, sizing its
// scratch slices from caps.
func newStagedClause(vm VM, caps clauseCaps) *stagedClause {
	return &stagedClause{
		vm:     vm.Clone(),
		ranges: make([]Range, 0, caps.maxRanges),
		labels: make([]LabelWrite, 0, caps.maxLabels),
		marks:  make([][20]byte, 0, caps.maxMarks),
	}
}

func (sc *stagedClause) emitRange(start, end int64) error {
	if len(sc.ranges) == cap(sc.ranges) {
		return capacityError(uint64(len(sc.ranges)+1), uint64(cap(sc.ranges)))
	}
	sc.ranges = append(sc.ranges, Range{Start: start, End: end})
	return nil
}

func (sc *stagedClause) emitLiteral(lit []byte) error {
	if len(sc.ranges) == cap(sc.ranges) {
		return capacityError(uint64(len(sc.ranges)+1), uint64(cap(sc.ranges)))
	}
	sc.ranges = append(sc.ranges, Range{Literal: lit})
	return nil
}

// emitCursorMark stages the decimal ASCII of cursor as a LIT range.
// The digits are formatted into a fixed [20]byte slot owned by sc
// (large enough for any int64, sign included) rather than a
// heap-allocated string, per PRINT's inline-buffer contract.
func (sc *stagedClause) emitCursorMark(cursor int64) error {
	if len(sc.marks) == cap(sc.marks) {
		return capacityError(uint64(len(sc.marks)+1), uint64(cap(sc.marks)))
	}
	sc.marks = sc.marks[:len(sc.marks)+1]
	slot := &sc.marks[len(sc.marks)-1]
	n := len(strconv.AppendInt(slot[:0], cursor, 10))
	return sc.emitLiteral(slot[:n])
}

func (sc *stagedClause) setLabel(idx int, pos int64) error {
	if len(sc.labels) == cap(sc.labels) {
		return capacityError(uint64(len(sc.labels)+1), uint64(cap(sc.labels)))
	}
	sc.labels = append(sc.labels, LabelWrite{NameIdx: idx, Pos: pos})
	return nil
}

// clauseCaps is a preflight capacity plan for one clause: an upper
// bound on the ranges, label writes and PRINT cursor marks its ops can
// possibly stage, derived by a single static pass over the clause's
// Ops before execution (spec.md §5). Staging past any bound fails with
// ErrCapacity instead of growing the backing slices, the
// arena-preallocation discipline carried over from the teacher's
// fixed-size bytecode buffers.
type clauseCaps struct {
	maxRanges int
	maxLabels int
	maxMarks  int
}

// cursorSentinel is the single byte PRINT's literal recognizes as a
// marker for "interpolate the current cursor's decimal value here."
// spec.md leaves the exact byte unspecified; 0x01 (SOH) is chosen
// because it cannot appear in text extracted from line-oriented
// sources without itself being an escape the caller controls.
const cursorSentinel = 0x01

// planCaps computes the capacity a clause's ops can possibly need,
// summed across every op in the clause (a clause may hold several).
// Every take-like op stages at most one range and every LABEL op at
// most one label write; PRINT's contribution depends on how many cursorSentinel
// occurrences its literal has, since each one splits off a literal
// segment and a cursor-mark range.
func planCaps(ops []Op) clauseCaps {
	var caps clauseCaps
	for _, op := range ops {
		switch op.Kind {
		case OpTakeLen, OpTakeTo, OpTakeUntil, OpTakeUntilRegex:
			caps.maxRanges++
		case OpPrint:
			segments, marks := countPrintRanges(op.Literal)
			caps.maxRanges += segments + marks
			caps.maxMarks += marks
		case OpLabel:
			caps.maxLabels++
		}
	}
	return caps
}

// countPrintRanges scans lit for cursorSentinel occurrences and
// reports how many literal segments and cursor marks PRINT will stage
// for it.
func countPrintRanges(lit []byte) (segments, marks int) {
	start := 0
	for i, b := range lit {
		if b == cursorSentinel {
			if i > start {
				segments++
			}
			marks++
			start = i + 1
		}
	}
	if start < len(lit) {
		segments++
	}
	return segments, marks
}
