package xtractvm

// OpKind is the closed set of clause operations. A Program is a flat
// slice of Clauses, each holding an ordered list of Ops that stage and
// commit as one atomic unit, so dispatch never needs the indirection
// of a per-kind type: one switch over Kind in exec.go covers every
// case, applied once per op in a clause's list.
type OpKind uint8

const (
	OpFind OpKind = iota
	OpFindRegex
	OpSkip
	OpTakeLen
	OpTakeTo
	OpTakeUntil
	OpTakeUntilRegex
	OpLabel
	OpGoto
	OpViewSet
	OpViewClear
	OpPrint
	OpFail
)

var opKindNames = [...]string{
	OpFind:           "find",
	OpFindRegex:      "findr",
	OpSkip:           "skip",
	OpTakeLen:        "take",
	OpTakeTo:         "take to",
	OpTakeUntil:      "take until",
	OpTakeUntilRegex: "take until r",
	OpLabel:          "label",
	OpGoto:           "goto",
	OpViewSet:        "viewset",
	OpViewClear:      "viewclear",
	OpPrint:          "print",
	OpFail:           "fail",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "OpKind(?)"
}

// Direction is the scan direction for FIND, FIND_RE and TAKE_UNTIL*.
type Direction uint8

const (
	DirForward Direction = iota
	DirBackward
)

func (d Direction) String() string {
	if d == DirBackward {
		return "backward"
	}
	return "forward"
}

// Op is a single tagged-variant operation. Only the fields relevant to
// Kind are populated; exec.go's dispatcher never reads a field the
// builder did not set for that Kind. Keeping every variant's payload in
// one flat struct avoids the interface-per-opcode dispatch the spec's
// redesign notes call out as unwarranted for a fixed, closed opcode set.
type Op struct {
	Kind OpKind

	// FIND / FIND_RE
	Needle []byte // FIND
	Regex  *Regex // FIND_RE
	To     LocExpr // resolved "to"-location bounding the search window; defaults to EOF
	HasTo  bool

	// SKIP / TAKE_LEN
	Amount int64
	Unit   Unit

	// TAKE_TO
	Dst LocExpr

	// TAKE_UNTIL / TAKE_UNTIL_RE (Needle/Regex above double as the
	// search pattern for these two as well)
	UntilAt    LocExpr // optional landing override, resolved against the staged match
	HasUntilAt bool

	// LABEL
	NameIdx int

	// GOTO
	Target LocExpr

	// VIEWSET
	ViewLo LocExpr
	ViewHi LocExpr

	// PRINT
	Literal []byte

	// FAIL
	Message string
}

// LinkTag is how a clause joins to the one after it (spec.md §2).
type LinkTag uint8

const (
	LinkNone LinkTag = iota
	LinkThen
	LinkAnd
	LinkOr
)

func (t LinkTag) String() string {
	switch t {
	case LinkThen:
		return "THEN"
	case LinkAnd:
		return "AND"
	case LinkOr:
		return "OR"
	}
	return ""
}

// Clause is an ordered sequence of ops plus the tag linking it to the
// next clause in the Program. All of a clause's ops stage against one
// shared VM snapshot and commit or roll back together: if any op
// fails, none of the clause's ranges, label writes, or cursor moves
// take effect. The last clause's Link is always LinkNone.
type Clause struct {
	Ops  []Op
	Link LinkTag
}

// Program is the compiled, ready-to-run clause list.
type Program struct {
	Clauses []Clause

	// Names is the label-name table: NameIdx fields above index into
	// this slice. Built once at compile time, immutable at run time.
	Names []string
}

// NameIndex returns the index of name in p.Names, appending it if this
// is the first reference. Used by the builder; never called once a
// Program is handed to the engine.
func (p *Program) NameIndex(name string) int {
	for i, n := range p.Names {
		if n == name {
			return i
		}
	}
	p.Names = append(p.Names, name)
	return len(p.Names) - 1
}
