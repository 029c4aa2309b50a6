package xtractvm

import "fmt"

// Unit is the unit a signed offset or a SKIP/TAKE length is expressed
// in (spec.md §3).
type Unit uint8

const (
	UnitBytes Unit = iota
	UnitLines
	UnitChars
)

func (u Unit) String() string {
	switch u {
	case UnitBytes:
		return "b"
	case UnitLines:
		return "l"
	case UnitChars:
		return "c"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Base is the anchor a LocExpr's offset is relative to (spec.md §3).
type Base uint8

const (
	BaseCursor Base = iota
	BaseBOF
	BaseEOF
	BaseName
	BaseMatchStart
	BaseMatchEnd
	BaseLineStart
	BaseLineEnd
)

func (b Base) String() string {
	switch b {
	case BaseCursor:
		return "cursor"
	case BaseBOF:
		return "bof"
	case BaseEOF:
		return "eof"
	case BaseName:
		return "label"
	case BaseMatchStart:
		return "match-start"
	case BaseMatchEnd:
		return "match-end"
	case BaseLineStart:
		return "line-start"
	case BaseLineEnd:
		return "line-end"
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

// ClampPolicy bounds how a resolved location is clamped (spec.md §4.3).
type ClampPolicy uint8

const (
	ClampNone ClampPolicy = iota
	ClampFile
	ClampView
)

// LocExpr is a location expression: an anchor, an optional name (when
// Base == BaseName), and a signed offset in a unit (spec.md §3).
type LocExpr struct {
	Base    Base
	NameIdx int // only meaningful when Base == BaseName
	Offset  int64
	Unit    Unit
}

// View restricts the resolver/search windows and clamps cursor moves
// (spec.md §3). The zero value is inactive, i.e. the whole file.
type View struct {
	Active bool
	Lo     int64
	Hi     int64
}

// Effective returns the view's effective bounds given the file size:
// [Lo,Hi) if active, else [0,size).
func (v View) Effective(size int64) (lo, hi int64) {
	if v.Active {
		return v.Lo, v.Hi
	}
	return 0, size
}

// Match is the last successful find's byte range (spec.md §3).
type Match struct {
	Start int64
	End   int64
	Valid bool
}

// straddles reports whether m (if valid) is not wholly contained by
// [lo,hi) -- the condition that invalidates a Match on VIEWSET.
func (m Match) straddles(lo, hi int64) bool {
	if !m.Valid {
		return false
	}
	return m.Start < lo || m.End > hi
}

// VM is the clause virtual machine's state: cursor, last match, active
// view, and committed label positions (spec.md §3).
type VM struct {
	Cursor    int64
	LastMatch Match
	View      View
	Labels    LabelTable
}

// Clone returns a deep-enough copy of the VM suitable for staging: the
// LabelTable is a small fixed array, so a value copy is already a full
// copy with no aliasing.
func (vm VM) Clone() VM {
	return vm
}
