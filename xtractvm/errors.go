package xtractvm

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
)

// ErrKind is the closed set of ways a clause, a resolve, or the whole
// run can fail. It is the enum spec.md §7 names.
type ErrKind uint8

const (
	ErrNone ErrKind = iota
	ErrParse
	ErrBadNeedle
	ErrLocResolve
	ErrNoMatch
	ErrLabelFmt
	ErrIO
	ErrOOM
	ErrCapacity
	ErrFailOp
)

var errKindNames = [...]string{
	ErrNone:       "OK",
	ErrParse:      "PARSE",
	ErrBadNeedle:  "BAD_NEEDLE",
	ErrLocResolve: "LOC_RESOLVE",
	ErrNoMatch:    "NO_MATCH",
	ErrLabelFmt:   "LABEL_FMT",
	ErrIO:         "IO",
	ErrOOM:        "OOM",
	ErrCapacity:   "CAPACITY",
	ErrFailOp:     "FAIL_OP",
}

func (k ErrKind) String() string {
	if int(k) < len(errKindNames) && errKindNames[k] != "" {
		return errKindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", uint8(k))
}

// Sentinel errors for conditions that carry no extra context of their
// own; executors and the resolver wrap these in an *OpError when they
// need to attach clause/op/location context.
var (
	ErrEmptyNeedle      = errors.New("xtractvm: empty needle")
	ErrNoActiveMatch    = errors.New("xtractvm: location expression references a match, but none is active")
	ErrUnknownLabel     = errors.New("xtractvm: reference to undefined label")
	ErrOutOfView        = errors.New("xtractvm: resolved location falls outside the active view")
	ErrOutOfFile        = errors.New("xtractvm: resolved location falls outside the file")
	ErrLabelIndexRange  = errors.New("xtractvm: label index out of range")
	ErrBadLocExpr       = errors.New("xtractvm: location expression has an unrecognized base or unit")
	ErrSearchNoMatch    = errors.New("xtractvm: search found no match in the active view")
	ErrFailRequested    = errors.New("xtractvm: fail op")
	ErrCapacityExceeded = errors.New("xtractvm: clause exceeded its preflight capacity plan")
)

// OpError is the error returned when staging a clause's operation
// fails. It records enough context for the outer driver to build a
// "clause N, op M: ..." diagnostic without xtractvm prescribing the
// exact message format (spec.md §7).
type OpError struct {
	Kind    ErrKind
	Clause  int
	Op      int
	Err     error
	Context string
}

func (e *OpError) Error() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "xtractvm: clause %d op %d: %s", e.Clause, e.Op, e.Kind)
	if e.Context != "" {
		buf.WriteString(": ")
		buf.WriteString(e.Context)
	}
	if e.Err != nil {
		buf.WriteString(": ")
		buf.WriteString(e.Err.Error())
	}
	return buf.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// capacityError formats a CAPACITY diagnostic from the number of staged
// entries a clause needs and the number its preflight plan holds, e.g.
// "need 3, preflight plan holds 2".
func capacityError(need, have uint64) error {
	return fmt.Errorf("%w: need %s, preflight plan holds %s",
		ErrCapacityExceeded, humanize.Comma(int64(need)), humanize.Comma(int64(have)))
}
