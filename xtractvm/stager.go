package xtractvm

import "errors"

// stageClause runs clauseIdx's ops in order against committed vm, all
// against one shared staged VM, and returns the staged result without
// mutating vm. The first op to fail aborts the whole clause: none of
// the ops run after it, and nothing it or its predecessors staged
// survives (the caller never sees the returned *stagedClause). The
// caller (the linker) decides whether to commit what did stage.
func stageClause(src *Source, vm VM, clauseIdx int, clause Clause) (*stagedClause, error) {
	caps := planCaps(clause.Ops)
	sc := newStagedClause(vm, caps)

	for opIdx, op := range clause.Ops {
		if err := applyOp(src, sc, clauseIdx, opIdx, op); err != nil {
			return nil, &OpError{Kind: classifyErr(err), Clause: clauseIdx, Op: opIdx, Err: err}
		}
	}
	return sc, nil
}

// classifyErr maps a low-level sentinel error to the ErrKind an
// OpError reports, so callers outside this package can branch on
// failure category without string matching.
func classifyErr(err error) ErrKind {
	switch {
	case errors.Is(err, ErrEmptyNeedle), errors.Is(err, ErrBadLocExpr):
		return ErrBadNeedle
	case errors.Is(err, ErrUnknownLabel), errors.Is(err, ErrNoActiveMatch), errors.Is(err, ErrLabelIndexRange):
		return ErrLocResolve
	case errors.Is(err, ErrOutOfView), errors.Is(err, ErrOutOfFile):
		return ErrLocResolve
	case errors.Is(err, ErrSearchNoMatch):
		return ErrNoMatch
	case errors.Is(err, ErrFailRequested):
		return ErrFailOp
	case errors.Is(err, ErrCapacityExceeded):
		return ErrCapacity
	}
	return ErrIO
}
