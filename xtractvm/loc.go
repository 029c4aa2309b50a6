package xtractvm

// resolveLoc turns a LocExpr into an absolute byte offset against vm
// (read against staged, not yet committed, label writes first) and
// src, then applies policy.
//
// Byte-unit offsets are clamped strictly: ClampView rejects a result
// outside the active view with ErrOutOfView rather than silently
// pulling it back in, since a byte offset is exact and an out-of-view
// byte position is a program error worth surfacing. Line- and
// char-unit offsets instead saturate at the file's edges inside
// stepLines/stepChars themselves, so by the time they reach policy
// enforcement here they are already within [0,Size()]; ClampView still
// applies on top of that for operations that require staying inside
// the view. This split (exact clamp for bytes, saturating step for
// lines/chars) is the resolution of the corresponding Open Question.
func resolveLoc(vm VM, src *Source, staged []LabelWrite, loc LocExpr, policy ClampPolicy) (int64, error) {
	var anchor int64
	switch loc.Base {
	case BaseCursor:
		anchor = vm.Cursor
	case BaseBOF:
		anchor = 0
	case BaseEOF:
		anchor = src.Size()
	case BaseName:
		pos, ok := resolveStaged(staged, vm.Labels, loc.NameIdx)
		if !ok {
			return 0, ErrUnknownLabel
		}
		anchor = pos
	case BaseMatchStart:
		if !vm.LastMatch.Valid {
			return 0, ErrNoActiveMatch
		}
		anchor = vm.LastMatch.Start
	case BaseMatchEnd:
		if !vm.LastMatch.Valid {
			return 0, ErrNoActiveMatch
		}
		anchor = vm.LastMatch.End
	case BaseLineStart:
		anchor = src.lineStart(vm.Cursor)
	case BaseLineEnd:
		// line-end is just past the terminating '\n', or Size() when
		// the cursor's line has none.
		anchor = src.lineEnd(vm.Cursor)
		if anchor < src.Size() {
			anchor++
		}
	default:
		return 0, ErrBadLocExpr
	}

	var pos int64
	switch loc.Unit {
	case UnitBytes:
		pos = anchor + loc.Offset
	case UnitLines:
		pos = src.stepLines(anchor, loc.Offset)
	case UnitChars:
		pos = src.stepChars(anchor, loc.Offset)
	default:
		return 0, ErrBadLocExpr
	}

	return clampLoc(pos, src.Size(), vm.View, policy)
}

// resolveGotoLoc implements the "SKIP to L" / GOTO contract (spec.md
// §4.4): resolve loc with no clamping at all, reject with ErrOutOfView
// if the raw result falls outside an active view, and only then clamp
// the survivor into the file. None of the three existing ClampPolicy
// values is this sequence on its own -- ClampView rejects without
// clamping, ClampFile clamps without a view check -- so GOTO composes
// them explicitly instead of picking one.
func resolveGotoLoc(vm VM, src *Source, staged []LabelWrite, loc LocExpr) (int64, error) {
	pos, err := resolveLoc(vm, src, staged, loc, ClampNone)
	if err != nil {
		return 0, err
	}
	if vm.View.Active && (pos < vm.View.Lo || pos > vm.View.Hi) {
		return 0, ErrOutOfView
	}
	return clampI64(pos, 0, src.Size()), nil
}

func clampLoc(pos, size int64, view View, policy ClampPolicy) (int64, error) {
	switch policy {
	case ClampNone:
		return pos, nil
	case ClampFile:
		return clampI64(pos, 0, size), nil
	case ClampView:
		lo, hi := view.Effective(size)
		if pos < lo || pos > hi {
			return 0, ErrOutOfView
		}
		return pos, nil
	}
	return clampI64(pos, 0, size), nil
}
