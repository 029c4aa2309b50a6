package xtractvm

import "fmt"

// applyOp executes a single op against the clause's staged state. It
// never touches committed VM state directly: everything it decides
// lands in sc until the clause as a whole is known to succeed.
func applyOp(src *Source, sc *stagedClause, clauseIdx, opIdx int, op Op) error {
	switch op.Kind {
	case OpFind:
		return execFind(src, sc, op)
	case OpFindRegex:
		return execFindRegex(src, sc, op)
	case OpSkip:
		return execSkip(src, sc, op)
	case OpTakeLen:
		return execTakeLen(src, sc, op)
	case OpTakeTo:
		return execTakeTo(src, sc, op)
	case OpTakeUntil:
		return execTakeUntil(src, sc, op, false)
	case OpTakeUntilRegex:
		return execTakeUntil(src, sc, op, true)
	case OpLabel:
		return execLabel(sc, op)
	case OpGoto:
		return execGoto(src, sc, op)
	case OpViewSet:
		return execViewSet(src, sc, op)
	case OpViewClear:
		return execViewClear(sc)
	case OpPrint:
		return execPrint(sc, op)
	case OpFail:
		return execFail(op)
	default:
		return fmt.Errorf("xtractvm: unhandled op kind %v", op.Kind)
	}
}

// searchWindow resolves FIND/FIND_RE's window: [cursor, L) where L is
// the op's resolved "to"-location, defaulting to EOF (the view's
// effective high edge) when the op has none. When L falls before the
// cursor, the window and direction flip: search backward in
// [L, cursor), returning the match closest to the cursor either way.
func searchWindow(src *Source, sc *stagedClause, op Op) (lo, hi int64, dir Direction, err error) {
	_, viewHi := sc.vm.View.Effective(src.Size())
	cursor := sc.vm.Cursor

	target := viewHi
	if op.HasTo {
		target, err = resolveLoc(sc.vm, src, sc.labels, op.To, ClampView)
		if err != nil {
			return 0, 0, DirForward, err
		}
	}
	if target < cursor {
		return target, cursor, DirBackward, nil
	}
	return cursor, target, DirForward, nil
}

func execFind(src *Source, sc *stagedClause, op Op) error {
	if len(op.Needle) == 0 {
		return ErrEmptyNeedle
	}
	lo, hi, dir, err := searchWindow(src, sc, op)
	if err != nil {
		return err
	}
	m, ok := src.findWindow(lo, hi, op.Needle, dir)
	if !ok {
		return ErrSearchNoMatch
	}
	sc.vm.LastMatch = m
	sc.vm.Cursor = m.Start
	return nil
}

func execFindRegex(src *Source, sc *stagedClause, op Op) error {
	if op.Regex == nil {
		return ErrBadLocExpr
	}
	lo, hi, dir, err := searchWindow(src, sc, op)
	if err != nil {
		return err
	}
	m, ok := src.findRegexWindow(lo, hi, op.Regex, dir)
	if !ok {
		return ErrSearchNoMatch
	}
	sc.vm.LastMatch = m
	sc.vm.Cursor = m.Start
	return nil
}

func execSkip(src *Source, sc *stagedClause, op Op) error {
	policy := ClampFile
	if op.Unit == UnitBytes {
		policy = ClampView
	}
	loc := LocExpr{Base: BaseCursor, Offset: op.Amount, Unit: op.Unit}
	pos, err := resolveLoc(sc.vm, src, sc.labels, loc, policy)
	if err != nil {
		return err
	}
	sc.vm.Cursor = pos
	return nil
}

func execTakeLen(src *Source, sc *stagedClause, op Op) error {
	loc := LocExpr{Base: BaseCursor, Offset: op.Amount, Unit: op.Unit}
	end, err := resolveLoc(sc.vm, src, sc.labels, loc, ClampView)
	if err != nil {
		return err
	}
	lo, hi := minI64(sc.vm.Cursor, end), maxI64(sc.vm.Cursor, end)
	if err := sc.emitRange(lo, hi); err != nil {
		return err
	}
	sc.vm.Cursor = end
	return nil
}

func execTakeTo(src *Source, sc *stagedClause, op Op) error {
	dst, err := resolveLoc(sc.vm, src, sc.labels, op.Dst, ClampView)
	if err != nil {
		return err
	}
	lo, hi := minI64(sc.vm.Cursor, dst), maxI64(sc.vm.Cursor, dst)
	if err := sc.emitRange(lo, hi); err != nil {
		return err
	}
	sc.vm.Cursor = dst
	return nil
}

// execTakeUntil implements TAKE_UNTIL and TAKE_UNTIL_RE: forward-only,
// searching [cursor, view.hi). The landing position dst defaults to
// the match start, or an explicit "at" location resolved against the
// staged match when the op has one. The staged range is {cursor, dst}
// exactly as given, with no order-normalization -- if dst ends up
// before cursor the range is staged backward and the cursor does not
// move.
func execTakeUntil(src *Source, sc *stagedClause, op Op, regex bool) error {
	cursor := sc.vm.Cursor
	_, viewHi := sc.vm.View.Effective(src.Size())

	var m Match
	var ok bool
	if regex {
		if op.Regex == nil {
			return ErrBadLocExpr
		}
		m, ok = src.findRegexWindow(cursor, viewHi, op.Regex, DirForward)
	} else {
		if len(op.Needle) == 0 {
			return ErrEmptyNeedle
		}
		m, ok = src.findWindow(cursor, viewHi, op.Needle, DirForward)
	}
	if !ok {
		return ErrSearchNoMatch
	}
	sc.vm.LastMatch = m

	dst := m.Start
	if op.HasUntilAt {
		resolved, err := resolveLoc(sc.vm, src, sc.labels, op.UntilAt, ClampView)
		if err != nil {
			return err
		}
		dst = resolved
	}
	if err := sc.emitRange(cursor, dst); err != nil {
		return err
	}
	if dst > cursor {
		sc.vm.Cursor = dst
	}
	return nil
}

func execLabel(sc *stagedClause, op Op) error {
	return sc.setLabel(op.NameIdx, sc.vm.Cursor)
}

// execGoto implements GOTO as the alias spec.md §4.4 allows for
// "SKIP to L": resolve with no clamping, reject if the raw result
// falls outside an active view, then clamp to the file.
func execGoto(src *Source, sc *stagedClause, op Op) error {
	pos, err := resolveGotoLoc(sc.vm, src, sc.labels, op.Target)
	if err != nil {
		return err
	}
	sc.vm.Cursor = pos
	return nil
}

func execViewSet(src *Source, sc *stagedClause, op Op) error {
	lo, err := resolveLoc(sc.vm, src, sc.labels, op.ViewLo, ClampFile)
	if err != nil {
		return err
	}
	hi, err := resolveLoc(sc.vm, src, sc.labels, op.ViewHi, ClampFile)
	if err != nil {
		return err
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if sc.vm.LastMatch.straddles(lo, hi) {
		sc.vm.LastMatch = Match{}
	}
	sc.vm.View = View{Active: true, Lo: lo, Hi: hi}
	sc.vm.Cursor = clampI64(sc.vm.Cursor, lo, hi)
	return nil
}

func execViewClear(sc *stagedClause) error {
	sc.vm.View = View{}
	return nil
}

// execPrint stages op.Literal as alternating literal segments and
// cursor-mark ranges, splitting wherever cursorSentinel appears. The
// cursor value interpolated at each mark is a snapshot taken when
// PRINT runs, not when the range is later emitted.
func execPrint(sc *stagedClause, op Op) error {
	cursor := sc.vm.Cursor
	lit := op.Literal
	start := 0
	for i, b := range lit {
		if b != cursorSentinel {
			continue
		}
		if i > start {
			if err := sc.emitLiteral(lit[start:i]); err != nil {
				return err
			}
		}
		if err := sc.emitCursorMark(cursor); err != nil {
			return err
		}
		start = i + 1
	}
	if start < len(lit) {
		if err := sc.emitLiteral(lit[start:]); err != nil {
			return err
		}
	}
	return nil
}

func execFail(op Op) error {
	if op.Message != "" {
		return fmt.Errorf("%w: %s", ErrFailRequested, op.Message)
	}
	return ErrFailRequested
}
