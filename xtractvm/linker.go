package xtractvm

// runLinked executes prog against a fresh VM, invoking commit for
// every clause that succeeds, in program order. It implements the
// THEN/AND/OR chain semantics (spec.md §4.7): clauses joined by AND or
// OR form a single chain that the run treats as one unit -- an
// AND-linked clause only runs while the chain is still succeeding, an
// OR-linked clause only runs once the chain has failed and is looking
// for a fallback. THEN (and the Program's end) closes a chain: if the
// chain closes in a failed state (its last evaluated clause failed,
// even after an earlier clause in it committed), the whole run aborts there,
// since a clause program describes one deterministic extraction, not
// a best-effort scan that limps past a failed chain.
func runLinked(src *Source, prog *Program, commit func(clauseIdx int, sc *stagedClause)) error {
	vm := VM{Labels: NewLabelTable()}
	accFailed := false
	var lastErr error
	chainStart := true

	for i, clause := range prog.Clauses {
		linkIn := LinkNone
		if !chainStart {
			linkIn = prog.Clauses[i-1].Link
		}

		switch {
		case linkIn == LinkOr && !accFailed:
			// this chain already has a success; skip the fallback
		case linkIn == LinkAnd && accFailed:
			// chain is already dead; AND cannot resurrect it
		default:
			sc, err := stageClause(src, vm, i, clause)
			if err != nil {
				accFailed = true
				lastErr = err
			} else {
				for _, lw := range sc.labels {
					sc.vm.Labels.Set(lw.NameIdx, lw.Pos)
				}
				commit(i, sc)
				vm = sc.vm
				accFailed = false
				lastErr = nil
			}
		}

		if clause.Link == LinkThen || clause.Link == LinkNone {
			if accFailed {
				return lastErr
			}
			chainStart = true
		} else {
			chainStart = false
		}
	}
	return nil
}
