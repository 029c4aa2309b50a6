// Package xtractvm implements a virtual machine for byte-oriented text
// extraction, driven by a small declarative clause program instead of
// a general-purpose scripting language.
//
// A Program is a flat list of Clauses. Each Clause holds an ordered
// list of Ops and a LinkTag describing how it joins the clause after it:
//
//   THEN   unconditionally starts a new chain
//   AND    runs only while the current chain is still succeeding
//   OR     runs only once the current chain has failed, as a fallback
//
// Clauses joined by AND/OR form one chain; THEN (and the Program's
// end) closes it. A chain that closes in a failed state -- its last
// evaluated clause failed -- aborts the whole run: a clause program
// describes one deterministic extraction, not a best-effort scan.
//
// Execution is clause-atomic. Each clause stages its effects --
// cursor movement, the active view, label writes, and any bytes it
// wants emitted -- against a throwaway copy of the VM state. Only once
// the clause is known to have succeeded are those effects committed:
// the real cursor moves, the real labels update, and the staged bytes
// are written to the output in commit order. A clause that fails
// leaves no trace.
//
// The VM state is small by design:
//
//   Cursor     the current read position
//   LastMatch  the byte range of the most recent successful FIND
//   View       an optional [lo,hi) window that bounds searches,
//              cursor movement, and TAKE ranges
//   Labels     a table of named byte positions stamped by LABEL
//
// Every op kind is a case in exec.go's single switch rather than a
// separate type with its own Exec method: the opcode set is small and
// closed, so a tagged Op struct dispatched by one switch is simpler to
// read than an interface with thirteen implementations, and it avoids
// a virtual call on every op.
//
// The opcodes:
//
// • FIND / FINDR
//
//   FIND needle [, to]
//
// Searches [cursor, to) for a literal needle (FIND) or a compiled
// pattern (FINDR, see package revm), where to defaults to the active
// view's end. If to resolves before the cursor, the search runs
// backward over [to, cursor) instead, so the match closest to the
// cursor wins either way. On success, LastMatch is set and the cursor
// moves to the match start, whatever the direction. Fails with
// NO_MATCH if the needle/pattern is not found in the searched window.
//
// • SKIP
//
//   SKIP amount, unit
//
// Moves the cursor by amount (bytes, lines, or chars). A byte-unit
// move that would land outside the active view fails with
// LOC_RESOLVE; a line- or char-unit move instead saturates at the
// file's start or end.
//
// • TAKE / TAKE TO / TAKE UNTIL / TAKE UNTIL r
//
//   TAKE amount, unit
//   TAKE TO dst
//   TAKE UNTIL needle [, at]
//   TAKE UNTIL r pattern [, at]
//
// Stages a byte range to emit and moves the cursor to the range's far
// edge. TAKE moves by a fixed amount; TAKE TO moves to an explicit
// location; TAKE UNTIL/TAKE UNTIL r search forward only, over
// [cursor, view end), and stage everything from the old cursor to the
// match start -- or to the AT location, resolved against the new
// match, when one is given. That range is not reordered: the cursor
// advances only if the landing position lies after it.
//
// • LABEL
//
//   LABEL name
//
// Stamps the cursor's current position under name, to be read back
// later with a location expression based at that label.
//
// • GOTO
//
//   GOTO target
//
// Moves the cursor directly to a resolved location expression.
//
// • VIEWSET / VIEWCLEAR
//
//   VIEWSET lo, hi
//   VIEWCLEAR
//
// VIEWSET narrows all subsequent searches, cursor moves, and TAKE
// ranges to [lo,hi). If the current LastMatch is not wholly contained
// by the new view, it is invalidated. VIEWCLEAR restores the whole
// file as the active view.
//
// • PRINT
//
//   PRINT literal
//
// Stages a literal byte string to emit. Each cursor-sentinel byte in
// the literal is replaced by the cursor's decimal value at the time
// PRINT runs.
//
// • FAIL
//
//   FAIL [message]
//
// Unconditionally fails the clause, optionally carrying a diagnostic
// message -- used to assert a precondition or deliberately end an
// AND-chain.
package xtractvm
