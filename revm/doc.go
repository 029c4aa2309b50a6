// Package revm implements a small regular expression engine used for
// the FINDR and TAKE UNTIL r operations of the xtractvm clause
// language. A pattern compiles to a flat list of instructions, which
// a Pike-style breadth-first thread scheduler then steps through byte
// by byte -- no backtracking, so match time is linear in the length
// of the scanned window regardless of the pattern.
//
// SYNTAX
//
// Supported pattern syntax is a practical subset of POSIX-ish regular
// expressions:
//
//	.            any byte except newline
//	^ $          anchors, relative to the search window supplied to
//	             Find/FindLast, not to each attempted start offset
//	[abc] [^abc] [a-z]  classes, with \d \D \s \S \w \W usable inside
//	\d \D \s \S \w \W   class escapes, also usable bare
//	* + ? {n} {n,} {n,m}  greedy quantifiers only; there is no
//	             non-greedy/lazy form
//	a|b          alternation
//	(...)        grouping (non-capturing; this engine reports only
//	             the overall match span, never submatches)
//
// INSTRUCTION SET
//
// The compiler (compile.go) lowers a pattern's AST to the following
// opcodes, using Thompson's classic frag-plus-patch-list construction:
//
//	CHAR c -> x      match one byte equal to c
//	ANY -> x         match one byte, any value except '\n'
//	CLASS #i -> x    match one byte against ByteSets[i]
//	BOL -> x         zero-width, only at the start of the window
//	EOL -> x         zero-width, only at the end of the window
//	SPLIT -> x, y    zero-width fork; x is tried before y
//	JMP -> x         zero-width, unconditional
//	MATCH            accept
//
// Quantifiers are pure instruction-graph shapes built from SPLIT, the
// same way the teacher's CHOICE/COMMIT pair built backtracking
// alternatives: a* is a SPLIT that prefers entering the body and
// looping back over it, falling through only once the body itself
// fails to consume anything further. There is no separate
// "try-then-jump" instruction family here (the teacher's TANYB /
// TSAMEB / TLITB / TMATCHB) because the Pike scheduler explores both
// arms of a SPLIT directly instead of backtracking into one.
//
// EXECUTION
//
// exec.go steps a set of live threads forward one input byte at a
// time (see Program.matchFrom). At each position, every live thread's
// zero-width successors (SPLIT/JMP/BOL/EOL) are expanded into the
// next thread list via epsilon closure before the next byte is
// consumed, exactly like a classic Pike VM. A generation counter
// (threadList) dedups threads queued more than once in the same step
// without needing to clear a bitmap on every position.
//
// Because greedy quantifiers place the "keep looping" edge at higher
// priority than the "stop" edge, and threads are explored in priority
// order, the first MATCH reached at a given position is always the
// greedy, leftmost-biased one -- matching the textbook guarantee of
// Pike's construction.
//
// Find and FindLast try successive start offsets (left-to-right and
// right-to-left respectively) and return the first one that produces
// a match, rather than running one simultaneous multi-start
// simulation; xtractvm only ever calls these against already
// bounded, chunk-sized windows, so the extra constant factor this
// costs is deliberately traded for a simpler scheduler.
package revm
