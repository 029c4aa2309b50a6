package xtractvm

import (
	"bytes"
	"os"
	"testing"
)

func newTestSource(t *testing.T, content string) *Source {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "xtractvm-test-*")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	src, err := Open(f.Name())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { src.Close() })
	return src
}

// TestEngine_FindTakeToAtomic is scenario 3: find "ERROR" take to
// line-end is one atomic clause, not two independently-committing
// ones -- checked here by asserting a single commit. FIND lands the
// cursor at the match start, and line-end lies just past the '\n'.
// The rollback half is covered by the test below.
func TestEngine_FindTakeToAtomic(t *testing.T) {
	src := newTestSource(t, "name=alice\nage=30\n")

	prog := NewBuilder().
		Find([]byte("name=")).
		TakeTo(LocExpr{Base: BaseLineEnd}).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	result, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "name=alice\n" {
		t.Errorf("got %q, want %q", out.String(), "name=alice\n")
	}
	if result.ClausesCommitted != 1 {
		t.Errorf("got %d clauses committed, want 1 (find+take-to is one atomic clause)", result.ClausesCommitted)
	}
}

// TestEngine_FindTakeToAtomicRollsBackTogether confirms the other half
// of atomicity: when the second op in a multi-op clause fails, the
// first op's staged cursor move/match never commits, so a following
// clause still sees the pre-clause state.
func TestEngine_FindTakeToAtomicRollsBackTogether(t *testing.T) {
	src := newTestSource(t, "name=alice\n")

	prog := NewBuilder().
		Find([]byte("name=")).
		TakeTo(LocExpr{Base: BaseName, NameIdx: 99}). // unresolvable label: forces this op to fail
		Or().
		Print([]byte("fallback")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	result, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "fallback" {
		t.Errorf("got %q, want %q", out.String(), "fallback")
	}
	if result.ClausesCommitted != 1 {
		t.Errorf("got %d clauses committed, want 1 (the failed find+take-to clause must not count)", result.ClausesCommitted)
	}
}

func TestEngine_ChainFailureAbortsRun(t *testing.T) {
	src := newTestSource(t, "no match here\n")

	prog := NewBuilder().
		Find([]byte("absent")).
		Then().
		Print([]byte("unreachable")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err == nil {
		t.Fatalf("expected an error when the only clause in a chain fails")
	}
	if out.Len() != 0 {
		t.Errorf("expected no output to be emitted, got %q", out.String())
	}
}

func TestEngine_OrFallbackRunsOnlyAfterFailure(t *testing.T) {
	src := newTestSource(t, "status=ok\n")

	prog := NewBuilder().
		Find([]byte("absent")).
		Or().
		Print([]byte("fallback")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	result, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "fallback" {
		t.Errorf("got %q, want %q", out.String(), "fallback")
	}
	if result.ClausesCommitted != 1 {
		t.Errorf("got %d clauses committed, want 1", result.ClausesCommitted)
	}
}

func TestEngine_AndShortCircuitsOnFailure(t *testing.T) {
	src := newTestSource(t, "status=ok\n")

	prog := NewBuilder().
		Find([]byte("absent")).
		And().
		Print([]byte("never")).
		Or().
		Print([]byte("fallback")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	result, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "fallback" {
		t.Errorf("got %q, want %q", out.String(), "fallback")
	}
	if result.ClausesCommitted != 1 {
		t.Errorf("got %d clauses committed, want 1", result.ClausesCommitted)
	}
}

func TestEngine_LabelAndGoto(t *testing.T) {
	src := newTestSource(t, "AAAA=BBBB\n")

	b := NewBuilder()
	prog := b.
		Find([]byte("=")).
		Then().
		Label("eq").
		Then().
		Goto(LocExpr{Base: BaseBOF}).
		Then().
		TakeTo(b.LabelLoc("eq", 0, UnitBytes)).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "AAAA" {
		t.Errorf("got %q, want %q", out.String(), "AAAA")
	}
}

// TestEngine_FindBackwardWindowLandsAtMatchStart covers FIND's reversed
// window: resolving a "to" location before the cursor searches
// backward for the rightmost match, and the cursor still lands at the
// match start either way.
func TestEngine_FindBackwardWindowLandsAtMatchStart(t *testing.T) {
	src := newTestSource(t, "aaa:bbb:ccc\n")

	b := NewBuilder()
	prog := b.
		Goto(LocExpr{Base: BaseEOF}).
		Then().
		FindTo([]byte(":"), LocExpr{Base: BaseBOF}).
		Then().
		TakeTo(LocExpr{Base: BaseEOF}).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != ":ccc\n" {
		t.Errorf("got %q, want %q", out.String(), ":ccc\n")
	}
}

func TestEngine_ViewSetClampsSearch(t *testing.T) {
	src := newTestSource(t, "AAA:BBB:CCC")

	b := NewBuilder()
	prog := b.
		ViewSet(LocExpr{Base: BaseBOF}, LocExpr{Base: BaseBOF, Offset: 7}).
		Then().
		Find([]byte(":")).
		Or().
		Print([]byte("no-colon-in-view")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// The view [0,7) is "AAA:BBB", which does contain a colon, so the
	// fallback must NOT fire.
	if out.String() != "" {
		t.Errorf("got %q, want empty output (no PRINT committed)", out.String())
	}
}

// TestEngine_RegexFindThenTake exercises FIND_RE landing the cursor at
// the match start and TAKE TO reaching the match end, both staged in
// the same atomic clause.
func TestEngine_RegexFindThenTake(t *testing.T) {
	src := newTestSource(t, "order id=48213 total\n")

	b := NewBuilder()
	bb, err := b.FindRegex([]byte(`\d+`))
	if err != nil {
		t.Fatalf("FindRegex: %v", err)
	}
	prog := bb.
		TakeTo(LocExpr{Base: BaseMatchEnd}).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err = eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "48213" {
		t.Errorf("got %q, want %q", out.String(), "48213")
	}
}

// TestEngine_TakeUntilDefaultLandsAtMatchStart is scenario 6: find
// "line2" take until "line3" lands at line3's start, one atomic
// clause (the default "at" landing -- match start -- already coincides
// with the line boundary here, since line3 begins right after a
// newline).
func TestEngine_TakeUntilDefaultLandsAtMatchStart(t *testing.T) {
	src := newTestSource(t, "line1\nline2\nline3\n")

	prog := NewBuilder().
		Find([]byte("line2")).
		TakeUntil([]byte("line3")).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "line2\n" {
		t.Errorf("got %q, want %q", out.String(), "line2\n")
	}
}

// TestEngine_PrintCursorSentinel exercises PRINT's cursor-mark
// interpolation.
func TestEngine_PrintCursorSentinel(t *testing.T) {
	src := newTestSource(t, "abcdef\n")

	prog := NewBuilder().
		Skip(3, UnitBytes).
		Print([]byte{'@', cursorSentinel, '@'}).
		Build()

	var out bytes.Buffer
	eng := NewEngine(src, prog)
	_, err := eng.Run(&out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.String() != "@3@" {
		t.Errorf("got %q, want %q", out.String(), "@3@")
	}
}
