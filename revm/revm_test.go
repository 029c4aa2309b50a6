package revm

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/renstrom/dedent"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var reNL = regexp.MustCompile(`(?m)^`)

func diff(l, r string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(l, r, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reNL.ReplaceAllLiteralString(pretty, "\t")
}

func TestProgram_Disassemble(t *testing.T) {
	type testrow struct {
		Pattern  string
		Expected string
	}

	data := []testrow{
		{
			Pattern: `ab`,
			Expected: `
				char 'a' -> L1
			L1:
				char 'b' -> L2
			L2:
				match
			`,
		},
		{
			Pattern: `a*`,
			Expected: `
			L0:
				split -> L1, L2
			L1:
				char 'a' -> L0
			L2:
				match
			`,
		},
	}

	for i, row := range data {
		prog, err := Compile([]byte(row.Pattern))
		if err != nil {
			t.Errorf("%s/%03d: compile error: %v", t.Name(), i, err)
			continue
		}
		var buf bytes.Buffer
		if _, err := prog.Disassemble(&buf); err != nil {
			t.Errorf("%s/%03d: disassemble error: %v", t.Name(), i, err)
			continue
		}
		actual := buf.String()
		expected := dedent.Dedent(row.Expected)[1:]
		if actual != expected {
			t.Errorf("%s/%03d: wrong output:\n%s", t.Name(), i, diff(expected, actual))
		}
	}
}

func TestProgram_Find(t *testing.T) {
	type testrow struct {
		Pattern     string
		Input       string
		WantStart   int
		WantEnd     int
		WantMatched bool
	}

	data := []testrow{
		{Pattern: `ana`, Input: "banana", WantStart: 1, WantEnd: 4, WantMatched: true},
		{Pattern: `a+`, Input: "baaac", WantStart: 1, WantEnd: 4, WantMatched: true},
		{Pattern: `a*`, Input: "bbb", WantStart: 0, WantEnd: 0, WantMatched: true},
		{Pattern: `x`, Input: "abc", WantMatched: false},
		{Pattern: `^abc`, Input: "abcdef", WantStart: 0, WantEnd: 3, WantMatched: true},
		{Pattern: `def$`, Input: "abcdef", WantStart: 3, WantEnd: 6, WantMatched: true},
		{Pattern: `^abc`, Input: "xabc", WantMatched: false},
		{Pattern: `[0-9]+`, Input: "id=4821.", WantStart: 3, WantEnd: 7, WantMatched: true},
		{Pattern: `\d{2,4}`, Input: "x123456", WantStart: 1, WantEnd: 5, WantMatched: true},
		{Pattern: `colou?r`, Input: "favorite color", WantStart: 9, WantEnd: 14, WantMatched: true},
		{Pattern: `foo|bar`, Input: "xxbarzz", WantStart: 2, WantEnd: 5, WantMatched: true},
	}

	for i, row := range data {
		prog, err := Compile([]byte(row.Pattern))
		if err != nil {
			t.Fatalf("%s/%03d: compile error: %v", t.Name(), i, err)
		}
		start, end, ok := prog.Find([]byte(row.Input))
		if ok != row.WantMatched {
			t.Errorf("%s/%03d: pattern %q against %q: matched=%v, want %v", t.Name(), i, row.Pattern, row.Input, ok, row.WantMatched)
			continue
		}
		if ok && (start != row.WantStart || end != row.WantEnd) {
			t.Errorf("%s/%03d: pattern %q against %q: got [%d,%d), want [%d,%d)", t.Name(), i, row.Pattern, row.Input, start, end, row.WantStart, row.WantEnd)
		}
	}
}

func TestProgram_FindLast(t *testing.T) {
	prog, err := Compile([]byte(`a+`))
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	start, end, ok := prog.FindLast([]byte("aa_a_aaa"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if start != 5 || end != 8 {
		t.Errorf("got [%d,%d), want [5,8)", start, end)
	}
}

func TestProgram_ClassNegation(t *testing.T) {
	prog, err := Compile([]byte(`[^,]+`))
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	start, end, ok := prog.Find([]byte("aaa,bbb"))
	if !ok || start != 0 || end != 3 {
		t.Errorf("got [%d,%d) ok=%v, want [0,3) ok=true", start, end, ok)
	}
}

func TestCompile_UnbalancedGroup(t *testing.T) {
	if _, err := Compile([]byte(`(abc`)); err == nil {
		t.Errorf("expected an error for an unclosed group")
	}
}

func TestCompile_UnbalancedClass(t *testing.T) {
	if _, err := Compile([]byte(`[abc`)); err == nil {
		t.Errorf("expected an error for an unclosed class")
	}
}
