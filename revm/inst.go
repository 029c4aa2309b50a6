package revm

// Opcode is the closed instruction set the compiler emits and the
// thread scheduler in exec.go steps through.
type Opcode uint8

const (
	OpChar  Opcode = iota // match one literal byte
	OpAny                 // match any byte except '\n'
	OpClass               // match one byte against a ByteSets entry
	OpBOL                 // zero-width: only at the start of the search window
	OpEOL                 // zero-width: only at the end of the search window
	OpSplit               // zero-width: fork to X (higher priority) and Y
	OpJmp                 // zero-width: go to X
	OpMatch               // accept
)

var opcodeNames = [...]string{
	OpChar:  "char",
	OpAny:   "any",
	OpClass: "class",
	OpBOL:   "bol",
	OpEOL:   "eol",
	OpSplit: "split",
	OpJmp:   "jmp",
	OpMatch: "match",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return "?"
}

// Inst is one compiled instruction. X and Y are successor instruction
// indices; which fields are meaningful depends on Op:
//
//	OpChar/OpAny/OpClass/OpBOL/OpEOL/OpJmp   X is the single successor
//	OpSplit                                   X is tried before Y
//	OpMatch                                   neither is used
type Inst struct {
	Op    Opcode
	Arg   byte // OpChar's literal byte
	Class int  // OpClass's index into Program.ByteSets
	X, Y  int
}
