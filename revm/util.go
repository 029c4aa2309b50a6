package revm

import (
	"bytes"
	"errors"
	"fmt"
)

var wellKnownControls = map[rune]byte{
	0x07: 'a',
	0x08: 'b',
	0x09: 't',
	0x0a: 'n',
	0x0b: 'v',
	0x0c: 'f',
	0x0d: 'r',
}

// assert panics if cond is false. A failing assertion means the
// compiler emitted an instruction stream its own scheduler doesn't
// know how to step, not that the matched input was unusual.
func assert(cond bool, format string, args ...interface{}) {
	if !cond {
		var buf bytes.Buffer
		buf.WriteString("assertion failed: ")
		fmt.Fprintf(&buf, format, args...)
		panic(errors.New(buf.String()))
	}
}

func writeByteLiteral(buf *bytes.Buffer, b byte) {
	if ctrl, found := wellKnownControls[rune(b)]; found {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(ctrl)
		buf.WriteByte('\'')
	} else if b == '\\' || b == '\'' {
		buf.WriteByte('\'')
		buf.WriteByte('\\')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	} else if b >= 0x20 && b < 0x7f {
		buf.WriteByte('\'')
		buf.WriteByte(b)
		buf.WriteByte('\'')
	} else {
		fmt.Fprintf(buf, "$%02x", b)
	}
}
