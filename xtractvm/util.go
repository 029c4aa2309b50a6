package xtractvm

import (
	"bytes"
	"errors"
	"fmt"
)

// wellKnownControls names the ASCII control bytes that have a short
// backslash escape, for rendering needles and PRINT literals as text.
// This package has no disassembler; nothing here calls the rendering
// helpers below.
var wellKnownControls = map[rune]byte{
	0x07: 'a',
	0x08: 'b',
	0x09: 't',
	0x0a: 'n',
	0x0b: 'v',
	0x0c: 'f',
	0x0d: 'r',
}

// assert panics if cond is false. It checks the consistency of the
// compile-time tunables at package init; a failure means the constants
// were edited into a contradiction, not that the input data was
// unusual.
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

// writeQuotedBytes renders a needle or literal byte string for
// disassembly, preferring a double-quoted Go-syntax string when every
// byte is printable ASCII and falling back to comma-separated hex.
func writeQuotedBytes(buf *bytes.Buffer, raw []byte) {
	printable := true
	for _, b := range raw {
		if b < 0x20 || b >= 0x7f {
			printable = false
			break
		}
	}
	if printable {
		fmt.Fprintf(buf, "%q", raw)
		return
	}
	first := true
	for _, b := range raw {
		if !first {
			buf.WriteByte(',')
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "0x%02x", b)
		first = false
	}
}

func minI64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxI64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func clampI64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
