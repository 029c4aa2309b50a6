package revm

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/go-xtractvm/byteset"
)

// Program is a pattern compiled to a flat instruction list, ready for
// the Pike-style thread scheduler in exec.go to step through.
type Program struct {
	// Insts is the compiled instruction list. Execution always starts
	// at index 0.
	Insts []Inst

	// ByteSets is referenced by OpClass instructions' Class field.
	ByteSets []byteset.Matcher

	// Labels is an optional list of named jump targets, read by
	// disassembly only; it plays no role in execution. Compile leaves
	// it empty, so Disassemble falls back to synthetic L<pc> names.
	Labels Labels
}

// FindLabel returns the label for pc if one was generated, or a
// synthetic local one otherwise.
func (p *Program) FindLabel(pc int) *Label {
	for _, l := range p.Labels {
		if l.PC == pc {
			return l
		}
	}
	return &Label{PC: pc, Name: fmt.Sprintf("L%d", pc)}
}

// Disassemble writes a human-readable instruction listing to w, one
// instruction per line with jump targets resolved to labels.
func (p *Program) Disassemble(w io.Writer) (int, error) {
	var buf bytes.Buffer
	total := 0
	flush := func() error {
		n, err := w.Write(buf.Bytes())
		total += n
		buf.Reset()
		return err
	}

	targets := make(map[int]bool)
	for _, inst := range p.Insts {
		switch inst.Op {
		case OpSplit:
			targets[inst.X] = true
			targets[inst.Y] = true
		case OpJmp, OpChar, OpAny, OpClass, OpBOL, OpEOL:
			targets[inst.X] = true
		}
	}

	for i, inst := range p.Insts {
		if targets[i] {
			label := p.FindLabel(i)
			fmt.Fprintf(&buf, "%s:\n", label.Name)
			if err := flush(); err != nil {
				return total, err
			}
		}
		buf.WriteByte('\t')
		p.writeInst(&buf, i, inst)
		buf.WriteByte('\n')
		if err := flush(); err != nil {
			return total, err
		}
	}
	return total, nil
}

func (p *Program) writeInst(buf *bytes.Buffer, pc int, inst Inst) {
	buf.WriteString(inst.Op.String())
	switch inst.Op {
	case OpChar:
		buf.WriteByte(' ')
		writeByteLiteral(buf, inst.Arg)
		fmt.Fprintf(buf, " -> %s", p.FindLabel(inst.X).Name)
	case OpAny, OpBOL, OpEOL, OpJmp:
		fmt.Fprintf(buf, " -> %s", p.FindLabel(inst.X).Name)
	case OpClass:
		fmt.Fprintf(buf, " #%d -> %s", inst.Class, p.FindLabel(inst.X).Name)
		if inst.Class >= 0 && inst.Class < len(p.ByteSets) {
			fmt.Fprintf(buf, " ; %s", p.ByteSets[inst.Class].String())
		}
	case OpSplit:
		fmt.Fprintf(buf, " -> %s, %s", p.FindLabel(inst.X).Name, p.FindLabel(inst.Y).Name)
	}
}

func (p *Program) String() string {
	var buf bytes.Buffer
	p.Disassemble(&buf)
	return buf.String()
}
