package revm

import (
	"fmt"

	"github.com/chronos-tachyon/go-xtractvm/byteset"
)

// Compile parses pattern and lowers it to a Program using Thompson's
// construction: each AST node compiles to a small fragment of
// instructions with a list of "patches" -- successor slots still
// waiting to be wired to whatever follows. This is the same
// forward-patch-list technique the teacher's Assembler used for
// code-offset fixups, simplified because this compiler never needs a
// second pass: there is no variable-length encoding here, so a patch
// is just "write this instruction's successor index" rather than
// "re-encode until the jump distance fits."
func Compile(pattern []byte) (*Program, error) {
	p := &parser{src: pattern}
	node, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("revm: unexpected %q at offset %d", p.src[p.pos], p.pos)
	}

	c := &compiler{}
	start, out := c.compileNode(node)
	matchPC := c.emit(Inst{Op: OpMatch})
	c.patch(out, matchPC)
	assert(start == 0, "top-level pattern must compile starting at pc 0, got %d", start)

	return &Program{Insts: c.insts, ByteSets: c.byteSets}, nil
}

// --- AST ---

type nodeKind uint8

const (
	nLit nodeKind = iota
	nAny
	nClass
	nBOL
	nEOL
	nConcat
	nAlt
	nStar
	nPlus
	nQuest
	nRepeat
)

type node struct {
	kind     nodeKind
	lit      byte
	class    byteset.Matcher
	kids     []*node
	min, max int // nRepeat only; max == -1 means unbounded
}

// --- parser ---

type parser struct {
	src []byte
	pos int
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseAlt() (*node, error) {
	first, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	alts := []*node{first}
	for {
		b, ok := p.peek()
		if !ok || b != '|' {
			break
		}
		p.pos++
		next, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}
	if len(alts) == 1 {
		return alts[0], nil
	}
	return &node{kind: nAlt, kids: alts}, nil
}

func (p *parser) parseConcat() (*node, error) {
	var kids []*node
	for {
		b, ok := p.peek()
		if !ok || b == '|' || b == ')' {
			break
		}
		n, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		kids = append(kids, n)
	}
	if len(kids) == 0 {
		return &node{kind: nConcat}, nil
	}
	if len(kids) == 1 {
		return kids[0], nil
	}
	return &node{kind: nConcat, kids: kids}, nil
}

func (p *parser) parseRepeat() (*node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		b, ok := p.peek()
		if !ok {
			return atom, nil
		}
		switch b {
		case '*':
			p.pos++
			atom = &node{kind: nStar, kids: []*node{atom}}
		case '+':
			p.pos++
			atom = &node{kind: nPlus, kids: []*node{atom}}
		case '?':
			p.pos++
			atom = &node{kind: nQuest, kids: []*node{atom}}
		case '{':
			save := p.pos
			min, max, ok := p.tryParseBound()
			if !ok {
				p.pos = save
				return atom, nil
			}
			atom = &node{kind: nRepeat, kids: []*node{atom}, min: min, max: max}
		default:
			return atom, nil
		}
	}
}

// tryParseBound parses "{n}", "{n,}" or "{n,m}" at the current
// position, already past the atom. Returns ok=false if what follows
// '{' doesn't parse as a bound; it may have consumed input by then, so
// the caller rewinds to its saved position and treats '{' as a literal.
func (p *parser) tryParseBound() (min, max int, ok bool) {
	p.pos++ // consume '{'
	n1, digits1 := p.parseDigits()
	if digits1 == 0 {
		return 0, 0, false
	}
	b, has := p.peek()
	if !has {
		return 0, 0, false
	}
	if b == '}' {
		p.pos++
		return n1, n1, true
	}
	if b != ',' {
		return 0, 0, false
	}
	p.pos++
	n2, digits2 := p.parseDigits()
	b, has = p.peek()
	if !has || b != '}' {
		return 0, 0, false
	}
	p.pos++
	if digits2 == 0 {
		return n1, -1, true
	}
	return n1, n2, true
}

func (p *parser) parseDigits() (int, int) {
	start := p.pos
	n := 0
	for {
		b, ok := p.peek()
		if !ok || b < '0' || b > '9' {
			break
		}
		n = n*10 + int(b-'0')
		p.pos++
	}
	return n, p.pos - start
}

func (p *parser) parseAtom() (*node, error) {
	b, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("revm: unexpected end of pattern")
	}
	switch b {
	case '(':
		p.pos++
		n, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if b, ok := p.peek(); !ok || b != ')' {
			return nil, fmt.Errorf("revm: missing closing ')'")
		}
		p.pos++
		return n, nil
	case '.':
		p.pos++
		return &node{kind: nAny}, nil
	case '^':
		p.pos++
		return &node{kind: nBOL}, nil
	case '$':
		p.pos++
		return &node{kind: nEOL}, nil
	case '[':
		return p.parseClass()
	case '\\':
		p.pos++
		return p.parseEscape()
	default:
		p.pos++
		return &node{kind: nLit, lit: b}, nil
	}
}

func (p *parser) parseEscape() (*node, error) {
	b, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("revm: dangling escape at end of pattern")
	}
	p.pos++
	switch b {
	case 'd':
		return &node{kind: nClass, class: byteset.Digit}, nil
	case 'D':
		return &node{kind: nClass, class: byteset.NotDigit}, nil
	case 's':
		return &node{kind: nClass, class: byteset.Space}, nil
	case 'S':
		return &node{kind: nClass, class: byteset.NotSpace}, nil
	case 'w':
		return &node{kind: nClass, class: byteset.Word}, nil
	case 'W':
		return &node{kind: nClass, class: byteset.NotWord}, nil
	case 'n':
		return &node{kind: nLit, lit: '\n'}, nil
	case 't':
		return &node{kind: nLit, lit: '\t'}, nil
	case 'r':
		return &node{kind: nLit, lit: '\r'}, nil
	default:
		return &node{kind: nLit, lit: b}, nil
	}
}

// parseClass parses a POSIX-ish bracket expression: [abc], [^abc],
// [a-z], with \d\D\s\S\w\W usable inside too.
func (p *parser) parseClass() (*node, error) {
	p.pos++ // consume '['
	negate := false
	if b, ok := p.peek(); ok && b == '^' {
		negate = true
		p.pos++
	}

	var ranges []byteset.Range
	var extra []byteset.Matcher
	first := true
	for {
		b, ok := p.peek()
		if !ok {
			return nil, fmt.Errorf("revm: missing closing ']'")
		}
		if b == ']' && !first {
			p.pos++
			break
		}
		first = false

		if b == '\\' {
			p.pos++
			esc, ok := p.peek()
			if !ok {
				return nil, fmt.Errorf("revm: dangling escape in class")
			}
			p.pos++
			switch esc {
			case 'd':
				extra = append(extra, byteset.Digit)
				continue
			case 'D':
				extra = append(extra, byteset.NotDigit)
				continue
			case 's':
				extra = append(extra, byteset.Space)
				continue
			case 'S':
				extra = append(extra, byteset.NotSpace)
				continue
			case 'w':
				extra = append(extra, byteset.Word)
				continue
			case 'W':
				extra = append(extra, byteset.NotWord)
				continue
			case 'n':
				b = '\n'
			case 't':
				b = '\t'
			case 'r':
				b = '\r'
			default:
				b = esc
			}
		} else {
			p.pos++
		}

		lo := b
		hi := b
		if nb, ok := p.peek(); ok && nb == '-' {
			save := p.pos
			p.pos++
			if hb, ok := p.peek(); ok && hb != ']' {
				p.pos++
				hi = hb
			} else {
				p.pos = save
			}
		}
		ranges = append(ranges, byteset.Range{Lo: lo, Hi: hi})
	}

	var m byteset.Matcher = byteset.Ranges(ranges...)
	for _, e := range extra {
		m = byteset.Or(m, e)
	}
	if negate {
		m = byteset.Not(m)
	}
	return &node{kind: nClass, class: m.Optimize()}, nil
}

// --- Thompson construction ---

type patch struct {
	pc  int
	isY bool
}

type patchList []patch

type compiler struct {
	insts    []Inst
	byteSets []byteset.Matcher
}

func (c *compiler) emit(inst Inst) int {
	c.insts = append(c.insts, inst)
	return len(c.insts) - 1
}

func (c *compiler) patch(pl patchList, target int) {
	for _, p := range pl {
		if p.isY {
			c.insts[p.pc].Y = target
		} else {
			c.insts[p.pc].X = target
		}
	}
}

func (c *compiler) declareClass(m byteset.Matcher) int {
	c.byteSets = append(c.byteSets, m)
	return len(c.byteSets) - 1
}

// compileNode emits n's fragment and returns its start pc and the
// patch list of successor slots the caller must wire up.
func (c *compiler) compileNode(n *node) (start int, out patchList) {
	switch n.kind {
	case nLit:
		pc := c.emit(Inst{Op: OpChar, Arg: n.lit})
		return pc, patchList{{pc: pc}}
	case nAny:
		pc := c.emit(Inst{Op: OpAny})
		return pc, patchList{{pc: pc}}
	case nClass:
		idx := c.declareClass(n.class)
		pc := c.emit(Inst{Op: OpClass, Class: idx})
		return pc, patchList{{pc: pc}}
	case nBOL:
		pc := c.emit(Inst{Op: OpBOL})
		return pc, patchList{{pc: pc}}
	case nEOL:
		pc := c.emit(Inst{Op: OpEOL})
		return pc, patchList{{pc: pc}}
	case nConcat:
		return c.compileConcat(n.kids)
	case nAlt:
		return c.compileAlt(n.kids)
	case nStar:
		return c.compileStar(n.kids[0])
	case nPlus:
		return c.compilePlus(n.kids[0])
	case nQuest:
		return c.compileQuest(n.kids[0])
	case nRepeat:
		return c.compileRepeat(n.kids[0], n.min, n.max)
	}
	panic(fmt.Sprintf("revm: unhandled node kind %d", n.kind))
}

func (c *compiler) compileConcat(kids []*node) (int, patchList) {
	if len(kids) == 0 {
		pc := c.emit(Inst{Op: OpJmp})
		return pc, patchList{{pc: pc}}
	}
	start, out := c.compileNode(kids[0])
	for _, k := range kids[1:] {
		kStart, kOut := c.compileNode(k)
		c.patch(out, kStart)
		out = kOut
	}
	return start, out
}

func (c *compiler) compileAlt(kids []*node) (int, patchList) {
	if len(kids) == 1 {
		return c.compileNode(kids[0])
	}
	splitPC := c.emit(Inst{Op: OpSplit})
	aStart, aOut := c.compileNode(kids[0])
	c.insts[splitPC].X = aStart
	bStart, bOut := c.compileAlt(kids[1:])
	c.insts[splitPC].Y = bStart
	return splitPC, append(aOut, bOut...)
}

// compileStar implements e* : SPLIT(body, out); body loops back to
// the split. Greedy: the split tries the body first.
func (c *compiler) compileStar(body *node) (int, patchList) {
	splitPC := c.emit(Inst{Op: OpSplit})
	bodyStart, bodyOut := c.compileNode(body)
	c.insts[splitPC].X = bodyStart
	c.patch(bodyOut, splitPC)
	return splitPC, patchList{{pc: splitPC, isY: true}}
}

// compilePlus implements e+ : run body once, then loop like e*.
func (c *compiler) compilePlus(body *node) (int, patchList) {
	bodyStart, bodyOut := c.compileNode(body)
	splitPC := c.emit(Inst{Op: OpSplit})
	c.patch(bodyOut, splitPC)
	c.insts[splitPC].X = bodyStart
	return bodyStart, patchList{{pc: splitPC, isY: true}}
}

// compileQuest implements e? : SPLIT(body, out), greedy.
func (c *compiler) compileQuest(body *node) (int, patchList) {
	splitPC := c.emit(Inst{Op: OpSplit})
	bodyStart, bodyOut := c.compileNode(body)
	c.insts[splitPC].X = bodyStart
	out := append(bodyOut, patch{pc: splitPC, isY: true})
	return splitPC, out
}

// compileRepeat expands {n,m} as n mandatory copies followed by
// (m-n) optional copies, and {n,} as n mandatory copies followed by a
// star -- the node is re-compiled fresh for each copy since nodes are
// stateless ASTs, not instructions.
func (c *compiler) compileRepeat(body *node, min, max int) (int, patchList) {
	if min == 0 && max == -1 {
		return c.compileStar(body)
	}
	if min == 0 && max == 0 {
		pc := c.emit(Inst{Op: OpJmp})
		return pc, patchList{{pc: pc}}
	}

	var start int
	var out patchList
	haveStart := false
	link := func(s int, o patchList) {
		if !haveStart {
			start, out = s, o
			haveStart = true
			return
		}
		c.patch(out, s)
		out = o
	}

	for i := 0; i < min; i++ {
		s, o := c.compileNode(body)
		link(s, o)
	}
	if max == -1 {
		s, o := c.compileStar(body)
		link(s, o)
		return start, out
	}
	for i := min; i < max; i++ {
		s, o := c.compileQuest(body)
		link(s, o)
	}
	return start, out
}
