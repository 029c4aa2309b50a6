package revm

// threadList is a priority-ordered set of live thread program
// counters. Membership is tracked with a generation counter instead
// of clearing seen on every step, the same trick lineidx.Index uses
// for its LRU bookkeeping: bump gen once per step and compare instead
// of zeroing an array.
type threadList struct {
	pcs  []int
	seen []uint32
	gen  uint32
}

func newThreadList(n int) *threadList {
	return &threadList{
		pcs:  make([]int, 0, n),
		seen: make([]uint32, n),
	}
}

func (t *threadList) reset() {
	t.gen++
	t.pcs = t.pcs[:0]
}

func (t *threadList) has(pc int) bool {
	return t.seen[pc] == t.gen
}

func (t *threadList) mark(pc int) {
	t.seen[pc] = t.gen
}

// addThread follows epsilon transitions (split/jmp/bol/eol) from pc,
// queuing only instructions that actually consume a byte or match,
// and dedups against threads already queued this step via the
// generation bitmap.
func (p *Program) addThread(list *threadList, pc int, atBOL, atEOL bool) {
	if list.has(pc) {
		return
	}
	list.mark(pc)

	switch p.Insts[pc].Op {
	case OpJmp:
		p.addThread(list, p.Insts[pc].X, atBOL, atEOL)
	case OpSplit:
		p.addThread(list, p.Insts[pc].X, atBOL, atEOL)
		p.addThread(list, p.Insts[pc].Y, atBOL, atEOL)
	case OpBOL:
		if atBOL {
			p.addThread(list, p.Insts[pc].X, atBOL, atEOL)
		}
	case OpEOL:
		if atEOL {
			p.addThread(list, p.Insts[pc].X, atBOL, atEOL)
		}
	default:
		list.pcs = append(list.pcs, pc)
	}
}

// matchFrom runs one Pike-VM simulation anchored at data[start:], and
// reports the end offset of the highest-priority match starting
// exactly at start. When a thread reaches OpMatch, the lower-priority
// threads behind it in the same step are cut off; higher-priority
// threads already advanced into the next step keep running and may
// record a later end. With greedy quantifiers this yields the longest
// extent; across an alternation the earlier alternative wins.
func (p *Program) matchFrom(data []byte, start int) (end int, ok bool) {
	n := len(p.Insts)
	clist := newThreadList(n)
	nlist := newThreadList(n)

	atBOL := start == 0
	atEOL := start == len(data)
	clist.reset()
	p.addThread(clist, 0, atBOL, atEOL)

	matched := false
	matchEnd := start

	pos := start
	for {
		if len(clist.pcs) == 0 {
			break
		}
		var b byte
		haveByte := pos < len(data)
		if haveByte {
			b = data[pos]
		}
		nextBOL := false
		nextEOL := pos+1 == len(data)

		nlist.reset()
		for i := 0; i < len(clist.pcs); i++ {
			pc := clist.pcs[i]
			inst := p.Insts[pc]
			switch inst.Op {
			case OpMatch:
				matched = true
				matchEnd = pos
				// Lower-priority threads already in clist behind this
				// one are abandoned; higher-priority ones already
				// queued into nlist this step continue.
				i = len(clist.pcs)
			case OpChar:
				if haveByte && b == inst.Arg {
					p.addThread(nlist, inst.X, nextBOL, nextEOL)
				}
			case OpAny:
				if haveByte && b != '\n' {
					p.addThread(nlist, inst.X, nextBOL, nextEOL)
				}
			case OpClass:
				if haveByte && inst.Class >= 0 && inst.Class < len(p.ByteSets) && p.ByteSets[inst.Class].Match(b) {
					p.addThread(nlist, inst.X, nextBOL, nextEOL)
				}
			}
		}

		if !haveByte {
			break
		}
		clist, nlist = nlist, clist
		pos++
	}

	return matchEnd, matched
}

// Find returns the leftmost match in data, scanning start offsets left
// to right and returning the first one that matches at all (with the
// end matchFrom reports for that start).
func (p *Program) Find(data []byte) (start, end int, ok bool) {
	for s := 0; s <= len(data); s++ {
		if e, matched := p.matchFrom(data, s); matched {
			return s, e, true
		}
	}
	return 0, 0, false
}

// FindLast returns the rightmost match in data, scanning start
// offsets from the end of data backward and returning the first one
// that matches (with the end matchFrom reports for that start).
func (p *Program) FindLast(data []byte) (start, end int, ok bool) {
	for s := len(data); s >= 0; s-- {
		if e, matched := p.matchFrom(data, s); matched {
			return s, e, true
		}
	}
	return 0, 0, false
}
