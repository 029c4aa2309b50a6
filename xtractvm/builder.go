package xtractvm

// Builder assembles a Program one clause at a time. It plays the role
// the teacher's Assembler played for bytecode: a focused type whose
// only job is turning a sequence of method calls into a finished
// Program. There is no variable-length encoding or forward-reference
// fixup pass to run here -- GOTO and label references are resolved by
// name against the LabelTable at run time, not by a compile-time code
// address.
//
// Calls that append an op (Find, Skip, TakeTo, ...) accumulate into
// the clause currently being built; And/Or/Then close that clause,
// attach the requested link tag, and start a new one. Calling no
// connector between two op calls keeps them in the same clause, atomic
// together -- this is how "find \"ERROR\" take to line-end" becomes
// one Clause with two Ops instead of two separately-committing ones.
type Builder struct {
	prog       Program
	pendingOps []Op
}

// NewBuilder starts an empty Program.
func NewBuilder() *Builder {
	return &Builder{}
}

// op appends op to the clause under construction.
func (b *Builder) op(op Op) *Builder {
	b.pendingOps = append(b.pendingOps, op)
	return b
}

// closeClause finishes the clause under construction (if any ops have
// been appended to it since the last close) with the given link tag.
func (b *Builder) closeClause(link LinkTag) *Builder {
	if len(b.pendingOps) == 0 {
		return b
	}
	b.prog.Clauses = append(b.prog.Clauses, Clause{Ops: b.pendingOps, Link: link})
	b.pendingOps = nil
	return b
}

// And closes the current clause with an AND link: the next clause only
// runs while the chain is still succeeding.
func (b *Builder) And() *Builder {
	return b.closeClause(LinkAnd)
}

// Or closes the current clause with an OR link: the next clause only
// runs as a fallback once the chain has failed.
func (b *Builder) Or() *Builder {
	return b.closeClause(LinkOr)
}

// Then closes the current clause with a THEN link, ending its chain.
func (b *Builder) Then() *Builder {
	return b.closeClause(LinkThen)
}

func (b *Builder) nameIndex(name string) int {
	return b.prog.NameIndex(name)
}

// Find appends a byte-needle FIND op searching the default window
// [cursor, EOF).
func (b *Builder) Find(needle []byte) *Builder {
	return b.op(Op{Kind: OpFind, Needle: needle})
}

// FindTo appends a byte-needle FIND op bounded by an explicit
// to-location: the window is [cursor, to), or, if to resolves before
// the cursor, a backward search in [to, cursor).
func (b *Builder) FindTo(needle []byte, to LocExpr) *Builder {
	return b.op(Op{Kind: OpFind, Needle: needle, To: to, HasTo: true})
}

// FindRegex appends a compiled-pattern FIND op searching the default
// window [cursor, EOF).
func (b *Builder) FindRegex(pattern []byte) (*Builder, error) {
	re, err := compileRegex(pattern)
	if err != nil {
		return b, err
	}
	return b.op(Op{Kind: OpFindRegex, Regex: re}), nil
}

// FindRegexTo is FindTo's regex counterpart.
func (b *Builder) FindRegexTo(pattern []byte, to LocExpr) (*Builder, error) {
	re, err := compileRegex(pattern)
	if err != nil {
		return b, err
	}
	return b.op(Op{Kind: OpFindRegex, Regex: re, To: to, HasTo: true}), nil
}

// Skip appends a SKIP op.
func (b *Builder) Skip(amount int64, unit Unit) *Builder {
	return b.op(Op{Kind: OpSkip, Amount: amount, Unit: unit})
}

// TakeLen appends a TAKE op of a fixed length.
func (b *Builder) TakeLen(amount int64, unit Unit) *Builder {
	return b.op(Op{Kind: OpTakeLen, Amount: amount, Unit: unit})
}

// TakeTo appends a TAKE TO op landing at an explicit location.
func (b *Builder) TakeTo(dst LocExpr) *Builder {
	return b.op(Op{Kind: OpTakeTo, Dst: dst})
}

// TakeUntil appends a forward-only TAKE UNTIL op searching for a byte
// needle; the staged range runs up to the match start.
func (b *Builder) TakeUntil(needle []byte) *Builder {
	return b.op(Op{Kind: OpTakeUntil, Needle: needle})
}

// TakeUntilAt is TakeUntil with an explicit landing location, resolved
// against the op's own staged match rather than defaulting to its
// start.
func (b *Builder) TakeUntilAt(needle []byte, at LocExpr) *Builder {
	return b.op(Op{Kind: OpTakeUntil, Needle: needle, UntilAt: at, HasUntilAt: true})
}

// TakeUntilRegex is TakeUntil's regex counterpart.
func (b *Builder) TakeUntilRegex(pattern []byte) (*Builder, error) {
	re, err := compileRegex(pattern)
	if err != nil {
		return b, err
	}
	return b.op(Op{Kind: OpTakeUntilRegex, Regex: re}), nil
}

// TakeUntilRegexAt is TakeUntilAt's regex counterpart.
func (b *Builder) TakeUntilRegexAt(pattern []byte, at LocExpr) (*Builder, error) {
	re, err := compileRegex(pattern)
	if err != nil {
		return b, err
	}
	return b.op(Op{Kind: OpTakeUntilRegex, Regex: re, UntilAt: at, HasUntilAt: true}), nil
}

// Label appends a LABEL op stamping the cursor under name.
func (b *Builder) Label(name string) *Builder {
	return b.op(Op{Kind: OpLabel, NameIdx: b.nameIndex(name)})
}

// Goto appends a GOTO op.
func (b *Builder) Goto(target LocExpr) *Builder {
	return b.op(Op{Kind: OpGoto, Target: target})
}

// ViewSet appends a VIEWSET op.
func (b *Builder) ViewSet(lo, hi LocExpr) *Builder {
	return b.op(Op{Kind: OpViewSet, ViewLo: lo, ViewHi: hi})
}

// ViewClear appends a VIEWCLEAR op.
func (b *Builder) ViewClear() *Builder {
	return b.op(Op{Kind: OpViewClear})
}

// Print appends a PRINT op emitting a literal. literal may contain the
// cursor-sentinel byte to interpolate the cursor's decimal value.
func (b *Builder) Print(literal []byte) *Builder {
	return b.op(Op{Kind: OpPrint, Literal: literal})
}

// Fail appends a FAIL op.
func (b *Builder) Fail(message string) *Builder {
	return b.op(Op{Kind: OpFail, Message: message})
}

// LabelLoc is a convenience constructor for a LocExpr anchored to a
// named label.
func (b *Builder) LabelLoc(name string, offset int64, unit Unit) LocExpr {
	return LocExpr{Base: BaseName, NameIdx: b.nameIndex(name), Offset: offset, Unit: unit}
}

// Build finishes assembly and returns the Program. The Builder must
// not be reused afterward.
func (b *Builder) Build() *Program {
	b.closeClause(LinkNone)
	return &b.prog
}
