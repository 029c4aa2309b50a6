package byteset

// Matcher is a byte-class predicate: the representation the regex VM's
// bracket-expression compiler builds into and the class opcode matches
// against at run time. Implementations must not change their state on
// a call to Match -- the VM calls it from the hot execution path.
type Matcher interface {
	// Match returns true iff byte b is in the set.
	Match(b byte) bool

	// ForEach calls f exactly once for each byte in the set. The arguments
	// for successive calls are guaranteed to be in ascending order.
	ForEach(f func(b byte))

	// Optimize returns a Matcher that matches the same set of bytes, but
	// possibly in a more efficient way. If no better implementation can be
	// found, returns this matcher.
	Optimize() Matcher

	// String returns a string representation of the set.
	String() string
}

type asDenser interface {
	asDense() Matcher
}

func asDense(m Matcher) Matcher {
	if md, ok := m.(*mDense); ok {
		return md
	}
	if mx, ok := m.(asDenser); ok {
		return mx.asDense()
	}
	mm := &mDense{}
	m.ForEach(func(b byte) {
		index, mask := denseIM(b)
		mm.Set[index] |= mask
	})
	return mm
}
