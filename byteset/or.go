package byteset

// Or matches iff any sub-matcher matches. It backs bracket expressions
// with more than one alternative -- a range plus a literal, say, or
// several ranges -- before Optimize folds the list into something
// cheaper to evaluate per byte.
func Or(ms ...Matcher) Matcher {
	l := make([]Matcher, len(ms))
	copy(l, ms)
	return &mUnion{List: l}
}

type mUnion struct {
	List []Matcher
}

var _ Matcher = (*mUnion)(nil)

func (m *mUnion) Match(b byte) bool {
	for _, sub := range m.List {
		if sub.Match(b) {
			return true
		}
	}
	return false
}

func (m *mUnion) ForEach(f func(b byte)) {
	forEachUnion(m.List, f)
}

func (m *mUnion) Optimize() Matcher {
	if len(m.List) == 0 {
		return None()
	}
	if len(m.List) == 1 {
		return m.List[0].Optimize()
	}
	return asDense(m).Optimize()
}

func (m *mUnion) String() string {
	return genericString(m)
}
