package byteset

// All matches every byte. Optimize on a union or negation collapses to
// this once it can prove the class covers the whole alphabet, e.g. a
// negated empty set or a class unioned with its own complement.
func All() Matcher { return singletonAll }

type mAll struct{}

var _ Matcher = (*mAll)(nil)
var singletonAll = &mAll{}

func (m *mAll) Match(b byte) bool      { return true }
func (m *mAll) ForEach(f func(b byte)) { genericForEach(m, f) }
func (m *mAll) Optimize() Matcher      { return singletonAll }
func (m *mAll) String() string         { return "." }
