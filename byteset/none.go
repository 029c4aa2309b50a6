package byteset

// None matches no byte. Optimize reaches for this as the collapsed
// form of an empty union or an empty range list -- an empty bracket
// expression, or a negated class that swallowed the whole alphabet.
func None() Matcher { return singletonNone }

type mNone struct{}

var _ Matcher = (*mNone)(nil)
var singletonNone = &mNone{}

func (m *mNone) Match(b byte) bool      { return false }
func (m *mNone) ForEach(f func(b byte)) {}
func (m *mNone) Optimize() Matcher      { return singletonNone }
func (m *mNone) String() string         { return "!." }
