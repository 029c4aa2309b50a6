package byteset

// Canonical character classes used by the regex VM's \d \D \s \S \w \W
// escapes. Built once at package init from the combinators in this
// package, the same way the bracket-expression parser builds a class
// out of Ranges/Or/Not/Exactly for an arbitrary [...] expression.

var (
	// Digit matches ASCII '0'..'9'.
	Digit = Ranges(Range{'0', '9'}).Optimize()

	// NotDigit is the complement of Digit.
	NotDigit = Not(Digit).Optimize()

	// Space matches the ASCII whitespace bytes: space, \t, \n, \v, \f, \r.
	Space = Or(Exactly(' '), Ranges(Range{'\t', '\r'})).Optimize()

	// NotSpace is the complement of Space.
	NotSpace = Not(Space).Optimize()

	// Word matches ASCII word bytes: [0-9A-Za-z_].
	Word = Or(Digit, Ranges(Range{'A', 'Z'}, Range{'a', 'z'}), Exactly('_')).Optimize()

	// NotWord is the complement of Word.
	NotWord = Not(Word).Optimize()
)
