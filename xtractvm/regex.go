package xtractvm

import "github.com/chronos-tachyon/go-xtractvm/revm"

// Regex is the compiled form a FIND_RE/TAKE_UNTIL_RE op searches with.
// Compilation and execution live in package revm; xtractvm only needs
// its Program type and that type's two search entry points, Find and
// FindLast.
type Regex = revm.Program

// compileRegex compiles pattern, wrapping a failure as a PARSE OpError
// the builder can attach clause/op context to.
func compileRegex(pattern []byte) (*Regex, error) {
	re, err := revm.Compile(pattern)
	if err != nil {
		return nil, &OpError{Kind: ErrParse, Err: err}
	}
	return re, nil
}
