package xtractvm

import "io"

// Engine runs a compiled Program against a Source, writing every
// committed TAKE*/PRINT range to an output writer in commit order.
type Engine struct {
	Src     *Source
	Program *Program
}

// NewEngine pairs a Program with the Source it runs against.
func NewEngine(src *Source, prog *Program) *Engine {
	return &Engine{Src: src, Program: prog}
}

// RunResult summarizes a completed run: the number of clauses that
// committed and the final cursor/view/label state, useful for a
// caller that wants to report progress or chain further runs.
type RunResult struct {
	ClausesCommitted int
	BytesEmitted     int64
	Final            VM
}

// Run executes e.Program against e.Src, writing emitted bytes to w. A
// clause chain that fails outright (see runLinked) aborts the run and
// Run returns that clause's error.
func (e *Engine) Run(w io.Writer) (RunResult, error) {
	var result RunResult
	var finalVM VM

	commit := func(clauseIdx int, sc *stagedClause) {
		result.ClausesCommitted++
		finalVM = sc.vm
		for _, rg := range sc.ranges {
			if rg.Literal != nil {
				n, _ := w.Write(rg.Literal)
				result.BytesEmitted += int64(n)
				continue
			}
			before := result.BytesEmitted
			cw := &countingWriter{w: w}
			_ = e.Src.Emit(cw, rg.Start, rg.End)
			result.BytesEmitted = before + cw.n
		}
	}

	err := runLinked(e.Src, e.Program, commit)
	result.Final = finalVM
	return result, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
