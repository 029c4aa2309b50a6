// Command xtractvmdemo assembles a fixed Program by hand with
// xtractvm.Builder and runs it over a file (or stdin), writing
// extracted bytes to stdout. There is no clause-language parser here
// -- that surface syntax is out of scope -- this just exercises the
// Builder/Engine wiring end to end against real input.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chronos-tachyon/go-xtractvm/xtractvm"
)

func main() {
	os.Exit(run())
}

func run() int {
	path := flag.String("file", "-", "input file, or - for stdin")
	needle := flag.String("find", "", "byte needle to search for before taking the rest of the line")
	flag.Parse()

	if *needle == "" {
		fmt.Fprintln(os.Stderr, "xtractvmdemo: -find is required")
		return 2
	}

	src, err := xtractvm.Open(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xtractvmdemo: %v\n", err)
		return 1
	}
	defer src.Close()

	prog := xtractvm.NewBuilder().
		Find([]byte(*needle)).
		TakeTo(xtractvm.LocExpr{Base: xtractvm.BaseLineEnd}).
		Then().
		Print([]byte("\n")).
		Build()

	eng := xtractvm.NewEngine(src, prog)
	result, err := eng.Run(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "xtractvmdemo: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stderr, "xtractvmdemo: %d clauses committed, %d bytes emitted\n", result.ClausesCommitted, result.BytesEmitted)
	return 0
}
