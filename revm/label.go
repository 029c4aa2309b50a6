package revm

import "sort"

// Label names a jump target for disassembly, adapted from the
// teacher's bytecode-offset labels to this program's instruction
// indices.
type Label struct {
	PC   int
	Name string
}

// Labels implements sort.Interface for *Label slices, ordered by PC.
type Labels []*Label

var _ sort.Interface = (Labels)(nil)

func (x Labels) Len() int      { return len(x) }
func (x Labels) Less(i, j int) bool { return x[i].PC < x[j].PC }
func (x Labels) Swap(i, j int)      { x[i], x[j] = x[j], x[i] }
