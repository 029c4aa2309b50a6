package xtractvm

// Compile-time tunables. spec.md §6 is explicit that no environment
// variable may affect core semantics, so unlike the ambient config a
// CLI driver might offer, these are plain Go constants, checked for
// consistency once in init() the same way peggyvm/data.go asserts
// sort.IsSorted(opMeta) at package load.
const (
	// ForwardWindowCap bounds a single forward find_window read.
	ForwardWindowCap = 8 << 20 // 8 MiB

	// BackwardBlockSize is the block size for backward find_window scans.
	BackwardBlockSize = 4 << 20 // 4 MiB

	// OverlapMin/OverlapMax bound the overlap kept between successive
	// backward scan blocks so a needle straddling a block boundary is
	// never missed and never double-counted.
	OverlapMin = 1
	OverlapMax = 64 << 10 // 64 KiB

	// scratchCapacity is the Source's single reusable scratch buffer
	// size: max(ForwardWindowCap, BackwardBlockSize+OverlapMax), per
	// spec.md §3. With the defaults above, the forward figure wins.
	scratchCapacity = ForwardWindowCap

	// IdxBlock/IdxSub/IdxMaxBlocks size the bounded LRU line-break index.
	IdxBlock     = 64 << 10 // 64 KiB per cached block
	IdxSub       = 256      // subchunks per block
	IdxMaxBlocks = 64       // cached blocks

	// LabelSlots bounds the label name-index space (spec.md §9 Open
	// Questions: direct table, not the 32-slot generation LRU).
	LabelSlots = 128

	// reThreadMultiplier is a thread-pool multiplier for the regex VM.
	// Nothing reads it: package revm sizes each thread list to the
	// compiled program's instruction count.
	reThreadMultiplier = 4

	// arenaCushion is a slack figure for preflight plans. Nothing reads
	// it: planCaps sizes each clause's slices to its exact counts.
	arenaCushion = 64
)

func init() {
	assert(BackwardBlockSize+OverlapMax <= scratchCapacity,
		"BackwardBlockSize+OverlapMax must fit within the scratch buffer")
	assert(OverlapMin <= OverlapMax, "OverlapMin must not exceed OverlapMax")
	assert(LabelSlots > 0 && LabelSlots <= 256, "LabelSlots out of range")
}
