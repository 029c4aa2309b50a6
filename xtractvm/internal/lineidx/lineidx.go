// Package lineidx implements a bounded LRU cache of per-block newline
// counts, used to accelerate line-unit stepping over large inputs
// without re-scanning bytes already classified.
//
// A source is logically divided into fixed-size blocks, each split
// into a fixed number of equal subchunks. The cache records, per
// block, the number of '\n' bytes found in each subchunk. A caller
// stepping forward many lines can skip whole zero-count subchunks
// without looking at their bytes again, and only needs to byte-scan
// the one subchunk that actually contains the target newline.
package lineidx

// Index caches per-subchunk newline counts for up to maxBlocks blocks,
// evicting the least recently used block on overflow.
type Index struct {
	blockSize int64
	subSize   int64
	subCount  int
	maxBlocks int

	gen     uint64
	blocks  map[int64]*cachedBlock
}

type cachedBlock struct {
	counts  []uint16 // len == subCount
	lastGen uint64
}

// New returns an Index over blocks of blockSize bytes, each divided
// into subCount equal subchunks, caching at most maxBlocks blocks.
// blockSize must be an exact multiple of subCount.
func New(blockSize int64, subCount int, maxBlocks int) *Index {
	if blockSize <= 0 || subCount <= 0 || blockSize%int64(subCount) != 0 {
		panic("lineidx: blockSize must be a positive multiple of subCount")
	}
	return &Index{
		blockSize: blockSize,
		subSize:   blockSize / int64(subCount),
		subCount:  subCount,
		maxBlocks: maxBlocks,
		blocks:    make(map[int64]*cachedBlock),
	}
}

// BlockSize, SubSize and SubCount expose the Index's geometry so a
// caller can compute block/subchunk boundaries without duplicating the
// constants it was constructed with.
func (x *Index) BlockSize() int64 { return x.blockSize }
func (x *Index) SubSize() int64   { return x.subSize }
func (x *Index) SubCount() int    { return x.subCount }

// Lookup returns the cached per-subchunk counts for blockIdx, or nil if
// not cached. The returned slice must not be mutated.
func (x *Index) Lookup(blockIdx int64) []uint16 {
	b, ok := x.blocks[blockIdx]
	if !ok {
		return nil
	}
	x.gen++
	b.lastGen = x.gen
	return b.counts
}

// Put computes and caches per-subchunk newline counts for blockIdx from
// data, which must be the block's actual bytes (possibly short, at
// EOF). It evicts the least recently used block first if the cache is
// full.
func (x *Index) Put(blockIdx int64, data []byte) []uint16 {
	counts := make([]uint16, x.subCount)
	for i := 0; i < x.subCount; i++ {
		lo := int64(i) * x.subSize
		if lo >= int64(len(data)) {
			break
		}
		hi := lo + x.subSize
		if hi > int64(len(data)) {
			hi = int64(len(data))
		}
		var n uint16
		for _, b := range data[lo:hi] {
			if b == '\n' {
				n++
			}
		}
		counts[i] = n
	}

	if len(x.blocks) >= x.maxBlocks {
		x.evictOne()
	}
	x.gen++
	x.blocks[blockIdx] = &cachedBlock{counts: counts, lastGen: x.gen}
	return counts
}

func (x *Index) evictOne() {
	var victim int64
	var oldest uint64
	first := true
	for idx, b := range x.blocks {
		if first || b.lastGen < oldest {
			victim = idx
			oldest = b.lastGen
			first = false
		}
	}
	if !first {
		delete(x.blocks, victim)
	}
}
