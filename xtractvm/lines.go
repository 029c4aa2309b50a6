package xtractvm

import "bytes"

// lineEnd returns the offset of the '\n' terminating the line
// containing pos, or Size() if that line has no trailing newline (the
// last line of a file missing its final newline). It accelerates the
// scan with the source's lineidx cache: subchunks with a cached zero
// newline count are skipped without a byte re-read.
func (s *Source) lineEnd(pos int64) int64 {
	size := s.Size()
	cur := clampI64(pos, 0, size)
	blockSize := s.idx.BlockSize()
	subSize := s.idx.SubSize()
	subCount := s.idx.SubCount()

	for cur < size {
		blockIdx := cur / blockSize
		blockStart := blockIdx * blockSize
		blockEnd := minI64(blockStart+blockSize, size)
		counts := s.idx.Lookup(blockIdx)
		if counts == nil {
			counts = s.idx.Put(blockIdx, s.byteRange(blockStart, blockEnd))
		}

		subIdx := int((cur - blockStart) / subSize)
		for subIdx < subCount {
			subStart := blockStart + int64(subIdx)*subSize
			if subStart >= blockEnd {
				break
			}
			subEnd := minI64(subStart+subSize, blockEnd)
			if counts[subIdx] == 0 {
				cur = subEnd
				subIdx++
				continue
			}
			off := int64(0)
			if subStart < cur {
				off = cur - subStart
			}
			data := s.byteRange(subStart, subEnd)
			if rel := bytes.IndexByte(data[off:], '\n'); rel >= 0 {
				return subStart + off + int64(rel)
			}
			cur = subEnd
			subIdx++
		}
	}
	return size
}

// lineStart returns the offset of the first byte of the line
// containing pos: one past the previous '\n', or 0 if pos's line is
// the first in the file.
func (s *Source) lineStart(pos int64) int64 {
	size := s.Size()
	cur := clampI64(pos, 0, size)
	if cur == 0 {
		return 0
	}
	blockSize := s.idx.BlockSize()
	subSize := s.idx.SubSize()

	for cur > 0 {
		blockIdx := (cur - 1) / blockSize
		blockStart := blockIdx * blockSize
		blockEnd := minI64(blockStart+blockSize, size)
		counts := s.idx.Lookup(blockIdx)
		if counts == nil {
			counts = s.idx.Put(blockIdx, s.byteRange(blockStart, blockEnd))
		}

		subIdx := int((cur - 1 - blockStart) / subSize)
		for subIdx >= 0 {
			subStart := blockStart + int64(subIdx)*subSize
			if subStart >= cur {
				subIdx--
				continue
			}
			if counts[subIdx] == 0 {
				cur = subStart
				subIdx--
				continue
			}
			lim := minI64(subStart+subSize, cur)
			data := s.byteRange(subStart, lim)
			if rel := bytes.LastIndexByte(data, '\n'); rel >= 0 {
				return subStart + int64(rel) + 1
			}
			cur = subStart
			subIdx--
		}
	}
	return 0
}

// stepLines moves pos forward or backward by n line boundaries,
// saturating at the file's start or end rather than erroring -- the
// resolution of the "clamp vs error" Open Question for line/char
// units (spec.md §9).
func (s *Source) stepLines(pos int64, n int64) int64 {
	cur := pos
	size := s.Size()
	if n > 0 {
		for ; n > 0; n-- {
			end := s.lineEnd(cur)
			if end >= size {
				return size
			}
			cur = end + 1
		}
		return cur
	}
	for ; n < 0; n++ {
		if cur <= 0 {
			return 0
		}
		cur = s.lineStart(cur - 1)
	}
	return cur
}
