package xtractvm

import "bytes"

// findWindow scans [lo,hi) for needle, forward or backward, reading
// through the source in bounded chunks (spec.md §3's FW_WIN / BK_BLK
// tunables) rather than requiring the whole window resident at once.
// Forward scans slide with a len(needle)-1 overlap so a match
// straddling a chunk boundary is never missed; backward scans walk
// blocks from the end so the first hit found is the rightmost one.
func (s *Source) findWindow(lo, hi int64, needle []byte, dir Direction) (Match, bool) {
	if len(needle) == 0 {
		return Match{}, false
	}
	lo = clampI64(lo, 0, s.Size())
	hi = clampI64(hi, 0, s.Size())
	if lo >= hi {
		return Match{}, false
	}
	if dir == DirForward {
		return s.findForward(lo, hi, needle)
	}
	return s.findBackward(lo, hi, needle)
}

func (s *Source) findForward(lo, hi int64, needle []byte) (Match, bool) {
	overlap := int64(len(needle) - 1)
	chunk := int64(ForwardWindowCap)
	cur := lo
	for cur < hi {
		end := minI64(cur+chunk, hi)
		data := s.byteRange(cur, end)
		if rel := bytes.Index(data, needle); rel >= 0 {
			start := cur + int64(rel)
			return Match{Start: start, End: start + int64(len(needle)), Valid: true}, true
		}
		if end >= hi {
			break
		}
		cur = maxI64(lo, end-overlap)
	}
	return Match{}, false
}

func (s *Source) findBackward(lo, hi int64, needle []byte) (Match, bool) {
	overlap := clampI64(int64(len(needle)-1), OverlapMin, OverlapMax)
	block := int64(BackwardBlockSize)
	end := hi
	for end > lo {
		start := maxI64(lo, end-block-overlap)
		data := s.byteRange(start, end)
		if rel := bytes.LastIndex(data, needle); rel >= 0 {
			mstart := start + int64(rel)
			return Match{Start: mstart, End: mstart + int64(len(needle)), Valid: true}, true
		}
		if start <= lo {
			break
		}
		end = start + overlap
	}
	return Match{}, false
}

// findRegexWindow is findWindow's regex counterpart, delegating the
// per-chunk search to the compiled revm Program.
func (s *Source) findRegexWindow(lo, hi int64, re *Regex, dir Direction) (Match, bool) {
	lo = clampI64(lo, 0, s.Size())
	hi = clampI64(hi, 0, s.Size())
	if lo >= hi || re == nil {
		return Match{}, false
	}
	if dir == DirForward {
		return s.findRegexForward(lo, hi, re)
	}
	return s.findRegexBackward(lo, hi, re)
}

func (s *Source) findRegexForward(lo, hi int64, re *Regex) (Match, bool) {
	chunk := int64(ForwardWindowCap)
	overlap := int64(OverlapMax)
	cur := lo
	for cur < hi {
		end := minI64(cur+chunk, hi)
		data := s.byteRange(cur, end)
		if ms, me, ok := re.Find(data); ok {
			return Match{Start: cur + int64(ms), End: cur + int64(me), Valid: true}, true
		}
		if end >= hi {
			break
		}
		cur = maxI64(lo, end-overlap)
	}
	return Match{}, false
}

func (s *Source) findRegexBackward(lo, hi int64, re *Regex) (Match, bool) {
	block := int64(BackwardBlockSize)
	overlap := int64(OverlapMax)
	end := hi
	for end > lo {
		start := maxI64(lo, end-block-overlap)
		data := s.byteRange(start, end)
		if ms, me, ok := re.FindLast(data); ok {
			return Match{Start: start + int64(ms), End: start + int64(me), Valid: true}, true
		}
		if start <= lo {
			break
		}
		end = start + overlap
	}
	return Match{}, false
}
