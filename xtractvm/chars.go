package xtractvm

import "unicode/utf8"

// stepChars moves pos forward or backward by n UTF-8 codepoints,
// saturating at the file bounds. A byte sequence that does not decode
// as valid UTF-8 counts as one codepoint of length 1 rather than
// blocking progress -- inputs are not guaranteed to be valid text.
func (s *Source) stepChars(pos int64, n int64) int64 {
	size := s.Size()
	cur := pos
	if n > 0 {
		for ; n > 0; n-- {
			if cur >= size {
				return size
			}
			cur += s.runeLenAt(cur)
		}
		return clampI64(cur, 0, size)
	}
	for ; n < 0; n++ {
		if cur <= 0 {
			return 0
		}
		cur = s.prevCharStart(cur)
	}
	return cur
}

// runeLenAt returns the byte length of the UTF-8 sequence starting at
// pos, or 1 if the bytes there do not decode as valid UTF-8.
func (s *Source) runeLenAt(pos int64) int64 {
	window := s.byteRange(pos, pos+utf8.UTFMax)
	if len(window) == 0 {
		return 1
	}
	_, n := utf8.DecodeRune(window)
	if n == 0 {
		return 1
	}
	return int64(n)
}

// prevCharStart returns the start of the codepoint immediately before
// pos, scanning backward at most utf8.UTFMax bytes for a lead byte
// whose decoded length lands exactly on pos.
func (s *Source) prevCharStart(pos int64) int64 {
	if pos <= 0 {
		return 0
	}
	lo := maxI64(0, pos-utf8.UTFMax)
	window := s.byteRange(lo, pos)
	for i := len(window) - 1; i >= 0; i-- {
		b := window[i]
		if b&0xC0 == 0x80 { // UTF-8 continuation byte, keep scanning back
			continue
		}
		cand := lo + int64(i)
		if _, n := utf8.DecodeRune(window[i:]); n == int(pos-cand) {
			return cand
		}
		break
	}
	return pos - 1
}
