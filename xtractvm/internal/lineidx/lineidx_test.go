package lineidx

import (
	"bytes"
	"testing"
)

func TestPutLookup(t *testing.T) {
	idx := New(16, 4, 2) // 4-byte subchunks
	data := []byte("a\nbb\ncccc\nddd\n") // block 0, short of 16 bytes
	counts := idx.Put(0, data)
	if len(counts) != 4 {
		t.Fatalf("len(counts) = %d, want 4", len(counts))
	}
	// subchunk 0 = "a\nbb" -> 1 newline
	// subchunk 1 = "\ncccc"[:4] = "\nccc" -> 1 newline
	// subchunk 2 = "c\ndd" -> 1 newline
	// subchunk 3 = "d\n" (short) -> 1 newline
	want := []uint16{1, 1, 1, 1}
	got := idx.Lookup(0)
	if got == nil {
		t.Fatal("Lookup(0) = nil after Put")
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("counts[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	var total uint16
	for _, c := range got {
		total += c
	}
	if want := uint16(bytes.Count(data, []byte("\n"))); total != want {
		t.Errorf("total newlines = %d, want %d", total, want)
	}
}

func TestEviction(t *testing.T) {
	idx := New(4, 2, 2)
	idx.Put(0, []byte("a\nbb"))
	idx.Put(1, []byte("c\ndd"))
	if idx.Lookup(0) == nil || idx.Lookup(1) == nil {
		t.Fatal("both blocks should be cached")
	}
	// touch 0 so it's most-recently-used, then add a third block
	idx.Lookup(0)
	idx.Put(2, []byte("e\nff"))
	if idx.Lookup(1) != nil {
		t.Error("block 1 should have been evicted as least recently used")
	}
	if idx.Lookup(0) == nil {
		t.Error("block 0 should still be cached")
	}
	if idx.Lookup(2) == nil {
		t.Error("block 2 should be cached")
	}
}

func TestPutPastEOF(t *testing.T) {
	idx := New(16, 4, 1)
	counts := idx.Put(0, []byte("a\nb"))
	if len(counts) != 4 {
		t.Fatalf("len(counts) = %d, want 4", len(counts))
	}
	if counts[1] != 0 || counts[2] != 0 || counts[3] != 0 {
		t.Errorf("counts past short data should be 0, got %v", counts)
	}
}
