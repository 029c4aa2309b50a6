package xtractvm

import (
	"io"
	"os"

	"github.com/chronos-tachyon/go-xtractvm/xtractvm/internal/lineidx"
)

// backend is the minimal random-access read surface a Source needs.
// Two implementations exist: an mmap-backed one (source_unix.go) that
// satisfies directBackend for zero-copy access, and a plain
// os.File-backed one (this file) used on platforms without mmap
// support, or when mmap itself fails (e.g. a zero-length file).
type backend interface {
	io.ReaderAt
	sizeOf() int64
	closeBackend() error
}

// directBackend additionally exposes its full backing slice, letting
// Source.byteRange hand out zero-copy subslices instead of populating
// the scratch buffer.
type directBackend interface {
	backend
	bytes() []byte
}

type fileBackend struct {
	f    *os.File
	size int64
}

func (b *fileBackend) ReadAt(p []byte, off int64) (int, error) { return b.f.ReadAt(p, off) }
func (b *fileBackend) sizeOf() int64                           { return b.size }
func (b *fileBackend) closeBackend() error                     { return b.f.Close() }

// Source is a random-access view of the bytes the clause program runs
// against, matching the one reusable-scratch-buffer model spec.md §3
// describes: a single scratch buffer is reused across forward/backward
// window reads, sized to the larger of the two search window tunables.
type Source struct {
	b       backend
	idx     *lineidx.Index
	scratch []byte
	tmpPath string // non-empty when a spooled stdin temp file needs removal on Close
}

// Open opens path for random-access reading. path == "-" spools stdin
// to a temporary file first, since mmap needs a real, seekable file
// descriptor.
func Open(path string) (*Source, error) {
	f, tmpPath, err := openPath(path)
	if err != nil {
		return nil, &OpError{Kind: ErrIO, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpError{Kind: ErrIO, Err: err}
	}
	size := info.Size()

	var b backend
	if db, ok, derr := newDirectBackend(f, size); derr == nil && ok {
		b = db
	} else {
		b = &fileBackend{f: f, size: size}
	}

	return &Source{
		b:       b,
		idx:     lineidx.New(IdxBlock, IdxSub, IdxMaxBlocks),
		scratch: make([]byte, scratchCapacity),
		tmpPath: tmpPath,
	}, nil
}

func openPath(path string) (f *os.File, tmpPath string, err error) {
	if path != "-" {
		f, err = os.Open(path)
		return f, "", err
	}

	tmp, err := os.CreateTemp("", "xtractvm-stdin-*")
	if err != nil {
		return nil, "", err
	}
	if _, err = io.Copy(tmp, os.Stdin); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, "", err
	}
	if _, err = tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, "", err
	}
	return tmp, tmp.Name(), nil
}

// Close releases the source's backing resources, removing a spooled
// stdin temp file if one was created.
func (s *Source) Close() error {
	err := s.b.closeBackend()
	if s.tmpPath != "" {
		os.Remove(s.tmpPath)
	}
	return err
}

// Size returns the total byte length of the source.
func (s *Source) Size() int64 {
	return s.b.sizeOf()
}

// byteRange returns the bytes in [lo,hi), clamped to the file bounds.
// For the mmap backend this aliases the mapping directly; otherwise it
// is read into the shared scratch buffer and is only valid until the
// next call that uses the scratch buffer.
func (s *Source) byteRange(lo, hi int64) []byte {
	size := s.Size()
	lo = clampI64(lo, 0, size)
	hi = clampI64(hi, 0, size)
	if lo >= hi {
		return nil
	}
	if db, ok := s.b.(directBackend); ok {
		return db.bytes()[lo:hi]
	}
	n := hi - lo
	if n > int64(len(s.scratch)) {
		n = int64(len(s.scratch))
		hi = lo + n
	}
	buf := s.scratch[:n]
	_, err := s.b.ReadAt(buf, lo)
	if err != nil && err != io.EOF {
		return buf[:0]
	}
	return buf
}

// Emit writes the bytes in [lo,hi) to w.
func (s *Source) Emit(w io.Writer, lo, hi int64) error {
	size := s.Size()
	lo = clampI64(lo, 0, size)
	hi = clampI64(hi, 0, size)
	if lo >= hi {
		return nil
	}
	if db, ok := s.b.(directBackend); ok {
		_, err := w.Write(db.bytes()[lo:hi])
		return err
	}
	for lo < hi {
		n := minI64(int64(len(s.scratch)), hi-lo)
		chunk := s.scratch[:n]
		if _, err := s.b.ReadAt(chunk, lo); err != nil && err != io.EOF {
			return err
		}
		if _, err := w.Write(chunk); err != nil {
			return err
		}
		lo += n
	}
	return nil
}
