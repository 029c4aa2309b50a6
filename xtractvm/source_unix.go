//go:build unix

package xtractvm

import (
	"os"

	"golang.org/x/sys/unix"
)

// mmapBackend maps the whole file read-only, giving byteRange zero-copy
// access regardless of how large the requested range is.
type mmapBackend struct {
	f    *os.File
	data []byte
}

func (b *mmapBackend) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off > int64(len(b.data)) {
		return 0, os.ErrInvalid
	}
	n := copy(p, b.data[off:])
	return n, nil
}

func (b *mmapBackend) sizeOf() int64   { return int64(len(b.data)) }
func (b *mmapBackend) bytes() []byte   { return b.data }
func (b *mmapBackend) closeBackend() error {
	err := unix.Munmap(b.data)
	if cerr := b.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// newDirectBackend attempts to mmap f. A zero-length file can't be
// mapped, and some filesystems reject mmap outright (pipes, certain
// network mounts); either case falls back to fileBackend rather than
// failing Open.
func newDirectBackend(f *os.File, size int64) (backend, bool, error) {
	if size <= 0 {
		return nil, false, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, false, nil
	}
	return &mmapBackend{f: f, data: data}, true, nil
}
