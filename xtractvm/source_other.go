//go:build !unix

package xtractvm

import "os"

// newDirectBackend has no mmap available on this platform; Source
// always falls back to the ReaderAt-backed fileBackend.
func newDirectBackend(f *os.File, size int64) (backend, bool, error) {
	return nil, false, nil
}
