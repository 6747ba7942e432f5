//go:build !(linux || darwin || freebsd)

package mmapalloc

import "errors"

// ErrUnsupported is returned by Allocate on platforms without an
// anonymous-mmap implementation.
var ErrUnsupported = errors.New("mmapalloc: unsupported on this platform")

// Allocator is a stub that reports ErrUnsupported on every Allocate
// call, keeping the package importable (and its API stable) on
// platforms golang.org/x/sys/unix does not cover.
type Allocator struct{}

// New returns the unsupported-platform stub Allocator.
func New() Allocator { return Allocator{} }

func (Allocator) Allocate(n int) ([]byte, error) { return nil, ErrUnsupported }

func (Allocator) Release([]byte) {}
