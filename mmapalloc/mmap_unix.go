//go:build linux || darwin || freebsd

// Package mmapalloc provides an OS-backed memarena.Allocator built on
// an anonymous mmap, for hosts that want arenas outside the Go heap
// (so arena bytes are invisible to the garbage collector's scan and
// can be sized well beyond what they expect the Go heap to carry).
package mmapalloc

import "golang.org/x/sys/unix"

// Allocator backs arena blocks with anonymous, private mmap regions
// instead of Go heap memory.
type Allocator struct{}

// New returns an mmap-backed Allocator. It is only available on
// Linux, Darwin, and FreeBSD; other platforms get the stub in
// mmap_unsupported.go.
func New() Allocator { return Allocator{} }

// Allocate maps n bytes of anonymous, private, read-write memory.
func (Allocator) Allocate(n int) ([]byte, error) {
	if n == 0 {
		n = 1
	}
	block, err := unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return block, nil
}

// Release unmaps a block previously obtained from Allocate. Unlike the
// default heap-backed allocator, this one cannot rely on the garbage
// collector — an unreleased mapping leaks for the life of the process.
func (Allocator) Release(block []byte) {
	if len(block) == 0 {
		return
	}
	_ = unix.Munmap(block)
}
