package memarena

import (
	"sync"
	"unsafe"
)

// SafeHandler is a mutex-protected wrapper around Handler for callers
// that want to share one allocator across goroutines rather than
// serializing access themselves. This is the externally-imposed
// serialization the core Handler's single-threaded contract calls
// for, implemented once instead of by every caller.
type SafeHandler struct {
	mu sync.Mutex
	h  *Handler
}

// NewSafeHandler returns a new thread-safe Handler.
func NewSafeHandler(opts ...HandlerOption) *SafeHandler {
	return &SafeHandler{h: NewHandler(opts...)}
}

// Request thread-safely satisfies an allocation. See Handler.Request.
func (s *SafeHandler) Request(size uintptr, alignment uint8, useDefault ...bool) (unsafe.Pointer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Request(size, alignment, useDefault...)
}

// Release thread-safely returns a region to the free list. See
// Handler.Release.
func (s *SafeHandler) Release(ptr unsafe.Pointer, size uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Release(ptr, size)
}

// Destroy thread-safely releases every arena and both backing arrays.
func (s *SafeHandler) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Destroy()
}

// Metrics thread-safely returns a snapshot of pool occupancy.
func (s *SafeHandler) Metrics() Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Metrics()
}
