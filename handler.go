package memarena

import (
	"unsafe"

	"github.com/dvko/memarena/internal/capman"
)

// Handler is the unique owner of an arena pool and a free list. It is
// not safe for concurrent use — see SafeHandler for a mutex-guarded
// wrapper.
type Handler struct {
	arenas    []arenaSlot
	arenasLen int

	freeList []freeRegion
	freeLen  int

	arenaPolicy capman.Policy
	freePolicy  capman.Policy

	allocator Allocator
	logger    Logger

	growArenas func(int) ([]arenaSlot, error)
	growFree   func(int) ([]freeRegion, error)

	destroyed bool
}

// HandlerOption configures a Handler at construction time.
type HandlerOption func(*Handler)

// WithAllocator overrides the allocator used to back arena blocks.
// The default allocates plain Go heap memory via make.
func WithAllocator(a Allocator) HandlerOption {
	return func(h *Handler) { h.allocator = a }
}

// WithLogger routes diagnostic messages (cap exhaustion, allocation
// failure) through logger instead of discarding them. The Handler
// never reaches for a global logger; this is the only injection
// point.
func WithLogger(logger Logger) HandlerOption {
	return func(h *Handler) { h.logger = logger }
}

// NewHandler returns a ready-to-use Handler. Initial state: both
// backing arrays are nil, all counters zero. Unlike the C original,
// construction cannot fail — no allocation happens until the first
// Request.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		arenaPolicy: defaultArenaPolicy,
		freePolicy:  defaultFreePolicy,
		allocator:   defaultAllocator{},
		logger:      noopLogger{},
	}
	h.growArenas = func(n int) ([]arenaSlot, error) { return safeMake[arenaSlot](n) }
	h.growFree = func(n int) ([]freeRegion, error) { return safeMake[freeRegion](n) }

	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) logf(format string, args ...any) {
	h.logger.Printf(format, args...)
}

// Request satisfies an allocation of size bytes aligned to alignment,
// preferring the free list, then existing arenas, then a freshly
// grown arena, in that order. useDefault defaults to true when
// omitted; passing false disables the DefaultArenaBytes floor on a
// freshly created arena's size.
//
// alignment must be a power of two; this is not validated, matching
// the source contract.
//
// size == 0 is legal: Request returns an aligned, in-bounds pointer
// without requiring any pool to have a non-zero amount of room beyond
// alignment padding.
func (h *Handler) Request(size uintptr, alignment uint8, useDefault ...bool) (unsafe.Pointer, error) {
	h.panicIfDestroyed()

	align := uintptr(alignment)
	if align == 0 {
		align = 1
	}
	useDef := true
	if len(useDefault) > 0 {
		useDef = useDefault[0]
	}

	if ptr, ok := h.requestFromFreeList(size, align); ok {
		return unsafe.Pointer(ptr), nil
	}

	if ptr, ok := h.requestFromArenas(size, align); ok {
		return unsafe.Pointer(ptr), nil
	}

	ptr, err := h.newArena(size, align, useDef)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(ptr), nil
}

// Release returns a previously requested region to the free list,
// merging it with an adjacent left or right neighbor (or both) when
// they touch. On failure the free list is left structurally
// unchanged and the region leaks for the Handler's remaining
// lifetime.
//
// Release trusts its caller: a double free or a pointer this Handler
// never handed out is not detected in a default build. Built with
// the debug tag, checks_debug.go catches both instead.
func (h *Handler) Release(ptr unsafe.Pointer, size uintptr) error {
	h.panicIfDestroyed()
	h.checkRelease(uintptr(ptr), size)
	return h.release(uintptr(ptr), size)
}

// Destroy releases every arena's backing block and both backing
// arrays. Calling Destroy on a nil *Handler is a no-op. After Destroy,
// previously handed-out pointers are invalid and any further call to
// Request or Release panics.
func (h *Handler) Destroy() {
	if h == nil || h.destroyed {
		return
	}
	for i := 0; i < h.arenasLen; i++ {
		h.allocator.Release(h.arenas[i].block)
	}
	h.arenas = nil
	h.arenasLen = 0
	h.freeList = nil
	h.freeLen = 0
	h.destroyed = true
}

func (h *Handler) panicIfDestroyed() {
	if h.destroyed {
		panic("memarena: use of Handler after Destroy()")
	}
}

// safeMake allocates a slice of n zero-valued T, recovering from a
// panic (extreme, practically unreachable sizes) into ErrOutOfMemory
// so capacity growth never crashes the host.
func safeMake[T any](n int) (s []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, ErrOutOfMemory
		}
	}()
	return make([]T, n), nil
}
