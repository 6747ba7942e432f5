//go:build debug

package memarena

import "fmt"

// checkRelease is the debug-only half of the optional invalid-free
// instrumentation: it walks the arena pool and free list to catch a
// release that targets memory this Handler never handed out, or that
// overlaps a region already on the free list (a double free). It is
// compiled in only under the debug build tag; a default build pays
// nothing for it and trusts its caller per Release's contract.
func (h *Handler) checkRelease(ptr uintptr, size uintptr) {
	if !h.ownsRange(ptr, size) {
		panic(fmt.Sprintf("memarena: Release(%#x, %d) does not lie inside any arena owned by this Handler", ptr, size))
	}
	for i := 0; i < h.freeLen; i++ {
		r := h.freeList[i]
		if ptr < r.ptr+r.size && r.ptr < ptr+size {
			panic(fmt.Sprintf("memarena: Release(%#x, %d) overlaps free region [%#x, %#x) — likely a double free", ptr, size, r.ptr, r.ptr+r.size))
		}
	}
}

// ownsRange reports whether [ptr, ptr+size) lies entirely within one
// arena's backing block.
func (h *Handler) ownsRange(ptr uintptr, size uintptr) bool {
	for i := 0; i < h.arenasLen; i++ {
		a := &h.arenas[i]
		start := a.base
		end := a.base + uintptr(len(a.block))
		if ptr >= start && ptr+size <= end {
			return true
		}
	}
	return false
}
