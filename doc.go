// Package memarena implements an arena-based memory allocator with
// free-list recycling.
//
// # Overview
//
// The Handler hands out regions carved from contiguous arenas using a
// bump pointer, and recycles released regions through a sorted,
// coalescing free list before ever touching a fresh arena. This
// amortizes the cost of many small/medium allocations that would
// otherwise each pay for a trip to the Go runtime's allocator.
//
// # Basic Usage
//
//	h := memarena.NewHandler()
//	defer h.Destroy()
//
//	ptr, err := h.Request(64, 8, true)
//	if err != nil {
//		// ErrOutOfMemory or ErrInsufficientResource
//	}
//
//	if err := h.Release(ptr, 64); err != nil {
//		// the region leaks for the handler's remaining lifetime
//	}
//
// # Thread Safety
//
// Handler is not safe for concurrent use. Callers that need to share
// one allocator across goroutines should serialize access themselves,
// or wrap it in SafeHandler.
//
// # Allocation Order
//
// Request always checks the free list first (first-fit, alignment
// aware), then existing arenas in insertion order, and only grows the
// arena pool when nothing already allocated has room.
//
// # Memory Layout
//
// Arenas are plain byte slices sized generously relative to the first
// request that needed a new one (3x, or DefaultArenaBytes, whichever
// is larger). Once created, an arena is never resized or moved; its
// watermark only ever advances forward.
//
// # Caps
//
// The arena pool and free list each have a hard capacity
// (ArenaHardCap, FreeHardCap) inherited from the original packed
// 12-bit/20-bit counter encoding. Reaching a hard cap returns
// ErrInsufficientResource even when memory is otherwise available.
package memarena
