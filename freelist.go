package memarena

import (
	"sort"

	"github.com/dvko/memarena/internal/capman"
)

// FreeHardCap is the maximum number of free-list entries a Handler
// will grow to, inherited from the original 20-bit free-block counter
// (1<<20 - 1).
const FreeHardCap = 1048575

// InitialFreeCapacity is the free list's first non-zero capacity.
const InitialFreeCapacity = 50

// MinRetainedRemainder is the smallest carve remainder worth keeping
// in the free list. Smaller remainders are dropped and leak until the
// Handler is destroyed.
const MinRetainedRemainder = 256

var defaultFreePolicy = capman.Policy{Initial: InitialFreeCapacity, HardCap: FreeHardCap}

// freeRegion is one previously released, not-yet-reused region.
type freeRegion struct {
	ptr  uintptr
	size uintptr
}

// requestFromFreeList performs an alignment-aware first-fit scan of
// the free list. On a hit it carves from the front of the matching
// entry, shrinking it in place or removing it outright if the
// remainder is below MinRetainedRemainder.
func (h *Handler) requestFromFreeList(size uintptr, align uintptr) (uintptr, bool) {
	for i := 0; i < h.freeLen; i++ {
		region := &h.freeList[i]

		aligned := alignForward(region.ptr, align)
		neededEnd := aligned + size
		actualEnd := region.ptr + region.size
		if neededEnd > actualEnd {
			continue
		}

		remainder := actualEnd - neededEnd
		if remainder < MinRetainedRemainder {
			h.removeFreeEntry(i)
		} else {
			region.ptr = neededEnd
			region.size = remainder
		}
		return aligned, true
	}
	return 0, false
}

// removeFreeEntry deletes the entry at i by left-shifting the tail of
// the logical free list by one slot.
func (h *Handler) removeFreeEntry(i int) {
	copy(h.freeList[i:h.freeLen-1], h.freeList[i+1:h.freeLen])
	h.freeLen--
}

// lowerBound returns the index at which ptr would be inserted to keep
// the free list sorted ascending by ptr.
func (h *Handler) lowerBound(ptr uintptr) int {
	return sort.Search(h.freeLen, func(i int) bool {
		return h.freeList[i].ptr >= ptr
	})
}

// release performs the sorted-insertion-with-coalescing protocol: find
// the insertion index, then merge-both, merge-left, merge-right, or
// insert, growing the backing array first if an insert is needed at
// capacity.
func (h *Handler) release(ptr uintptr, size uintptr) error {
	idx := h.lowerBound(ptr)

	mergeLeft := idx > 0 && h.freeList[idx-1].ptr+h.freeList[idx-1].size == ptr
	mergeRight := idx < h.freeLen && ptr+size == h.freeList[idx].ptr

	switch {
	case mergeLeft && mergeRight:
		h.freeList[idx-1].size += size + h.freeList[idx].size
		h.removeFreeEntry(idx)
		return nil

	case mergeLeft:
		h.freeList[idx-1].size += size
		return nil

	case mergeRight:
		h.freeList[idx].ptr = ptr
		h.freeList[idx].size += size
		return nil

	default:
		return h.insertFreeEntry(idx, ptr, size)
	}
}

// insertFreeEntry grows the free list if it is at capacity, then
// right-shifts the tail by one slot and writes the new entry at idx.
func (h *Handler) insertFreeEntry(idx int, ptr uintptr, size uintptr) error {
	if h.freeLen == len(h.freeList) {
		if err := h.growFreeList(); err != nil {
			return err
		}
	}

	copy(h.freeList[idx+1:h.freeLen+1], h.freeList[idx:h.freeLen])
	h.freeList[idx] = freeRegion{ptr: ptr, size: size}
	h.freeLen++
	return nil
}

// growFreeList grows the free list's backing array according to the
// shared capacity policy, copying existing entries into the new array.
func (h *Handler) growFreeList() error {
	next, err := h.freePolicy.NextCapacity(len(h.freeList))
	if err != nil {
		h.logf("memarena: free list at hard cap (%d)", h.freePolicy.HardCap)
		return ErrInsufficientResource
	}
	grown, err := h.growFree(next)
	if err != nil {
		h.logf("memarena: failed to grow free list to %d slots: %v", next, err)
		return ErrOutOfMemory
	}
	copy(grown, h.freeList[:h.freeLen])
	h.freeList = grown
	return nil
}
