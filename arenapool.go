package memarena

import "github.com/dvko/memarena/internal/capman"

// ArenaHardCap is the maximum number of arenas a Handler will grow to,
// inherited from the original 12-bit arena counter (1<<12 - 1).
const ArenaHardCap = 4095

// DefaultArenaBytes is the minimum size given to a freshly created
// arena when useDefault is true.
const DefaultArenaBytes = 1 << 20

// InitialArenaCapacity is the arena pool's first non-zero capacity.
const InitialArenaCapacity = 3

var defaultArenaPolicy = capman.Policy{Initial: InitialArenaCapacity, HardCap: ArenaHardCap}

// arenaSlot is one arena: a contiguous block with a bump pointer
// tracking the first untouched byte.
type arenaSlot struct {
	block     []byte
	base      uintptr
	watermark uintptr
}

// carve attempts to bump-allocate size bytes aligned to align from
// this arena. It reports ok=false, leaving the arena untouched, if
// there isn't room.
func (a *arenaSlot) carve(size uintptr, align uintptr) (ptr uintptr, ok bool) {
	aligned := alignForward(a.watermark, align)
	end := aligned + size
	if end > a.base+uintptr(len(a.block)) {
		return 0, false
	}
	a.watermark = end
	return aligned, true
}

// requestFromArenas scans existing arenas in insertion order and
// bump-allocates from the first one with room.
func (h *Handler) requestFromArenas(size uintptr, align uintptr) (uintptr, bool) {
	for i := 0; i < h.arenasLen; i++ {
		if ptr, ok := h.arenas[i].carve(size, align); ok {
			return ptr, true
		}
	}
	return 0, false
}

// growArenaPool grows the arena pool's backing array according to the
// shared capacity policy, copying existing slots into the new array.
func (h *Handler) growArenaPool() error {
	next, err := h.arenaPolicy.NextCapacity(len(h.arenas))
	if err != nil {
		h.logf("memarena: arena pool at hard cap (%d)", h.arenaPolicy.HardCap)
		return ErrInsufficientResource
	}
	grown, err := h.growArenas(next)
	if err != nil {
		h.logf("memarena: failed to grow arena pool to %d slots: %v", next, err)
		return ErrOutOfMemory
	}
	copy(grown, h.arenas[:h.arenasLen])
	h.arenas = grown
	return nil
}

// newArena creates a new arena of size*3 bytes (at least
// DefaultArenaBytes when useDefault is true), grows the pool if
// needed, and serves the request from the head of the fresh arena.
// The arena size does not include alignment padding. The request is
// always served from a freshly created arena's head; it never triggers
// a second growth.
func (h *Handler) newArena(size uintptr, align uintptr, useDefault bool) (uintptr, error) {
	if h.arenasLen == len(h.arenas) {
		if err := h.growArenaPool(); err != nil {
			return 0, err
		}
	}

	memAmount := size * 3
	if useDefault && memAmount < DefaultArenaBytes {
		memAmount = DefaultArenaBytes
	}

	block, err := h.allocator.Allocate(int(memAmount))
	if err != nil {
		h.logf("memarena: failed to allocate new arena of %d bytes: %v", memAmount, err)
		return 0, ErrOutOfMemory
	}

	base := addrOf(block)
	aligned := alignForward(base, align)

	slot := &h.arenas[h.arenasLen]
	slot.block = block
	slot.base = base
	slot.watermark = aligned + size
	h.arenasLen++

	return aligned, nil
}
