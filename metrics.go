package memarena

// Metrics is a point-in-time snapshot of a Handler's pool occupancy,
// covering the whole pool rather than a single arena.
type Metrics struct {
	ArenasLen      int // number of arenas currently created
	ArenasCapacity int // current capacity of the arena backing array
	FreeLen        int // number of entries currently in the free list
	FreeCapacity   int // current capacity of the free-list backing array
	BytesInUse     int // sum of watermark offsets across all arenas
	BytesCapacity  int // sum of all arena block sizes
}

// Utilization returns BytesInUse / BytesCapacity, or 0 if no arena has
// been created yet.
func (m Metrics) Utilization() float64 {
	if m.BytesCapacity == 0 {
		return 0
	}
	return float64(m.BytesInUse) / float64(m.BytesCapacity)
}

// Metrics returns a snapshot of the Handler's current pool occupancy.
func (h *Handler) Metrics() Metrics {
	m := Metrics{
		ArenasLen:      h.arenasLen,
		ArenasCapacity: len(h.arenas),
		FreeLen:        h.freeLen,
		FreeCapacity:   len(h.freeList),
	}
	for i := 0; i < h.arenasLen; i++ {
		slot := &h.arenas[i]
		m.BytesInUse += int(slot.watermark - slot.base)
		m.BytesCapacity += len(slot.block)
	}
	return m
}
