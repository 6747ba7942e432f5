package benchmarks

import (
	"testing"

	"github.com/dvko/memarena"
)

// header mimics a small fixed-size record, the kind of value a parser
// or codec would carve repeatedly out of an arena.
type header struct {
	kind   uint32
	length uint32
	flags  uint64
}

func BenchmarkParserStyleAllocation(b *testing.B) {
	h := memarena.NewHandler()
	defer h.Destroy()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		hdr, err := memarena.Alloc[header](h)
		if err != nil {
			b.Fatal(err)
		}
		hdr.kind = uint32(i)
		payload, err := memarena.AllocSlice[byte](h, 128)
		if err != nil {
			b.Fatal(err)
		}
		_ = payload
	}
}

func BenchmarkRequestReleaseBatch(b *testing.B) {
	h := memarena.NewHandler()
	defer h.Destroy()

	const batch = 64
	ptrs := make([]uintptr, 0, batch)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ptrs = ptrs[:0]
		for j := 0; j < batch; j++ {
			p, err := h.Request(48, 8)
			if err != nil {
				b.Fatal(err)
			}
			ptrs = append(ptrs, uintptr(p))
		}
		for _, p := range ptrs {
			if err := h.Release(unsafePointer(p), 48); err != nil {
				b.Fatal(err)
			}
		}
	}
}
