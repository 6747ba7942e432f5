package memarena

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Alloc requests room for a single T from h, aligned to T's natural
// alignment, and returns a typed pointer into arena memory. The
// memory is not zeroed — the free list may hand back a previously
// used region. Use AllocZeroed when zeroed memory is required.
func Alloc[T any](h *Handler) (*T, error) {
	var zero T
	ptr, err := h.Request(unsafe.Sizeof(zero), uint8(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return (*T)(ptr), nil
}

// AllocZeroed is identical to Alloc but zeroes the returned memory
// before handing it back, guarding against a freshly recycled
// free-list region carrying stale bytes.
func AllocZeroed[T any](h *Handler) (*T, error) {
	p, err := Alloc[T](h)
	if err != nil {
		return nil, err
	}
	var zero T
	*p = zero
	return p, nil
}

// AllocSlice requests room for n contiguous T from h and returns a
// slice over that region. Elements are not initialized. N may be any
// integer type, for convenience at the call site.
func AllocSlice[T any, N constraints.Integer](h *Handler, n N) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	ptr, err := h.Request(elemSize*uintptr(n), uint8(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(ptr), int(n)), nil
}

// AllocSliceZeroed is identical to AllocSlice but zeroes every element
// before returning.
func AllocSliceZeroed[T any, N constraints.Integer](h *Handler, n N) ([]T, error) {
	s, err := AllocSlice[T](h, n)
	if err != nil {
		return nil, err
	}
	var zero T
	for i := range s {
		s[i] = zero
	}
	return s, nil
}

// ReleaseValue returns the region backing a value allocated with Alloc
// or AllocZeroed back to h's free list.
func ReleaseValue[T any](h *Handler, p *T) error {
	if p == nil {
		return nil
	}
	var zero T
	return h.Release(unsafe.Pointer(p), unsafe.Sizeof(zero))
}

// ReleaseSlice returns the region backing a slice allocated with
// AllocSlice or AllocSliceZeroed back to h's free list. It releases
// cap(s) elements, matching the amount originally requested, not
// len(s).
func ReleaseSlice[T any](h *Handler, s []T) error {
	if len(s) == 0 {
		return nil
	}
	var zero T
	return h.Release(unsafe.Pointer(unsafe.SliceData(s)), unsafe.Sizeof(zero)*uintptr(cap(s)))
}
