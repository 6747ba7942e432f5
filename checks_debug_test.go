//go:build debug

package memarena

import (
	"testing"
	"unsafe"
)

func TestCheckReleasePanicsOnForeignPointer(t *testing.T) {
	h := NewHandler()
	defer h.Destroy()

	if _, err := h.Request(64, 1); err != nil {
		t.Fatalf("Request error = %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic releasing a pointer outside any arena")
		}
	}()
	_ = h.Release(unsafe.Pointer(uintptr(0xdeadbeef)), 64)
}

func TestCheckReleasePanicsOnDoubleFree(t *testing.T) {
	h := NewHandler()
	defer h.Destroy()

	p, err := h.Request(64, 1)
	if err != nil {
		t.Fatalf("Request error = %v", err)
	}
	if err := h.Release(p, 64); err != nil {
		t.Fatalf("first Release error = %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected a panic on the second Release of the same region")
		}
	}()
	_ = h.Release(p, 64)
}

func TestCheckReleaseAcceptsOrdinaryRelease(t *testing.T) {
	h := NewHandler()
	defer h.Destroy()

	p, err := h.Request(64, 1)
	if err != nil {
		t.Fatalf("Request error = %v", err)
	}
	if err := h.Release(p, 64); err != nil {
		t.Errorf("Release error = %v, want nil", err)
	}
}
