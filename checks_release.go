//go:build !debug

package memarena

// checkRelease is a no-op in a default build. Release trusts its
// caller; see checks_debug.go for the instrumented version enabled by
// the debug build tag.
func (h *Handler) checkRelease(uintptr, uintptr) {}
