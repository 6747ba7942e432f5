// Command libmemarena builds a C-callable shared library wrapping
// Handler, restating the original implementation's c_export layer
// (arena_create/arena_destroy/arena_request_memory/arena_free) for Go.
//
// Build with:
//
//	go build -buildmode=c-shared -o libmemarena.so ./cmd/libmemarena
//
// Handler values cannot be handed across the cgo boundary as raw C
// pointers without pinning, so this shim hands out small integer
// tokens into a process-wide handle table instead — the memory-safe
// restatement of the original's opaque CArenaHandler*.
package main

/*
#include <stdint.h>
#include <stdbool.h>

typedef enum {
	ARENA_SUCCESS = 0,
	ARENA_OUT_OF_MEMORY = 1,
	ARENA_INSUFFICIENT_RESOURCE = 2
} ArenaErrorCode;
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/dvko/memarena"
)

var (
	handlesMu sync.Mutex
	handles   = map[C.uintptr_t]*memarena.Handler{}
	nextToken C.uintptr_t
)

//export arena_create
func arena_create() C.uintptr_t {
	handlesMu.Lock()
	defer handlesMu.Unlock()

	nextToken++
	token := nextToken
	handles[token] = memarena.NewHandler()
	return token
}

//export arena_destroy
func arena_destroy(handle C.uintptr_t) {
	handlesMu.Lock()
	h, ok := handles[handle]
	delete(handles, handle)
	handlesMu.Unlock()

	if ok {
		h.Destroy()
	}
}

//export arena_request_memory
func arena_request_memory(handle C.uintptr_t, size C.size_t, alignment C.uint8_t, useDefaultAllocation C.bool) unsafe.Pointer {
	h := lookup(handle)
	if h == nil {
		return nil
	}

	ptr, err := h.Request(uintptr(size), uint8(alignment), bool(useDefaultAllocation))
	if err != nil {
		return nil
	}
	return ptr
}

//export arena_free
func arena_free(handle C.uintptr_t, ptr unsafe.Pointer, size C.size_t) C.ArenaErrorCode {
	h := lookup(handle)
	if h == nil {
		return C.ARENA_INSUFFICIENT_RESOURCE
	}

	err := h.Release(ptr, uintptr(size))
	return C.ArenaErrorCode(memarena.Code(err))
}

func lookup(handle C.uintptr_t) *memarena.Handler {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[handle]
}

func main() {}
