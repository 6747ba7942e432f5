package memarena

import "errors"

// Wire values preserved for any C-ABI consumer (see cmd/libmemarena).
// These MUST NOT change.
const (
	codeSuccess              uint8 = 0
	codeOutOfMemory          uint8 = 1
	codeInsufficientResource uint8 = 2
)

// ErrOutOfMemory is returned when the underlying allocator refused to
// allocate a new arena, or growing the arena pool or the free list
// failed.
var ErrOutOfMemory = &handlerError{code: codeOutOfMemory, msg: "memarena: out of memory"}

// ErrInsufficientResource is returned when a hard cap (ArenaHardCap or
// FreeHardCap) has been reached and the data structure cannot grow
// further even though memory is available.
var ErrInsufficientResource = &handlerError{code: codeInsufficientResource, msg: "memarena: hard cap reached"}

// handlerError is a comparable sentinel error that also carries the
// wire-visible error code a C shim needs to recover.
type handlerError struct {
	code uint8
	msg  string
}

func (e *handlerError) Error() string { return e.msg }

// Code returns the wire value for this error, matching the original
// ArenaErrorCode enum (Success=0, OutOfMemory=1, InsufficientResource=2).
func (e *handlerError) Code() uint8 { return e.code }

// Code returns the wire-visible error code for err: 0 on nil (Success),
// or the code carried by ErrOutOfMemory/ErrInsufficientResource. Any
// other error is reported as OutOfMemory, the closest fit in the
// three-way taxonomy.
func Code(err error) uint8 {
	if err == nil {
		return codeSuccess
	}
	var he *handlerError
	if errors.As(err, &he) {
		return he.code
	}
	return codeOutOfMemory
}
