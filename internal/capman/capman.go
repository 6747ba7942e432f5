// Package capman implements the single growth policy shared by the
// arena pool and the free list: start at an initial capacity, double
// on every subsequent growth, clamp to a hard cap on overflow or
// overshoot, and refuse to grow further once the hard cap is reached.
//
// It mirrors resize_arenas/resize_free_blocks from the original
// implementation, factored into one policy so the two pools never
// drift out of sync with each other.
package capman

import "errors"

// ErrHardCapReached is returned by NextCapacity when currentCap is
// already at the policy's hard cap.
var ErrHardCapReached = errors.New("capman: hard cap reached")

// Policy is the growth policy for one backing array.
type Policy struct {
	Initial int
	HardCap int
}

// NextCapacity returns the capacity a backing array should grow to,
// given its current capacity (0 for a nil array). It does not perform
// the allocation itself — callers combine it with their own
// element-typed allocate-and-copy step.
func (p Policy) NextCapacity(currentCap int) (int, error) {
	if currentCap == 0 {
		return p.Initial, nil
	}
	if currentCap >= p.HardCap {
		return 0, ErrHardCapReached
	}
	next := currentCap * 2
	if next <= currentCap || next > p.HardCap {
		next = p.HardCap
	}
	return next, nil
}
