package asm

import "unsafe"

// Zone stands in for the source design's bump-pointer arena (spec.md §9
// "Replacing pointer networks with arenas"). Go's garbage collector reclaims
// objects on its own, so Zone only keeps accounts: Allocate adds the size of
// each value it creates to a running total that Allocated reports. Task-list
// nodes are created through it (Context.AppendTask); Blocks and Promises are
// allocated directly and are not counted. Zone places no cap on growth.
type Zone struct {
	allocated int
}

// NewZone returns an empty arena.
func NewZone() *Zone {
	return &Zone{}
}

// Allocate records n bytes of arena growth and returns a fresh value of the
// requested shape via the generic New. Callers that don't need the
// accounting can simply use new(T) or &T{} directly; Allocate is for call
// sites that want the Zone to be the visible owner, matching arm.cpp's
// zone->allocate(sizeof(X)) call sites.
func Allocate[T any](z *Zone) *T {
	var v T
	z.allocated += int(unsafe.Sizeof(v))
	return new(T)
}

// Allocated returns the cumulative number of bytes attributed to this Zone
// by calls to Allocate.
func (z *Zone) Allocated() int {
	return z.allocated
}
