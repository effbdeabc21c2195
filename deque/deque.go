// Package deque implements a bounded lock-free double-ended queue: a
// fixed-capacity ring buffer with a single-producer front end
// (PushFront/PopFront, owner-only, never called concurrently with each
// other) and a multi-consumer back end (PopBack, any number of
// goroutines, safe concurrently with the front-end operations).
//
// The front and back indices are packed into one machine word (a
// uint64: front in the high 32 bits, back in the low 32 bits) so that
// advancing either is a single atomic add or CAS, a technique grounded
// on the node-based compare-and-swap ring buffer in
// gsingh-ds-go-lock-free-ring-buffer/node_based.go.
package deque

import (
	"github.com/katalvlaran/paretosp/xatomic"
	"github.com/katalvlaran/paretosp/xerrors"
)

// frontDelta is the packed state delta representing "front += 1",
// used by the single owner-thread PushFront fetch-and-add.
const frontDelta = uint64(1) << 32

// Bounded is a fixed-capacity lock-free deque of T. Capacity must be
// a power of two; callers size it comfortably above the expected
// burst of outstanding tasks per worker.
type Bounded[T any] struct {
	state uint64 // packed (front uint32, back uint32)
	mask  uint64
	buf   []T
}

// New constructs a Bounded deque whose capacity is the smallest power
// of two >= capacityHint (minimum 2).
func New[T any](capacityHint int) *Bounded[T] {
	capacity := nextPowerOfTwo(capacityHint)
	return &Bounded[T]{
		mask: uint64(capacity - 1),
		buf:  make([]T, capacity),
	}
}

func nextPowerOfTwo(n int) int {
	if n < 2 {
		return 2
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func decode(state uint64) (front, back uint64) {
	return state >> 32, state & 0xffffffff
}

func encode(front, back uint64) uint64 {
	return (front << 32) | (back & 0xffffffff)
}

// PushFront appends t at the owner end. Must be called only by the
// owning goroutine, and never concurrently with PopFront. Overflowing
// the fixed capacity is a precondition violation.
func (d *Bounded[T]) PushFront(t T) error {
	state := xatomic.Load(&d.state)
	front, back := decode(state)
	if front-back >= uint64(len(d.buf)) {
		return xerrors.New(xerrors.ResourceExhausted, "deque: push_front overflow at capacity %d", len(d.buf))
	}

	d.buf[front&d.mask] = t
	xatomic.Add(&d.state, frontDelta)

	return nil
}

// PopFront removes from the owner end. Must be called only by the
// owning goroutine, and never concurrently with PushFront. Reports ok
// = false when the deque is empty.
func (d *Bounded[T]) PopFront() (t T, ok bool) {
	for {
		state := xatomic.Load(&d.state)
		front, back := decode(state)
		if front <= back {
			return t, false
		}
		newState := encode(front-1, back)
		if xatomic.CompareAndSwap(&d.state, state, newState) {
			return d.buf[(front-1)&d.mask], true
		}
		xatomic.Yield()
	}
}

// PopBack steals from the back end. Safe to call concurrently from
// any number of goroutines, including concurrently with
// PushFront/PopFront. Reports ok = false when the deque is empty.
func (d *Bounded[T]) PopBack() (t T, ok bool) {
	for {
		state := xatomic.Load(&d.state)
		front, back := decode(state)
		if front <= back {
			return t, false
		}
		newState := encode(front, back+1)
		if xatomic.CompareAndSwap(&d.state, state, newState) {
			return d.buf[back&d.mask], true
		}
		xatomic.Yield()
	}
}

// Len returns the current number of elements. It is a snapshot and
// may be stale the instant it is returned under concurrent steals.
func (d *Bounded[T]) Len() int {
	front, back := decode(xatomic.Load(&d.state))
	return int(front - back)
}

// Empty reports whether the deque currently holds no elements.
func (d *Bounded[T]) Empty() bool {
	return d.Len() == 0
}

// Cap returns the fixed capacity of the deque.
func (d *Bounded[T]) Cap() int {
	return len(d.buf)
}
