// Package xatomic exposes the atomic primitives the rest of the
// concurrent core is built on: fetch-and-add, compare-and-swap, and a
// cooperative yield, generic over the machine-word types the package
// needs them for. Every other concurrent data structure (deque,
// workstealing) is built on these plus acquire/release semantics on
// plain reads/writes of aligned machine words, which sync/atomic
// already guarantees on every architecture Go supports.
package xatomic

import (
	"runtime"
	"sync/atomic"
)

// Word is the constraint satisfied by every machine-word type the
// generic primitives below operate on: the signed 64-bit word
// Counter is built on, and the unsigned 64-bit packed front/back
// state deque.Bounded builds its lock-free ring buffer on.
type Word interface {
	~int32 | ~int64 | ~uint64
}

// Add atomically adds delta to *addr and returns the value *addr held
// before the addition (fetch-and-add).
func Add[W Word](addr *W, delta W) W {
	switch a := any(addr).(type) {
	case *int32:
		return W(atomic.AddInt32(a, any(delta).(int32))) - delta
	case *int64:
		return W(atomic.AddInt64(a, any(delta).(int64))) - delta
	case *uint64:
		return W(atomic.AddUint64(a, any(delta).(uint64))) - delta
	default:
		panic("xatomic: unsupported word type")
	}
}

// CompareAndSwap performs a sequentially consistent CAS, reporting
// success.
func CompareAndSwap[W Word](addr *W, old, new W) bool {
	switch a := any(addr).(type) {
	case *int32:
		return atomic.CompareAndSwapInt32(a, any(old).(int32), any(new).(int32))
	case *int64:
		return atomic.CompareAndSwapInt64(a, any(old).(int64), any(new).(int64))
	case *uint64:
		return atomic.CompareAndSwapUint64(a, any(old).(uint64), any(new).(uint64))
	default:
		panic("xatomic: unsupported word type")
	}
}

// Load performs a sequentially consistent load.
func Load[W Word](addr *W) W {
	switch a := any(addr).(type) {
	case *int32:
		return W(atomic.LoadInt32(a))
	case *int64:
		return W(atomic.LoadInt64(a))
	case *uint64:
		return W(atomic.LoadUint64(a))
	default:
		panic("xatomic: unsupported word type")
	}
}

// Yield cooperatively relinquishes the processor, used between failed
// steal attempts in the work-stealing loop.
func Yield() {
	runtime.Gosched()
}

// Counter is a shared signed 64-bit counter built on Add/Load, used
// by workstealing.Pool for its elements-leftover count.
type Counter struct {
	v int64
}

// Add adds delta and returns the previous value.
func (c *Counter) Add(delta int64) int64 {
	return Add(&c.v, delta)
}

// Load returns the current value.
func (c *Counter) Load() int64 {
	return Load(&c.v)
}
