// Package ctrx provides portable atomic counters: increment, decrement
// and snapshot-read on a shared integer, safe for concurrent use.
//
// Exactly one of three interchangeable backends is compiled into a
// program, selected by build tags (see internal/opt), in preference
// order:
//
//   - atomic (default): lock-free sync/atomic fetch-and-add and load.
//   - legacy-atomic (-tags=ctrx_legacy_atomics): lock-free
//     fetch-and-add only; snapshots are taken by adding zero.
//   - mutex (-tags=ctrx_mutex): a Guard protects plain
//     read-modify-writes on an ordinary integer.
//
// The choice is whole-program and static, so every call site compiles
// to a single code path with no dispatch overhead: under the atomic
// backends the Guard is zero-sized and its no-op methods fold away,
// while under the mutex backend the operations become short critical
// sections.
//
// Callers declare the counter storage and, if they cannot guarantee a
// lock-free backend, a dedicated Guard per counter:
//
//	var hits uint64
//	var g ctrx.Guard
//
//	ctrx.Incr(&hits, 1, &g)
//	var v uint64
//	ctrx.Get(&hits, &v, &g)
//
// A counter must never be read or written directly by more than one
// goroutine except through these operations; under the mutex backend a
// Guard must be 1:1 with its counter and must never be bypassed.
//
// Only single-counter coherence is guaranteed: operations on one
// counter are linearizable with respect to each other, but observing an
// updated counter implies nothing about writes to other memory.
// Overflow wraps silently with Go's native integer semantics.
//
// On 32-bit platforms the caller is responsible for 8-byte alignment of
// 64-bit counters, as described in the sync/atomic bugs note.
package ctrx

import (
	"github.com/llxisdsh/ctrx/internal/opt"
)

// Int is the set of integer types the counter operations accept.
type Int = opt.Int_

// Guard is the mutual-exclusion lock paired 1:1 with a counter. It is
// only consulted by the mutex backend; the atomic backends compile it
// to a zero-sized no-op, but portable call sites should still declare
// one per shared counter so the same source builds under every backend.
// The zero value is ready to use. A Guard must not be copied after
// first use.
type Guard = opt.Guard_

// Backend reports the name of the backend compiled into the program:
// "atomic", "legacy-atomic" or "mutex".
func Backend() string {
	return opt.Backend_
}

// LockFree reports whether the compiled backend operates without
// taking the Guard.
func LockFree() bool {
	return opt.LockFree_
}

// Incr atomically adds delta to *c. It returns nothing: callers that
// need the updated value must issue a separate Get.
//
// Under the mutex backend g must be the Guard paired with c.
func Incr[T Int](c *T, delta T, g *Guard) {
	g.Lock()
	opt.AddInt(c, delta)
	g.Unlock()
}

// Decr atomically subtracts delta from *c. The subtraction happens at
// the primitive level rather than as Incr(c, -delta), so unsigned
// counter types never require signed negation. It returns nothing.
//
// Under the mutex backend g must be the Guard paired with c.
func Decr[T Int](c *T, delta T, g *Guard) {
	g.Lock()
	opt.SubInt(c, delta)
	g.Unlock()
}

// Get delivers a coherent snapshot of *c into *dst. The value is never
// torn: it is one that some serialization of the concurrent Incr/Decr
// calls would have produced. Delivering into a destination keeps every
// read lexically explicit at the call site.
//
// Under the mutex backend g must be the Guard paired with c.
func Get[T Int](c *T, dst *T, g *Guard) {
	g.Lock()
	*dst = opt.LoadInt(c)
	g.Unlock()
}
