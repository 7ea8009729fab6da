package ctrx

import (
	"runtime"
	"unsafe"

	"github.com/llxisdsh/ctrx/internal/opt"
)

// stripe pads each counter out to a cache line so writers on different
// Ps do not false-share. The pad collapses to zero bytes on
// architectures where opt disables padding.
type stripe struct {
	_ [(opt.CacheLineSize_ - unsafe.Sizeof(Counter{})%opt.CacheLineSize_) % opt.CacheLineSize_ * opt.PaddingMult_]byte
	c Counter
}

// StripedCounter spreads one logical counter across per-P stripes to
// keep heavily contended increments off a single cache line. Each
// stripe is a full Counter with its own Guard, so the type works under
// every backend.
//
// Load sums the stripes: the total is exact once writers are quiescent,
// and while writers are in flight it reflects some serialization of the
// per-stripe operations rather than a single instant across stripes.
// Prefer Counter when reads must be linearizable with writes.
type StripedCounter struct {
	_       noCopy
	stripes []stripe
	mask    int
}

// NewStripedCounter returns a striped counter with one stripe per P,
// rounded up to a power of two.
func NewStripedCounter() *StripedCounter {
	n := nextPowOf2(runtime.GOMAXPROCS(0))
	return &StripedCounter{
		stripes: make([]stripe, n),
		mask:    n - 1,
	}
}

// Incr adds delta to the calling P's stripe.
func (s *StripedCounter) Incr(delta uint64) {
	s.stripes[s.idx()].c.Incr(delta)
}

// Decr subtracts delta from the calling P's stripe. The total wraps
// through zero even though an individual stripe may wrap on its own.
func (s *StripedCounter) Decr(delta uint64) {
	s.stripes[s.idx()].c.Decr(delta)
}

// Load returns the sum of all stripes.
func (s *StripedCounter) Load() uint64 {
	var sum uint64
	for i := range s.stripes {
		sum += s.stripes[i].c.Load()
	}
	return sum
}

// idx picks the stripe for the current P. The pin is released before
// the stripe is touched; a migration between the two merely lands the
// delta on a neighbour's stripe, which the sum absorbs.
//
//go:nosplit
func (s *StripedCounter) idx() int {
	pid := runtime_procPin()
	runtime_procUnpin()
	return pid & s.mask
}

// nolint:all
//
//go:linkname runtime_procPin sync.runtime_procPin
//goland:noinspection ALL
func runtime_procPin() int

// nolint:all
//
//go:linkname runtime_procUnpin sync.runtime_procUnpin
//goland:noinspection ALL
func runtime_procUnpin()
