//go:build ctrx_legacy_atomics && !ctrx_mutex

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Backend_ names the backend compiled into the program.
// The legacy-atomic backend is force-selected via the
// ctrx_legacy_atomics build tag. It models atomic families that offer
// fetch-and-add but no dedicated load: snapshots are taken by adding
// zero. Use: go build -tags=ctrx_legacy_atomics
const Backend_ = "legacy-atomic"

// LockFree_ reports whether the selected backend ever takes the Guard_.
const LockFree_ = true

// Guard_ is a placeholder lock. The legacy-atomic backend never
// consults it, so it is zero-sized and its methods are no-ops.
type Guard_ struct{}

// Lock is a no-op.
//
//go:nosplit
func (*Guard_) Lock() {}

// Unlock is a no-op.
//
//go:nosplit
func (*Guard_) Unlock() {}

// AddInt atomically adds delta to *addr. Only single-variable coherence
// is promised; no ordering is implied for other memory locations.
//
//go:nosplit
func AddInt[T Int_](addr *T, delta T) {
	if unsafe.Sizeof(T(0)) == 4 {
		atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), uint32(delta))
	} else {
		atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), uint64(delta))
	}
}

// SubInt atomically subtracts delta from *addr via two's-complement
// addition of -delta on the unsigned view.
//
//go:nosplit
func SubInt[T Int_](addr *T, delta T) {
	if unsafe.Sizeof(T(0)) == 4 {
		atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), -uint32(delta))
	} else {
		atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), -uint64(delta))
	}
}

// LoadInt reads *addr with an add-and-fetch of zero, the portable
// equivalent of an atomic load for families without one. Observably
// identical to a pure load; the read-modify-write cost is the price of
// the legacy family.
//
//go:nosplit
func LoadInt[T Int_](addr *T) T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), 0))
	}
	return T(atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), 0))
}
