//go:build !ctrx_legacy_atomics && !ctrx_mutex

package opt

import (
	"sync/atomic"
	"unsafe"
)

// Backend_ names the backend compiled into the program.
const Backend_ = "atomic"

// LockFree_ reports whether the selected backend ever takes the Guard_.
const LockFree_ = true

// Guard_ is a placeholder lock. The atomic backend never consults it,
// so it is zero-sized and its methods are no-ops. A nil *Guard_ is
// valid here; portable code should still supply one per counter so the
// same call sites compile under the mutex backend.
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

// SubInt atomically subtracts delta from *addr. Subtraction is the
// two's-complement addition of -delta on the unsigned view, so it stays
// valid for unsigned counter types where negating delta would not be.
//
//go:nosplit
func SubInt[T Int_](addr *T, delta T) {
	if unsafe.Sizeof(T(0)) == 4 {
		atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), -uint32(delta))
	} else {
		atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), -uint64(delta))
	}
}

// LoadInt atomically reads *addr.
//
//go:nosplit
func LoadInt[T Int_](addr *T) T {
	if unsafe.Sizeof(T(0)) == 4 {
		return T(atomic.LoadUint32((*uint32)(unsafe.Pointer(addr))))
	}
	return T(atomic.LoadUint64((*uint64)(unsafe.Pointer(addr))))
}
