//go:build ctrx_mutex

package opt

import (
	"sync"
)

// Backend_ names the backend compiled into the program.
// The mutex backend is the universal fallback, force-selected via the
// ctrx_mutex build tag. Use: go build -tags=ctrx_mutex
const Backend_ = "mutex"

// LockFree_ reports whether the selected backend ever takes the Guard_.
const LockFree_ = false

// Guard_ is the mutual-exclusion lock paired 1:1 with a counter. Under
// this backend every access to a shared counter must hold it; there is
// no other safe access path. A Guard_ must never be shared by two
// counters or held across unrelated operations.
type Guard_ struct {
	sync.Mutex
}

// AddInt adds delta to *addr. The caller must hold the counter's Guard_.
//
//go:nosplit
func AddInt[T Int_](addr *T, delta T) {
	*addr += delta
}

// SubInt subtracts delta from *addr. The caller must hold the counter's
// Guard_.
//
//go:nosplit
func SubInt[T Int_](addr *T, delta T) {
	*addr -= delta
}

// LoadInt reads *addr. The caller must hold the counter's Guard_.
//
//go:nosplit
func LoadInt[T Int_](addr *T) T {
	return *addr
}
