package opt

// Int_ is the set of integer types the counter primitives operate on.
// Every member is 4 or 8 bytes wide, so the backends can dispatch on
// unsafe.Sizeof alone and reinterpret the storage as uint32/uint64.
type Int_ interface {
	~int32 | ~uint32 | ~int64 | ~uint64 | ~int | ~uint | ~uintptr
}
