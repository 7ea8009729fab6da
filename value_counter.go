package ctrx

// Counter is a 64-bit counter that owns its storage and, under the
// mutex backend, its Guard. It is the convenient form of the package
// operations for callers that do not manage the storage themselves.
//
// The zero value is ready to use. A Counter must not be copied after
// first use. On 32-bit platforms it must be 8-byte aligned (first word
// of an allocated struct is sufficient).
type Counter struct {
	_ noCopy
	g Guard
	v uint64
}

// Incr adds delta to the counter.
func (c *Counter) Incr(delta uint64) {
	Incr(&c.v, delta, &c.g)
}

// Decr subtracts delta from the counter, wrapping through zero.
func (c *Counter) Decr(delta uint64) {
	Decr(&c.v, delta, &c.g)
}

// Load returns a snapshot of the counter.
func (c *Counter) Load() (v uint64) {
	Get(&c.v, &v, &c.g)
	return v
}

// Counter32 is the 32-bit variant of Counter, for counters that are
// embedded in bulk or must stay narrow. Same contract, no alignment
// caveat.
type Counter32 struct {
	_ noCopy
	g Guard
	v uint32
}

// Incr adds delta to the counter.
func (c *Counter32) Incr(delta uint32) {
	Incr(&c.v, delta, &c.g)
}

// Decr subtracts delta from the counter, wrapping through zero.
func (c *Counter32) Decr(delta uint32) {
	Decr(&c.v, delta, &c.g)
}

// Load returns a snapshot of the counter.
func (c *Counter32) Load() (v uint32) {
	Get(&c.v, &v, &c.g)
	return v
}
