package ctrx

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// nextPowOf2 rounds n up to the next power of two, minimum 1.
func nextPowOf2(n int) int {
	v := 1
	for v < n {
		v <<= 1
	}
	return v
}
