//go:build arm64 && !purego

package cteq

// equalAsm compares n bytes at a and b using 128-bit NEON vectors, returning
// a word that is non-zero iff any of the n bytes differ. n must be a non-zero
// multiple of 16. No branch in the routine depends on the contents of the
// inputs, and the Go compiler performs no optimization across assembly calls,
// so the whole routine acts as its own optimizer barrier.
//
//go:noescape
func equalAsm(a, b *byte, n int) uint64

func equal(a, b []byte) bool {
	var acc uint64
	if n := len(a) &^ 15; n != 0 {
		acc = equalAsm(&a[0], &b[0], n)
		a, b = a[n:], b[n:]
	}
	// Careful: the generic engine must run even when acc is already non-zero.
	return equalGeneric(a, b, acc)
}
