// Package cteq compares byte sequences in constant time.
//
// A naive comparison returns at the first mismatched byte, leaking the length
// of the matching prefix through timing. When the compared values are secret
// (MAC tags, password digests, session tokens), that leak lets an attacker
// recover the expected value one byte at a time. Equal and the fixed-size
// variants run in time that depends only on the length of the inputs, never
// on their contents or on where they first differ.
//
// On AMD64 and ARM64 architectures, cteq compares 16 bytes at a time in SSE2
// or NEON registers. On other architectures, or if the purego build tag is
// used, it compares native 64-bit words instead. On ARM64 processors that
// implement FEAT_DIT, the data-independent-timing mode of the processor is
// enabled before the comparison runs.
//
// Lengths are assumed to be public. Calling Equal with slices of different
// lengths returns false without examining any bytes, in non-constant time.
package cteq

import "github.com/codahale/cteq/internal/dit"

// Equal reports whether a and b have the same contents, taking time dependent
// only on their lengths. If the lengths differ, it returns false immediately.
//
// The returned verdict is the entire point of calling Equal; a caller that
// discards it has silently skipped an authentication check.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	dit.Enable()
	return equal(a, b)
}

// Equal16 reports whether two 16-byte values (e.g. Poly1305 or GCM tags) have
// the same contents, in constant time.
func Equal16(a, b *[16]byte) bool {
	dit.Enable()
	return equal(a[:], b[:])
}

// Equal32 reports whether two 32-byte values (e.g. SHA-256 digests or
// HMAC-SHA-256 tags) have the same contents, in constant time.
func Equal32(a, b *[32]byte) bool {
	dit.Enable()
	return equal(a[:], b[:])
}

// Equal64 reports whether two 64-byte values (e.g. SHA-512 digests) have the
// same contents, in constant time.
func Equal64(a, b *[64]byte) bool {
	dit.Enable()
	return equal(a[:], b[:])
}
