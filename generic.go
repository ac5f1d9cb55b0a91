package cteq

import (
	"encoding/binary"

	"github.com/codahale/cteq/internal/barrier"
)

// equalGeneric compares a and b using native 64-bit words, ORing every
// difference into acc and reporting whether the final accumulator is zero.
// It does SIMD in general-purpose registers: each step XORs a word from each
// input and ORs the result into the accumulator, so acc is non-zero iff any
// byte position processed so far differed.
//
// Both the per-word XOR and the running accumulator pass through the barrier
// on every step. Barriering only the final value would not be enough: the
// compiler could otherwise prove the loop body free of side effects and fold
// it into an early-exit comparison once the accumulator becomes non-zero.
//
// The vector engines call this for trailing bytes smaller than one vector,
// handing over their partial result in acc. This is simpler and often faster
// than loading a partial vector register. Word loads are little-endian and
// carry no alignment requirement.
func equalGeneric(a, b []byte, acc uint64) bool {
	if len(a) != len(b) {
		return false
	}

	for len(a) >= 8 {
		cmp := barrier.Uint64(binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b))
		acc = barrier.Uint64(acc | cmp)
		a, b = a[8:], b[8:]
	}

	// Tail of 0..7 bytes, in 4/2/1-byte steps. The step schedule depends only
	// on the length, never on the contents.
	if len(a) >= 4 {
		cmp := barrier.Uint64(uint64(binary.LittleEndian.Uint32(a) ^ binary.LittleEndian.Uint32(b)))
		acc = barrier.Uint64(acc | cmp)
		a, b = a[4:], b[4:]
	}
	if len(a) >= 2 {
		cmp := barrier.Uint64(uint64(binary.LittleEndian.Uint16(a) ^ binary.LittleEndian.Uint16(b)))
		acc = barrier.Uint64(acc | cmp)
		a, b = a[2:], b[2:]
	}
	if len(a) >= 1 {
		cmp := barrier.Uint64(uint64(a[0] ^ b[0]))
		acc = barrier.Uint64(acc | cmp)
	}

	// The only content-dependent check, on the final accumulator. Safe because
	// the yes/no verdict is the observable output of the comparison.
	return acc == 0
}
