package cteq //nolint:testpackage // testing engine internals

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestEqualGeneric(t *testing.T) {
	rng := rand.NewChaCha8([32]byte{0x03})
	for n := range 130 {
		a := make([]byte, n)
		_, _ = rng.Read(a)

		if got, want := equalGeneric(a, slices.Clone(a), 0), true; got != want {
			t.Errorf("len=%d: equalGeneric(a, a, 0) = %v, want = %v", n, got, want)
		}

		b := make([]byte, n)
		_, _ = rng.Read(b)
		if got, want := equalGeneric(a, b, 0), bytes.Equal(a, b); got != want {
			t.Errorf("len=%d: equalGeneric(a, b, 0) = %v, want = %v", n, got, want)
		}
	}
}

func TestEqualGeneric_AccumulatorHandOff(t *testing.T) {
	// A non-zero accumulator handed over by a vector engine must force a
	// false verdict even when the remainder bytes are identical.
	a := []byte{1, 2, 3}

	if got, want := equalGeneric(a, a, 1), false; got != want {
		t.Errorf("equalGeneric(a, a, 1) = %v, want = %v", got, want)
	}
	if got, want := equalGeneric(nil, nil, 1), false; got != want {
		t.Errorf("equalGeneric(nil, nil, 1) = %v, want = %v", got, want)
	}
	if got, want := equalGeneric(nil, nil, 0), true; got != want {
		t.Errorf("equalGeneric(nil, nil, 0) = %v, want = %v", got, want)
	}
}

func TestEngineAgreement(t *testing.T) {
	// The build-selected engine and the generic engine must agree for every
	// length and mismatch position across the vector/word/tail boundaries.
	for _, n := range []int{0, 1, 8, 15, 16, 17, 24, 31, 32, 33, 48, 63, 64, 65, 127, 128} {
		a := slices.Repeat([]byte{0xc3}, n)
		b := slices.Clone(a)

		if got, want := equal(a, b), equalGeneric(a, b, 0); got != want {
			t.Errorf("len=%d: equal = %v, equalGeneric = %v", n, got, want)
		}

		for i := range n {
			b[i] ^= 0x10
			if got, want := equal(a, b), equalGeneric(a, b, 0); got != want {
				t.Errorf("len=%d pos=%d: equal = %v, equalGeneric = %v", n, i, got, want)
			}
			b[i] ^= 0x10
		}
	}
}
