// Package barrier hides values from the compiler.
//
// A constant-time comparison accumulates differences with XOR and OR instead
// of branching, but nothing stops an optimizer from noticing that the
// accumulator can only grow and rewriting the loop to exit at the first
// difference, reintroducing the timing leak the loop was written to avoid.
// Uint64 breaks that reasoning: the value passes through unchanged, but the
// compiler must treat the result as unknown.
//
// Three backends, selected at build time:
//
//   - On AMD64 and ARM64, a no-op assembly routine. The compiler performs no
//     optimization across assembly calls, so this costs one call and nothing
//     else.
//   - On other architectures, a no-inline Go identity function. The compiler
//     performs no interprocedural value propagation through no-inline calls.
//   - With the purego build tag, a round-trip through an atomic cell, which
//     the Go memory model forbids eliding. This is the weakest backend but
//     the only one available to verification tools that reject assembly.
package barrier

// Uint64 returns x unchanged while preventing the compiler from using
// anything it knows about x to reason about the result. It must be applied
// after every accumulation step of a constant-time loop, not only to the
// final result; hiding only the final value leaves the intermediate steps
// free to be folded into a short-circuiting comparison.
func Uint64(x uint64) uint64 {
	countStep()
	return hideUint64(x)
}
