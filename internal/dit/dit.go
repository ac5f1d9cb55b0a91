// Package dit controls the ARM64 data-independent-timing processor mode.
//
// On ARM64 cores implementing FEAT_DIT, some of the instructions used by the
// comparison engines are only guaranteed to run in constant time while the
// PSTATE.DIT bit is set. Enable sets that bit before a comparison runs. On
// every other architecture, and under the purego build tag, the package is a
// no-op.
//
// PSTATE.DIT is per-core hardware state, not process memory: concurrent
// calls on different cores are independent, and enabling the bit redundantly
// on the same core is harmless. The bit is deliberately not restored after a
// comparison. Restoring it would require the goroutine to stay on one core
// for a save/restore pair, which Go does not guarantee, and a DIT bit left
// set only strengthens the timing behavior of subsequent code.
package dit
