//go:build countsteps

package barrier

import "sync/atomic"

var steps atomic.Uint64

func countStep() {
	steps.Add(1)
}

// Steps returns the number of barrier invocations since the last call to
// ResetSteps. A constant-time loop must invoke the barrier a number of times
// that depends only on the input length, so harnesses compare this count
// across inputs that differ only in content.
func Steps() uint64 {
	return steps.Load()
}

// ResetSteps zeroes the invocation counter.
func ResetSteps() {
	steps.Store(0)
}
