//go:build purego

package barrier

import "sync/atomic"

// hideUint64 round-trips x through an atomic cell. Atomic accesses are
// synchronization operations under the Go memory model and cannot be elided
// or reordered with the surrounding accumulation steps.
//
//go:noinline
func hideUint64(x uint64) uint64 {
	var cell atomic.Uint64
	cell.Store(x)
	return cell.Load()
}
