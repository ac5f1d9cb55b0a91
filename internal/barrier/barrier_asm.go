//go:build (amd64 || arm64) && !purego

package barrier

// hideUint64 is a no-op assembly routine: the value flows through an explicit
// data dependency the compiler cannot see through.
//
//go:noescape
func hideUint64(x uint64) uint64
