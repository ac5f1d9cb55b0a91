//go:build (!amd64 && !arm64) || purego

package cteq

func equal(a, b []byte) bool {
	return equalGeneric(a, b, 0)
}
