//go:build !arm64 || purego

package dit

// Supported is false: there is no data-independent-timing mode to manage on
// this target.
var Supported = false //nolint:gochecknoglobals // mirrors the arm64 capability check

func Enable() {}

func Enabled() bool { return false }
