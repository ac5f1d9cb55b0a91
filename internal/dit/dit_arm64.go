//go:build arm64 && !purego

package dit

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Supported is set if the current CPU implements FEAT_DIT. Apple silicon
// always does, but the hwcap probing behind cpu.ARM64 does not run on
// darwin, so that target is special-cased.
var Supported = cpu.ARM64.HasDIT || runtime.GOOS == "darwin" //nolint:gochecknoglobals // should only check once

// Enable sets the PSTATE.DIT bit if FEAT_DIT is implemented, and otherwise
// does nothing. The bit is not restored afterward; see the package comment.
func Enable() {
	if Supported {
		enableDIT()
	}
}

// Enabled reports whether the PSTATE.DIT bit is currently set on the calling
// core.
func Enabled() bool {
	return Supported && readDIT()&(1<<24) != 0
}

//go:noescape
func enableDIT()

//go:noescape
func readDIT() uint64
