//go:build !solverdebug

package solver

// debugChecks is false in a normal build; see debug.go for the
// solverdebug-tagged version. Every debugAssert call site is guarded by
// `if debugChecks { ... }`, so the compiler drops the guarded block
// (including its argument expressions) entirely in this build.
const debugChecks = false

func debugAssert(cond bool, format string, args ...interface{}) {}
