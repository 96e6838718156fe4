//go:build solverdebug

package solver

import "fmt"

// debugChecks gates every debugAssert call site. It is a compile-time
// constant so the `if debugChecks { ... }` blocks around each call,
// including their argument expressions, are eliminated entirely when this
// file isn't built — invariant checks cost nothing in a shipped binary.
// Build with `go test -tags solverdebug ./...` to turn them on.
const debugChecks = true

// debugAssert panics if cond is false. Never call this directly; always
// guard the call with `if debugChecks { ... }` so release builds don't pay
// for evaluating cond or the format arguments.
func debugAssert(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("solver: invariant violated: " + fmt.Sprintf(format, args...))
	}
}
