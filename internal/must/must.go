// Package must holds assertions for invariants of the branch graph
// and the store. A failed assertion is a bug in pq, so it panics.
package must

import (
	"fmt"
	"strings"
)

// Bef panics with the formatted message unless cond holds.
func Bef(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Errorf(format, args...))
}

// BeEqualf panics unless got == want.
func BeEqualf[T comparable](got, want T, format string, args ...any) {
	if got == want {
		return
	}
	panic(fmt.Errorf("%w: got %v, want %v", fmt.Errorf(format, args...), got, want))
}

// NotBeBlankf panics if s has no non-space characters.
func NotBeBlankf(s string, format string, args ...any) {
	Bef(strings.TrimSpace(s) != "", format, args...)
}
