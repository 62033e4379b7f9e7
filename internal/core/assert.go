package core

import "fmt"

// Assert reports a broken engine invariant. In builds with the debug tag it
// panics; otherwise it returns false so the caller can clamp or skip.
//
//	if !core.Assert(amount >= 0, "negative damage %d", amount) {
//		amount = 0
//	}
func Assert(cond bool, format string, args ...any) bool {
	if cond {
		return true
	}
	if debugAssertions {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
	return false
}
