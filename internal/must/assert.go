package must

import (
	"log/slog"
)

// Assert panics when cond is false. It guards invariants that validated
// inputs can never break.
func Assert(cond bool, failMessage string) {
	if !cond {
		slog.Error(failMessage)
		panic(failMessage)
	}
}
