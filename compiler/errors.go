package compiler

import (
	"fmt"

	"github.com/coregx/mininfa/status"
)

// CompileError reports a failed compilation: the status classifying the
// failure and the cursor offset at which it was detected. This mirrors
// the teacher's wrapping error types (nfa.CompileError, nfa.BuildError)
// that carry a stable sentinel plus positional context.
type CompileError struct {
	Status status.Status
	Offset int
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("mininfa: %s at offset %d", e.Status, e.Offset)
}

// Unwrap lets callers match a stable sentinel with errors.Is, e.g.
// errors.Is(err, status.ErrUnorderedRange).
func (e *CompileError) Unwrap() error {
	return e.Status.Err()
}
