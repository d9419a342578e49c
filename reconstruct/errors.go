package reconstruct

import (
	"errors"
	"fmt"
)

var (
	// ErrNewickDecode is the sentinel behind every *DecodeError.
	ErrNewickDecode = errors.New("reconstruct: newick cannot be decoded")

	// ErrBadLeafCount indicates a leaf count below one.
	ErrBadLeafCount = errors.New("reconstruct: leaf count must be positive")
)

// decodeHint is appended to every DecodeError message.
const decodeHint = "are the Newick leaves integers (and not taxa)? " +
	"otherwise the tree might be unrooted or non-binary"

// DecodeError reports where the cherry-collapsing loop stopped.
type DecodeError struct {
	Reason    string // what went wrong, e.g. "no cherry found"
	Iteration int    // 0-based loop step; -1 for the final text check
	Diagnosis error  // optional topology check result (newick.ErrUnrooted, ...)
}

// Error implements error.
func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("reconstruct: %s", e.Reason)
	if e.Iteration >= 0 {
		msg = fmt.Sprintf("%s (step %d)", msg, e.Iteration)
	}
	if e.Diagnosis != nil {
		return fmt.Sprintf("%s: %v", msg, e.Diagnosis)
	}

	return msg + ": " + decodeHint
}

// Unwrap exposes ErrNewickDecode and, when set, the diagnosis.
func (e *DecodeError) Unwrap() []error {
	if e.Diagnosis == nil {
		return []error{ErrNewickDecode}
	}
	return []error{ErrNewickDecode, e.Diagnosis}
}

func decodeErrorf(step int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...), Iteration: step}
}
