package errors

import (
	"fmt"
	"strings"
)

// ValidationError collects multiple validation failures into one error.
// Used by outline loading where reporting every problem at once beats
// failing on the first.
type ValidationError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Problems[0]
	default:
		return fmt.Sprintf("validation failed (%d problems):\n  - %s",
			len(e.Problems), strings.Join(e.Problems, "\n  - "))
	}
}

// Add records a formatted validation problem.
func (e *ValidationError) Add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

// HasProblems reports whether any problems were recorded.
func (e *ValidationError) HasProblems() bool {
	return len(e.Problems) > 0
}

// AsError returns the ValidationError wrapped with ErrCodeInvalidOutline
// if problems were recorded, or nil otherwise.
func (e *ValidationError) AsError() error {
	if !e.HasProblems() {
		return nil
	}
	return Wrap(ErrCodeInvalidOutline, e, "outline validation failed")
}
