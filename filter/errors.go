package filter

import (
	"fmt"
)

// Error types for filter operations
type (
	// CompilationError indicates a filter expression could not be compiled
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a compiled filter failed against a row
	EvaluationError struct {
		Expression string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error {
	return e.Err
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error in '%s': %v", e.Expression, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
