package engine

import (
	"errors"
	"fmt"
)

// Common engine errors
var (
	// ErrSizeLimitExceeded indicates the compiled form of a pattern is
	// larger than the configured size limit
	ErrSizeLimitExceeded = errors.New("compiled pattern exceeds size limit")

	// ErrUnsupportedConfig indicates the configuration requests a feature
	// the selected engine cannot express
	ErrUnsupportedConfig = errors.New("configuration not supported by engine")
)

// CompileError reports a pattern that failed to compile on a backend.
// Under automatic engine selection it is surfaced only after both
// backends have been tried.
type CompileError struct {
	Kind    Kind
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	return fmt.Sprintf("rematch: %s engine failed to compile %q: %v", e.Kind, e.Pattern, e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ExecError reports a per-call execution failure of the backtracking
// engine, such as an exceeded backtrack limit. It is scoped to the single
// call that failed; the engine remains usable.
type ExecError struct {
	Kind Kind
	Err  error
}

// Error implements the error interface
func (e *ExecError) Error() string {
	return fmt.Sprintf("rematch: %s engine execution failed: %v", e.Kind, e.Err)
}

// Unwrap returns the underlying error
func (e *ExecError) Unwrap() error {
	return e.Err
}
