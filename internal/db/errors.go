// Package db provides error types for database operations.
package db

import (
	"errors"
	"fmt"
)

// Sentinel errors for database operations.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrPolicyViolation indicates a statement was rejected by the
	// read-only gate before reaching the database.
	ErrPolicyViolation = errors.New("only SELECT statements are allowed")

	// ErrExecution indicates the database rejected the statement
	// (syntax error, unknown column, and so on).
	ErrExecution = errors.New("sql execution error")
)

// wrapExecutionError wraps a database-level error with ErrExecution,
// preserving the engine's original message.
func wrapExecutionError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrExecution, err)
}
