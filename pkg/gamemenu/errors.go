package gamemenu

import (
	"errors"
	"fmt"
)

// ErrCancelled indicates the user dismissed a menu with the cancel button.
// This is a normal flow control error, not an infrastructure failure.
var ErrCancelled = errors.New("menu cancelled by user")

// InfrastructureError represents a failure of the framework itself
// (SDL init failed, font missing, texture creation failed). These errors
// are typically fatal for the application.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "init", "load_config")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gamemenu: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("gamemenu: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
