package labelkit

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrCancelled indicates the user cancelled a picker (pressed back, etc.).
	// This is a normal flow control error, not an infrastructure failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrNamesNotInitialised is reported when a color source is asked for
	// its labels before it has loaded them. Rebuilds treat it as transient.
	ErrNamesNotInitialised = errors.New("color source names are not initialised")

	// ErrNoColorSource indicates an operation needs a color source but the
	// widget has none.
	ErrNoColorSource = errors.New("no color source set")
)

// InfrastructureError represents a framework-level error that indicates
// something is wrong with a front-end itself (rendering failed, SDL crashed,
// font missing, etc.). These errors are typically fatal or require
// framework-level recovery.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "render", "load_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("labelkit: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("labelkit: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
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
