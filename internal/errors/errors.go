package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorInput    = 2   // Indicates the input did not hold a usable decimal value.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Sentinel errors matched by the structured types below.
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrIllegalState    = errors.New("illegal cursor state")
	ErrNoSuchElement   = errors.New("no such element")
	ErrInvalidDigit    = errors.New("invalid digit")
	ErrNoValue         = errors.New("no decimal value")
)

// ConfigError represents a user configuration error, such as invalid flags or
// values.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// IndexError reports an index outside the range an operation accepts.
// It carries the offending index and the list size at the time of the call.
type IndexError struct {
	// Op is the list operation that rejected the index (e.g. "get").
	Op string
	// Index is the offending index.
	Index int
	// Size is the list size when the operation was attempted.
	Size int
}

// Error returns a message in the form "get: index 5 out of range for size 3".
func (e IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for size %d", e.Op, e.Index, e.Size)
}

// Unwrap returns ErrIndexOutOfRange.
func (e IndexError) Unwrap() error { return ErrIndexOutOfRange }

// StateError reports a cursor operation invoked in a state that does not
// permit it, such as Remove before any Next or Previous.
type StateError struct {
	Op     string
	Reason string
}

func (e StateError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", e.Op, ErrIllegalState)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrIllegalState, e.Reason)
}

// Unwrap returns ErrIllegalState.
func (e StateError) Unwrap() error { return ErrIllegalState }

// ElementError reports a cursor step past either end of the list.
type ElementError struct {
	Op string
}

func (e ElementError) Error() string { return fmt.Sprintf("%s: %s", e.Op, ErrNoSuchElement) }

// Unwrap returns ErrNoSuchElement.
func (e ElementError) Unwrap() error { return ErrNoSuchElement }

// DigitError reports a digit value that cannot be stored because it has no
// single-character rendering.
type DigitError struct {
	Digit uint8
	Max   uint8
}

func (e DigitError) Error() string {
	return fmt.Sprintf("digit %d exceeds maximum %d: %s", e.Digit, e.Max, ErrInvalidDigit)
}

// Unwrap returns ErrInvalidDigit.
func (e DigitError) Unwrap() error { return ErrInvalidDigit }

// InputError reports a source that did not yield a usable decimal value:
// a missing or empty file, or text that is not one or more ASCII digits.
type InputError struct {
	// Source is the file path, or "--value" for command-line input.
	Source string
}

func (e InputError) Error() string { return fmt.Sprintf("%s: %s", e.Source, ErrNoValue) }

// Unwrap returns ErrNoValue.
func (e InputError) Unwrap() error { return ErrNoValue }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error returned by an application run to an exit code.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	var valErr ValidationError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr):
		return ExitErrorConfig
	case errors.Is(err, ErrNoValue):
		return ExitErrorInput
	default:
		return ExitErrorGeneric
	}
}
