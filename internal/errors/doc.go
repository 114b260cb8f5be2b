// Package apperrors defines the structured error types shared by the digit
// list engine, the numeric adapter and the command-line front end.
//
// Two families exist side by side. Contract violations on indexed access
// (IndexError, StateError, ElementError, DigitError) are always returned to
// the caller. Malformed numeric input never produces an error: the numeric
// adapter degrades to an empty or zero-valued result instead.
//
// Every type that wraps a sentinel implements Unwrap, so callers can match
// either the concrete type with errors.As or the sentinel with errors.Is.
package apperrors
