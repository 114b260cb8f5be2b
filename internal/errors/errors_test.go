package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("base %d out of range for --%s", 40, "base"),
			expected: "base 40 out of range for --base",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := error(ValidationError{Field: "base", Message: "must be between 2 and 36"})
	want := `validation error for "base": must be between 2 and 36`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	var validationErr ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatal("expected error to be ValidationError type")
	}
	if validationErr.Field != "base" {
		t.Errorf("expected Field %q, got %q", "base", validationErr.Field)
	}
}

func TestIndexError(t *testing.T) {
	t.Parallel()
	err := error(IndexError{Op: "get", Index: 3, Size: 3})

	if got, want := err.Error(), "get: index 3 out of range for size 3"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("errors.Is should match ErrIndexOutOfRange")
	}

	wrapped := fmt.Errorf("while editing: %w", err)
	var idxErr IndexError
	if !errors.As(wrapped, &idxErr) {
		t.Fatal("errors.As should find IndexError through wrapping")
	}
	if idxErr.Index != 3 || idxErr.Size != 3 {
		t.Errorf("unexpected fields: %+v", idxErr)
	}
}

func TestCursorErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "state error without reason",
			err:      StateError{Op: "remove"},
			sentinel: ErrIllegalState,
			expected: "remove: illegal cursor state",
		},
		{
			name:     "state error with reason",
			err:      StateError{Op: "next", Reason: "list modified"},
			sentinel: ErrIllegalState,
			expected: "next: illegal cursor state: list modified",
		},
		{
			name:     "element error",
			err:      ElementError{Op: "previous"},
			sentinel: ErrNoSuchElement,
			expected: "previous: no such element",
		},
		{
			name:     "digit error",
			err:      DigitError{Digit: 40, Max: 35},
			sentinel: ErrInvalidDigit,
			expected: "digit 40 exceeds maximum 35: invalid digit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is should match %v", tt.sentinel)
			}
		})
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	base := errors.New("disk full")
	err := WrapError(base, "save %s", "out.txt")
	if got, want := err.Error(), "save out.txt: disk full"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match its cause")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	if !IsContextError(context.Canceled) {
		t.Error("context.Canceled should be a context error")
	}
	if !IsContextError(fmt.Errorf("batch: %w", context.DeadlineExceeded)) {
		t.Error("wrapped DeadlineExceeded should be a context error")
	}
	if IsContextError(errors.New("other")) {
		t.Error("plain error should not be a context error")
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "base"}, ExitErrorConfig},
		{"input", InputError{Source: "a.txt"}, ExitErrorInput},
		{"wrapped input", WrapError(InputError{Source: "--value"}, "batch"), ExitErrorInput},
		{"other", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestInputError(t *testing.T) {
	t.Parallel()
	err := InputError{Source: "in/value.txt"}
	if got, want := err.Error(), "in/value.txt: no decimal value"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNoValue) {
		t.Error("InputError should unwrap to ErrNoValue")
	}
}
