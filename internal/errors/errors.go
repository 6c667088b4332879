package apperrors

import (
	"errors"
	"fmt"
	"math/big"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess         = 0 // Indicates successful execution.
	ExitErrorUsage      = 1 // Indicates missing positional arguments or a malformed invocation.
	ExitErrorValidation = 2 // Indicates that n is not a non-negative integer.
	ExitErrorMismatch   = 3 // Indicates that the evaluation disagreed with (x+1)^n.
	ExitErrorConfig     = 4 // Indicates a configuration error.
)

// UsageError reports an invocation that cannot be interpreted, such as too few
// positional arguments or an unknown flag.
type UsageError struct {
	// Message explains what is wrong with the invocation. It may be empty when
	// the usage text alone is enough.
	Message string
	// Shown is true when the usage text was already written (the flag package
	// does this itself on parse errors).
	Shown bool
}

// Error returns the error message for a UsageError.
func (e UsageError) Error() string {
	if e.Message == "" {
		return "invalid usage"
	}
	return e.Message
}

// NewUsageError creates a new UsageError with a formatted message.
func NewUsageError(format string, a ...any) error {
	return UsageError{Message: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as an unknown backend
// or an unparsable log level. It indicates that the application cannot proceed
// due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
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

// Sentence renders the failure the way it is shown to users,
// e.g. "n must be a non-negative integer".
func (e ValidationError) Sentence() string {
	return e.Field + " " + e.Message
}

// MismatchError is returned when the stepwise evaluation of the expanded
// polynomial does not agree with (x+1)^n computed by exponentiation.
// It always indicates a defect, never bad input.
type MismatchError struct {
	N        uint64
	X        *big.Int
	Got      *big.Int
	Expected *big.Int
}

// Error returns a formatted message describing the mismatch.
func (e MismatchError) Error() string {
	return fmt.Sprintf("evaluation mismatch for n=%d, x=%s: got %s, expected %s",
		e.N, e.X, e.Got, e.Expected)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// ExitCode maps an error to the exit status of the process.
// A nil error maps to ExitSuccess; unknown errors are treated as usage errors
// since every failure before computation starts is caused by the invocation.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var (
		validationErr ValidationError
		configErr     ConfigError
		mismatchErr   MismatchError
	)
	switch {
	case errors.As(err, &validationErr):
		return ExitErrorValidation
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &mismatchErr):
		return ExitErrorMismatch
	default:
		return ExitErrorUsage
	}
}
