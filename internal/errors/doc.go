// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (usage, validation,
// configuration, verification) and for mapping each class to the exit status
// the command reports to the operating system.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Error types that carry a cause implement Unwrap() to support errors.Is() and
// errors.As().
package apperrors
