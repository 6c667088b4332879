// Package apperrors provides tests for application error types.
package apperrors

import (
	"errors"
	"math/big"
	"testing"
)

func TestUsageError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error returns message",
			err:      UsageError{Message: "missing x"},
			expected: "missing x",
		},
		{
			name:     "Empty message falls back to generic text",
			err:      UsageError{},
			expected: "invalid usage",
		},
		{
			name:     "NewUsageError creates formatted error",
			err:      NewUsageError("expected %d positional arguments, got %d", 2, 1),
			expected: "expected 2 positional arguments, got 1",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var usageErr UsageError
			if !errors.As(tt.err, &usageErr) {
				t.Error("expected error to be UsageError type")
			}
		})
	}
}

func TestConfigError(t *testing.T) {
	t.Parallel()
	err := NewConfigError("unknown backend %q", "fft")
	if err.Error() != `unknown backend "fft"` {
		t.Errorf("unexpected message %q", err.Error())
	}
	var configErr ConfigError
	if !errors.As(err, &configErr) {
		t.Error("expected error to be ConfigError type")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ValidationError
		expected string
		sentence string
	}{
		{
			name:     "n must be non-negative",
			err:      ValidationError{Field: "n", Message: "must be a non-negative integer"},
			expected: `validation error for "n": must be a non-negative integer`,
			sentence: "n must be a non-negative integer",
		},
		{
			name:     "x must be an integer",
			err:      ValidationError{Field: "x", Message: "must be an integer"},
			expected: `validation error for "x": must be an integer`,
			sentence: "x must be an integer",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error = tt.err
			if err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, err.Error())
			}
			if got := tt.err.Sentence(); got != tt.sentence {
				t.Errorf("Sentence() = %q, want %q", got, tt.sentence)
			}
		})
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{N: 5, X: big.NewInt(2), Got: big.NewInt(242), Expected: big.NewInt(243)}
	want := "evaluation mismatch for n=5, x=2: got 242, expected 243"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		expectNil   bool
	}{
		{
			name:        "wraps error with context",
			original:    errors.New("permission denied"),
			format:      "failed to create output file",
			expectedMsg: "failed to create output file: permission denied",
		},
		{
			name:      "returns nil for nil error",
			original:  nil,
			format:    "some context",
			expectNil: true,
		},
		{
			name:        "supports format arguments",
			original:    errors.New("no space left on device"),
			format:      "writing %s",
			args:        []any{"results_n100.txt"},
			expectedMsg: "writing results_n100.txt: no space left on device",
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)

			if tt.expectNil {
				if wrapped != nil {
					t.Error("WrapError(nil, ...) should return nil")
				}
				return
			}
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if !errors.Is(wrapped, tt.original) {
				t.Error("wrapped error should preserve the original in the chain")
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"usage error", UsageError{}, ExitErrorUsage},
		{"validation error", ValidationError{Field: "n"}, ExitErrorValidation},
		{"wrapped validation error", WrapError(ValidationError{Field: "n"}, "parsing"), ExitErrorValidation},
		{"config error", ConfigError{Message: "bad"}, ExitErrorConfig},
		{"mismatch error", MismatchError{X: big.NewInt(0), Got: big.NewInt(0), Expected: big.NewInt(1)}, ExitErrorMismatch},
		{"unknown error", errors.New("flag provided but not defined: -z"), ExitErrorUsage},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":         ExitSuccess,
		"ExitErrorUsage":      ExitErrorUsage,
		"ExitErrorValidation": ExitErrorValidation,
		"ExitErrorMismatch":   ExitErrorMismatch,
		"ExitErrorConfig":     ExitErrorConfig,
	}

	if ExitErrorUsage != 1 || ExitErrorValidation != 2 {
		t.Errorf("usage/validation codes must be 1 and 2, got %d and %d", ExitErrorUsage, ExitErrorValidation)
	}

	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
