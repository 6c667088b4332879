package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/agbru/binomcalc/internal/config"
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// HandleStartupError reports an error returned by New and returns the exit
// code for it. Usage text goes to out; diagnostics go to errOut.
func HandleStartupError(err error, out, errOut io.Writer, programName string) int {
	if err == nil {
		return apperrors.ExitSuccess
	}
	if IsHelpError(err) {
		return apperrors.ExitSuccess
	}

	var (
		usageErr      apperrors.UsageError
		validationErr apperrors.ValidationError
	)
	switch {
	case errors.As(err, &usageErr):
		if usageErr.Shown {
			break
		}
		if usageErr.Message != "" {
			fmt.Fprintln(errOut, usageErr.Message)
		}
		config.Usage(out, programName)
	case errors.As(err, &validationErr):
		fmt.Fprintln(errOut, validationErr.Sentence())
	default:
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return apperrors.ExitCode(err)
}
