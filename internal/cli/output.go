// Package cli writes the user-facing output of the command.
//
// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplaySaved], [DisplayCrossCheck].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatCrossCheck].
package cli

import (
	"fmt"
	"io"
	"math/big"

	"github.com/agbru/binomcalc/internal/ui"
)

// DisplayReport writes the rendered report text exactly as given.
func DisplayReport(out io.Writer, text string) error {
	_, err := io.WriteString(out, text)
	return err
}

// DisplaySaved confirms that the report was written to path.
func DisplaySaved(out io.Writer, path string) {
	fmt.Fprintf(out, "%sResults written to:%s %s%s%s\n",
		ui.ColorGreen(), ui.ColorReset(), ui.ColorCyan(), path, ui.ColorReset())
}

// FormatCrossCheck returns the verification line comparing the stepwise
// result against (x+1)^n.
//
// Parameters:
//   - n: The exponent.
//   - x: The evaluation point.
//   - expected: (x+1)^n computed by exponentiation.
//   - ok: Whether the stepwise result matched expected.
//
// Returns:
//   - string: The line, without colors or trailing newline.
func FormatCrossCheck(n uint64, x, expected *big.Int, ok bool) string {
	status := "OK"
	if !ok {
		status = "MISMATCH"
	}
	return fmt.Sprintf("Check: (%s+1)^%d = %s %s", x.String(), n, expected.String(), status)
}

// DisplayCrossCheck writes the verification line, colored by outcome.
func DisplayCrossCheck(out io.Writer, n uint64, x, expected *big.Int, ok bool) {
	color := ui.ColorGreen()
	if !ok {
		color = ui.ColorRed()
	}
	fmt.Fprintf(out, "%s%s%s\n", color, FormatCrossCheck(n, x, expected, ok), ui.ColorReset())
}
