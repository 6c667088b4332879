package binomial

import (
	"math/big"
	"strconv"
	"strings"
)

// FormatPolynomial renders sum(coeffs[k] * x^k) in ascending powers:
// the constant term bare, then "c*x", then "c*x^k", joined by " + ".
// Coefficients are printed as they are, zero included.
func FormatPolynomial(coeffs []*big.Int) string {
	var sb strings.Builder
	for k, c := range coeffs {
		if k > 0 {
			sb.WriteString(" + ")
		}
		sb.WriteString(c.String())
		switch {
		case k == 1:
			sb.WriteString("*x")
		case k >= 2:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(k))
		}
	}
	return sb.String()
}
