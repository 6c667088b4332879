//go:build gmp

// This file provides a GMP-based coefficient generator, compiled only with
// the "gmp" build tag (go build -tags=gmp) since it needs libgmp through cgo.

package binomial

import (
	"fmt"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterBackend("gmp", func() Backend { return NewBackendFunc("gmp", gmpCoefficients) })
}

// gmpCoefficients runs the multiplicative recurrence on gmp.Int values and
// converts each coefficient to math/big for the rest of the pipeline.
func gmpCoefficients(n uint64) []*big.Int {
	coeffs := make([]*big.Int, 0, n+1)
	c := gmp.NewInt(1)
	coeffs = append(coeffs, gmpToStdBigInt(c))

	num, den, rem := gmp.NewInt(0), gmp.NewInt(0), gmp.NewInt(0)
	for k := uint64(1); k <= n; k++ {
		num.SetUint64(n - k + 1)
		den.SetUint64(k)
		c.Mul(c, num)
		c.QuoRem(c, den, rem)
		if rem.Sign() != 0 {
			panic(fmt.Sprintf("binomial: inexact division at n=%d, k=%d", n, k))
		}
		coeffs = append(coeffs, gmpToStdBigInt(c))
	}
	return coeffs
}

// gmpToStdBigInt converts a gmp.Int to a standard library big.Int.
func gmpToStdBigInt(g *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(g.Bytes())
}
