package binomial

import (
	"fmt"
	"math/big"
)

// Coefficients returns [C(n,0), ..., C(n,n)] using the multiplicative
// recurrence. Each element is a distinct *big.Int owned by the caller.
func Coefficients(n uint64) []*big.Int {
	coeffs := make([]*big.Int, 0, n+1)
	c := big.NewInt(1)
	coeffs = append(coeffs, new(big.Int).Set(c))

	num, den, rem := new(big.Int), new(big.Int), new(big.Int)
	for k := uint64(1); k <= n; k++ {
		num.SetUint64(n - k + 1)
		den.SetUint64(k)
		c.Mul(c, num)
		c.QuoRem(c, den, rem)
		if rem.Sign() != 0 {
			panic(fmt.Sprintf("binomial: inexact division at n=%d, k=%d", n, k))
		}
		coeffs = append(coeffs, new(big.Int).Set(c))
	}
	return coeffs
}

// PascalRow returns row n of Pascal's triangle, built additively in place.
// It needs O(n^2) additions and serves as an independent oracle for
// Coefficients.
func PascalRow(n uint64) []*big.Int {
	row := make([]*big.Int, 1, n+1)
	row[0] = big.NewInt(1)
	for i := uint64(1); i <= n; i++ {
		row = append(row, big.NewInt(1))
		for j := i - 1; j > 0; j-- {
			row[j].Add(row[j], row[j-1])
		}
	}
	return row
}
