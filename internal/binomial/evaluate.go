package binomial

import "math/big"

// Step records one term of a stepwise evaluation.
type Step struct {
	K           int
	Coefficient *big.Int
	Power       *big.Int // x^K
	Term        *big.Int // Coefficient * Power
	Sum         *big.Int // running sum of terms 0..K
}

// Evaluation is the outcome of Evaluate. Steps[len(Steps)-1].Sum equals Result.
type Evaluation struct {
	Result *big.Int
	Steps  []Step
}

// Evaluate computes sum(coeffs[k] * x^k) term by term, keeping x^k as a
// running product instead of exponentiating for every k.
func Evaluate(coeffs []*big.Int, x *big.Int) Evaluation {
	steps := make([]Step, 0, len(coeffs))
	power := big.NewInt(1)
	sum := new(big.Int)
	for k, c := range coeffs {
		if k > 0 {
			power = new(big.Int).Mul(power, x)
		}
		term := new(big.Int).Mul(c, power)
		sum = new(big.Int).Add(sum, term)
		steps = append(steps, Step{
			K:           k,
			Coefficient: c,
			Power:       power,
			Term:        term,
			Sum:         sum,
		})
	}
	return Evaluation{Result: sum, Steps: steps}
}

// CrossCheck compares result with (x+1)^n computed by exponentiation.
// It returns the expected value and whether the two agree.
func CrossCheck(n uint64, x, result *big.Int) (*big.Int, bool) {
	base := new(big.Int).Add(x, big.NewInt(1))
	expected := new(big.Int).Exp(base, new(big.Int).SetUint64(n), nil)
	return expected, expected.Cmp(result) == 0
}
