package report

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/agbru/binomcalc/internal/binomial"
)

func newReport(n uint64, x int64, timings []Timing) Report {
	coeffs := binomial.Coefficients(n)
	xv := big.NewInt(x)
	return Report{
		N:          n,
		X:          xv,
		Polynomial: binomial.FormatPolynomial(coeffs),
		Evaluation: binomial.Evaluate(coeffs, xv),
		Timings:    timings,
	}
}

func TestRender_FiveAtTwo(t *testing.T) {
	t.Parallel()
	r := newReport(5, 2, []Timing{
		{StageGenerate, 12 * time.Microsecond},
		{StageFormat, 3 * time.Microsecond},
		{StageEvaluate, 1250 * time.Microsecond},
	})

	want := `Polynomial (x+1)^5 as sum of coefficients * x^k:
1 + 5*x + 10*x^2 + 10*x^3 + 5*x^4 + 1*x^5

Evaluation for x = 2:
k=0: coeff=1 * x^0(1) = 1  => sum=1
k=1: coeff=5 * x^1(2) = 10  => sum=11
k=2: coeff=10 * x^2(4) = 40  => sum=51
k=3: coeff=10 * x^3(8) = 80  => sum=131
k=4: coeff=5 * x^4(16) = 80  => sum=211
k=5: coeff=1 * x^5(32) = 32  => sum=243

Final result f(2) = 243

Times (ms):
Coefficient generation: 0.012 ms
Polynomial string construction: 0.003 ms
Stepwise evaluation: 1.250 ms
`
	if got := r.Render(); got != want {
		t.Errorf("Render() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRender_ZeroDegree(t *testing.T) {
	t.Parallel()
	got := newReport(0, -4, nil).Render()
	for _, want := range []string{
		"Polynomial (x+1)^0 as sum of coefficients * x^k:\n1\n\n",
		"Evaluation for x = -4:\nk=0: coeff=1 * x^0(1) = 1  => sum=1\n",
		"Final result f(-4) = 1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report should contain %q, got:\n%s", want, got)
		}
	}
}

func TestRender_NegativeX(t *testing.T) {
	t.Parallel()
	got := newReport(3, -3, nil).Render()
	for _, want := range []string{
		"k=1: coeff=3 * x^1(-3) = -9  => sum=-8\n",
		"k=3: coeff=1 * x^3(-27) = -27  => sum=-8\n",
		"Final result f(-3) = -8\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report should contain %q, got:\n%s", want, got)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()
	timings := []Timing{{StageGenerate, time.Millisecond}}
	if newReport(12, 7, timings).Render() != newReport(12, 7, timings).Render() {
		t.Error("rendering the same inputs twice should give identical text")
	}
}

func TestStageDescription(t *testing.T) {
	t.Parallel()
	if len(Stages) != 3 {
		t.Fatalf("expected three stages, got %d", len(Stages))
	}
	seen := map[string]bool{}
	for _, s := range Stages {
		d := s.Description()
		if d == string(s) || seen[d] {
			t.Errorf("stage %q has no distinct description", s)
		}
		seen[d] = true
	}
	if Stage("other").Description() != "other" {
		t.Error("unknown stages should describe themselves by name")
	}
}
