// Command generate-golden writes the reference reports used by the app
// tests. Coefficients come from math/big's Binomial and powers from Exp, so
// the files are independent of the code under test. Timings are written as
// zero; tests mask measured durations before comparing.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/logging"
	"github.com/agbru/binomcalc/internal/report"
)

type goldenCase struct {
	Name string
	N    uint64
	X    int64
}

var cases = []goldenCase{
	{"n5_x2", 5, 2},
	{"n0_x7", 0, 7},
	{"n3_xneg3", 3, -3},
	{"n4_x0", 4, 0},
	{"n12_x10", 12, 10},
}

// binomialRow returns C(n,0)..C(n,n) computed independently of the
// recurrence under test.
func binomialRow(n uint64) []*big.Int {
	row := make([]*big.Int, n+1)
	for k := uint64(0); k <= n; k++ {
		row[k] = new(big.Int).Binomial(int64(n), int64(k))
	}
	return row
}

// oracleEvaluation builds the step records with a fresh exponentiation per
// term instead of an incremental power.
func oracleEvaluation(coeffs []*big.Int, x *big.Int) binomial.Evaluation {
	sum := new(big.Int)
	steps := make([]binomial.Step, len(coeffs))
	for k, c := range coeffs {
		power := new(big.Int).Exp(x, big.NewInt(int64(k)), nil)
		term := new(big.Int).Mul(c, power)
		sum.Add(sum, term)
		steps[k] = binomial.Step{
			K:           k,
			Coefficient: new(big.Int).Set(c),
			Power:       power,
			Term:        term,
			Sum:         new(big.Int).Set(sum),
		}
	}
	return binomial.Evaluation{Result: sum, Steps: steps}
}

func render(c goldenCase) string {
	coeffs := binomialRow(c.N)
	x := big.NewInt(c.X)
	timings := make([]report.Timing, 0, len(report.Stages))
	for _, s := range report.Stages {
		timings = append(timings, report.Timing{Stage: s})
	}
	return report.Report{
		N:          c.N,
		X:          x,
		Polynomial: binomial.FormatPolynomial(coeffs),
		Evaluation: oracleEvaluation(coeffs, x),
		Timings:    timings,
	}.Render()
}

func run(ctx context.Context, dir string, writer report.Writer, log logging.Logger) error {
	g, _ := errgroup.WithContext(ctx)
	for _, c := range cases {
		c := c
		g.Go(func() error {
			path := filepath.Join(dir, c.Name+".golden")
			if err := writer.WriteReport(path, []byte(render(c))); err != nil {
				return fmt.Errorf("%s: %w", c.Name, err)
			}
			log.Info("golden file written", logging.String("path", path))
			return nil
		})
	}
	return g.Wait()
}

func main() {
	dir := flag.String("dir", filepath.Join("internal", "app", "testdata"), "output directory")
	flag.Parse()

	log := logging.NewLogger(os.Stderr, "generate-golden")
	if err := run(context.Background(), *dir, report.FileWriter{}, log); err != nil {
		log.Error("golden generation failed", err)
		os.Exit(1)
	}
}
