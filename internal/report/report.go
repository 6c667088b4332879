package report

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/format"
)

// Stage identifies one timed phase of the pipeline.
type Stage string

const (
	StageGenerate Stage = "generate"
	StageFormat   Stage = "format"
	StageEvaluate Stage = "evaluate"
)

// Stages lists the timed phases in execution order.
var Stages = []Stage{StageGenerate, StageFormat, StageEvaluate}

// Description returns the label printed in the timing section.
func (s Stage) Description() string {
	switch s {
	case StageGenerate:
		return "Coefficient generation"
	case StageFormat:
		return "Polynomial string construction"
	case StageEvaluate:
		return "Stepwise evaluation"
	default:
		return string(s)
	}
}

// Timing is the measured wall-clock duration of one stage.
type Timing struct {
	Stage   Stage
	Elapsed time.Duration
}

// Report holds everything printed for one run.
type Report struct {
	N          uint64
	X          *big.Int
	Polynomial string
	Evaluation binomial.Evaluation
	Timings    []Timing
}

// Render returns the report text. Every line, including the last, ends in
// a newline.
func (r Report) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Polynomial (x+1)^%d as sum of coefficients * x^k:\n", r.N)
	sb.WriteString(r.Polynomial)
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Evaluation for x = %s:\n", r.X)
	for _, s := range r.Evaluation.Steps {
		fmt.Fprintf(&sb, "k=%d: coeff=%s * x^%d(%s) = %s  => sum=%s\n",
			s.K, s.Coefficient, s.K, s.Power, s.Term, s.Sum)
	}

	fmt.Fprintf(&sb, "\nFinal result f(%s) = %s\n\n", r.X, r.Evaluation.Result)

	sb.WriteString("Times (ms):\n")
	for _, t := range r.Timings {
		fmt.Fprintf(&sb, "%s: %s\n", t.Stage.Description(), format.FormatMillis(t.Elapsed))
	}
	return sb.String()
}
