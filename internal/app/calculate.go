package app

import (
	"context"
	"io"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/cli"
	apperrors "github.com/agbru/binomcalc/internal/errors"
	"github.com/agbru/binomcalc/internal/format"
	"github.com/agbru/binomcalc/internal/logging"
	"github.com/agbru/binomcalc/internal/metrics"
	"github.com/agbru/binomcalc/internal/report"
	"github.com/agbru/binomcalc/internal/sysmon"
)

var tracer = otel.Tracer("github.com/agbru/binomcalc/internal/app")

// runCalculate runs the generate, format and evaluate stages, prints the
// report and handles persistence, verification and metrics.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	n, x := a.Config.N, a.Config.X

	ctx, span := tracer.Start(ctx, "binomcalc.run")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("binomcalc.n", int64(n)),
		attribute.String("binomcalc.backend", a.backend.Name()),
	)

	var coeffs []*big.Int
	var polynomial string
	var evaluation binomial.Evaluation

	timings := []report.Timing{
		a.timeStage(ctx, report.StageGenerate, func() { coeffs = a.backend.Coefficients(n) }),
		a.timeStage(ctx, report.StageFormat, func() { polynomial = binomial.FormatPolynomial(coeffs) }),
		a.timeStage(ctx, report.StageEvaluate, func() { evaluation = binomial.Evaluate(coeffs, x) }),
	}

	text := report.Report{
		N:          n,
		X:          x,
		Polynomial: polynomial,
		Evaluation: evaluation,
		Timings:    timings,
	}.Render()

	if err := cli.DisplayReport(out, text); err != nil {
		a.Logger.Error("failed to write report", err)
	}

	if report.ShouldPersist(n, a.Config.OutputFile) {
		a.persist(out, text)
	}

	a.logDiagnostics(ctx, timings)

	exitCode := apperrors.ExitSuccess
	if a.Config.Verify {
		if err := a.verify(out, evaluation.Result); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cross-check mismatch")
			a.Logger.Error("cross-check failed", err)
			exitCode = apperrors.ExitCode(err)
		}
	}

	if a.Config.MetricsFile != "" {
		a.Metrics.SetShape(n, len(coeffs), len(evaluation.Result.String()))
		a.Metrics.ObserveMemory(metrics.ReadMemory())
		if err := a.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Warn("could not write metrics file",
				logging.String("path", a.Config.MetricsFile), logging.Err(err))
		}
	}
	return exitCode
}

// timeStage runs fn inside its own span and measures its wall-clock time.
func (a *Application) timeStage(ctx context.Context, stage report.Stage, fn func()) report.Timing {
	_, span := tracer.Start(ctx, "binomcalc."+string(stage))
	start := time.Now()
	fn()
	elapsed := time.Since(start)
	span.End()

	a.Metrics.ObserveStage(string(stage), elapsed)
	a.Logger.Debug("stage completed",
		logging.String("stage", string(stage)),
		logging.Duration("elapsed", elapsed))
	return report.Timing{Stage: stage, Elapsed: elapsed}
}

// persist writes the report file. A failure is only a warning: the report
// has already been printed.
func (a *Application) persist(out io.Writer, text string) {
	path := report.ResolvePath(a.Config.OutputFile, a.Config.ProgramDir)
	if err := a.Writer.WriteReport(path, []byte(text)); err != nil {
		a.Metrics.SetPersisted(false)
		a.Logger.Warn("could not write results file",
			logging.String("path", path), logging.Err(err))
		return
	}
	a.Metrics.SetPersisted(true)
	cli.DisplaySaved(out, path)
}

// verify prints the cross-check line and returns a MismatchError when the
// stepwise result disagrees with (x+1)^n.
func (a *Application) verify(out io.Writer, result *big.Int) error {
	n, x := a.Config.N, a.Config.X
	expected, ok := binomial.CrossCheck(n, x, result)
	cli.DisplayCrossCheck(out, n, x, expected, ok)
	if !ok {
		return apperrors.MismatchError{N: n, X: x, Got: result, Expected: expected}
	}
	return nil
}

func (a *Application) logDiagnostics(ctx context.Context, timings []report.Timing) {
	if a.logLevel > zerolog.DebugLevel {
		return
	}
	var total time.Duration
	for _, t := range timings {
		total += t.Elapsed
	}
	a.Logger.Debug("computation finished",
		logging.String("backend", a.backend.Name()),
		logging.String("total", format.FormatExecutionDuration(total)))

	mem := metrics.ReadMemory()
	a.Logger.Debug("memory",
		logging.Uint64("heap_alloc", mem.HeapAlloc),
		logging.Uint64("total_alloc", mem.TotalAlloc),
		logging.Uint64("num_gc", uint64(mem.NumGC)))

	sys := sysmon.Sample(ctx)
	a.Logger.Debug("system",
		logging.Int("cpus", sys.LogicalCPUs),
		logging.Float64("cpu_percent", sys.CPUPercent),
		logging.Float64("mem_percent", sys.MemPercent),
		logging.Uint64("mem_available", sys.MemAvailBytes))
}
