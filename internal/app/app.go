// Package app wires configuration, computation and output into the
// binomcalc command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/binomcalc/internal/binomial"
	"github.com/agbru/binomcalc/internal/config"
	apperrors "github.com/agbru/binomcalc/internal/errors"
	"github.com/agbru/binomcalc/internal/logging"
	"github.com/agbru/binomcalc/internal/metrics"
	"github.com/agbru/binomcalc/internal/report"
	"github.com/agbru/binomcalc/internal/ui"
)

// Application represents the binomcalc application instance.
type Application struct {
	Config    config.AppConfig
	Backends  *binomial.Registry
	Writer    report.Writer
	Logger    logging.Logger
	Metrics   *metrics.Recorder
	ErrWriter io.Writer

	backend  binomial.Backend
	logLevel zerolog.Level
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom backend registry for the application.
func WithRegistry(r *binomial.Registry) AppOption {
	return func(a *Application) { a.Backends = r }
}

// WithReportWriter sets the writer used to persist reports.
func WithReportWriter(w report.Writer) AppOption {
	return func(a *Application) { a.Writer = w }
}

// WithLogger replaces the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithProgramDir overrides the directory that receives the default report
// file.
func WithProgramDir(dir string) AppOption {
	return func(a *Application) { a.Config.ProgramDir = dir }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := "binomcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Backends == nil {
		app.Backends = binomial.NewDefaultRegistry()
	}
	if app.Writer == nil {
		app.Writer = report.FileWriter{}
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}

	backend, err := app.Backends.Get(app.Config.Backend)
	if err != nil {
		return nil, apperrors.ConfigError{Message: err.Error()}
	}
	app.backend = backend

	level, err := logging.ParseLevel(app.Config.LogLevel)
	if err != nil {
		return nil, apperrors.NewConfigError("invalid log level %q", app.Config.LogLevel)
	}
	app.logLevel = level
	if app.Logger == nil {
		app.Logger = logging.NewConsoleLogger(errWriter, "binomcalc", level)
	}
	return app, nil
}

// Run executes the computation and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor, out)
	return a.runCalculate(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
