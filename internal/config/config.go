// Package config parses the command line into an AppConfig.
//
// The command takes two positional arguments, n and x, which may be mixed
// freely with flags. Tokens that look like numbers (such as "-1") are always
// treated as positional so that a negative n reaches validation instead of
// being rejected as an unknown flag.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/agbru/binomcalc/internal/binomial"
	apperrors "github.com/agbru/binomcalc/internal/errors"
)

// EnvPrefix prefixes every environment variable read by the application.
const EnvPrefix = "BINOMCALC_"

// AppConfig is the validated configuration of one run.
type AppConfig struct {
	// N is the exponent of (x+1)^n.
	N uint64
	// X is the evaluation point.
	X *big.Int
	// OutputFile is the explicit report path given with --out.
	OutputFile string
	// ProgramDir is the directory holding the running executable. The
	// default report file is written there, never in the working directory.
	ProgramDir string
	// Backend names the coefficient generation backend.
	Backend string
	// Verify enables the (x+1)^n cross-check after the report.
	Verify bool
	// MetricsFile is where Prometheus text-format metrics are written.
	MetricsFile string
	// LogLevel is the zerolog level for diagnostics on stderr.
	LogLevel string
	// NoColor disables colored messages.
	NoColor bool
}

// executable is replaced in tests.
var executable = os.Executable

// numericToken matches tokens that must be read as positional numbers even
// when they start with a dash.
var numericToken = regexp.MustCompile(`^[-+]?[0-9.]`)

func newFlagSet(programName string, cfg *AppConfig, errWriter io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.StringVar(&cfg.OutputFile, "out", "", "also write the report to `path`")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for --out")
	fs.StringVar(&cfg.Backend, "backend", binomial.DefaultBackend, "coefficient generation `backend`")
	fs.BoolVar(&cfg.Verify, "verify", false, "cross-check the result against (x+1)^n")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "write Prometheus text-format metrics to `path`")
	fs.StringVar(&cfg.LogLevel, "log-level", "warn", "diagnostics `level` on stderr (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored messages")
	fs.Usage = func() { Usage(fs.Output(), programName) }
	return fs
}

// Usage writes the usage text for the command.
func Usage(w io.Writer, programName string) {
	name := filepath.Base(programName)
	fmt.Fprintf(w, "Usage: %s <n> <x> [--out <path>] [flags]\n", name)
	fmt.Fprintf(w, "Example: %s 5 2 --out results.txt\n\n", name)
	fmt.Fprintf(w, "Flags:\n")
	fs := newFlagSet(programName, &AppConfig{}, w)
	fs.PrintDefaults()
}

// ParseConfig parses args (without the program name) into an AppConfig.
//
// Errors are typed: flag.ErrHelp when help was requested, UsageError for a
// malformed invocation or a non-integer x, and ValidationError when n is not a
// non-negative integer.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}
	fs := newFlagSet(programName, &cfg, errWriter)

	flagArgs, positionals := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, err
		}
		return cfg, apperrors.UsageError{Message: err.Error(), Shown: true}
	}
	positionals = append(positionals, fs.Args()...)
	applyEnvOverrides(&cfg, fs)

	if len(positionals) < 2 {
		return cfg, apperrors.UsageError{}
	}

	n, err := ParseN(positionals[0])
	if err != nil {
		return cfg, err
	}
	x, err := ParseX(positionals[1])
	if err != nil {
		return cfg, err
	}
	cfg.N = n
	cfg.X = x
	cfg.ProgramDir = ResolveProgramDir()
	return cfg, nil
}

// ParseN parses the exponent, a base-10 non-negative integer.
func ParseN(tok string) (uint64, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, 64)
	if err != nil {
		return 0, apperrors.ValidationError{Field: "n", Message: "must be a non-negative integer"}
	}
	return n, nil
}

// ParseX parses the evaluation point, a base-10 integer of any size and sign.
func ParseX(tok string) (*big.Int, error) {
	x, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return nil, apperrors.NewUsageError("x must be an integer")
	}
	return x, nil
}

// ResolveProgramDir returns the directory of the running executable with
// symlinks resolved, or "." when it cannot be determined.
func ResolveProgramDir() string {
	exe, err := executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

type boolFlag interface {
	IsBoolFlag() bool
}

// splitArgs separates flag tokens (with their values) from positional tokens.
// Everything after "--" is positional.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positionals []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") || numericToken.MatchString(arg) {
			positionals = append(positionals, arg)
			continue
		}
		flags = append(flags, arg)

		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if bf, ok := f.Value.(boolFlag); ok && bf.IsBoolFlag() {
			continue
		}
		if i+1 < len(args) {
			flags = append(flags, args[i+1])
			i++
		}
	}
	return flags, positionals
}
