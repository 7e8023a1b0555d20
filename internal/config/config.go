// Package config parses and validates the widecalc command line, with
// environment variable fallbacks for every flag.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/widecalc/internal/calc"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/wideint"
)

// EnvPrefix prefixes every environment variable read by the configuration.
const EnvPrefix = "WIDECALC_"

// Default values for the command line.
const (
	DefaultOp       = "pow"
	DefaultA        = "2"
	DefaultB        = "128"
	DefaultBackend  = "all"
	DefaultTimeout  = 5 * time.Minute
	DefaultPort     = "8080"
	DefaultLogLevel = "info"
)

// AppConfig holds the parsed command line.
type AppConfig struct {
	// Op is the operation name or symbol (see calc.ParseOp).
	Op string
	// A and B are the decimal operands.
	A, B string
	// Backend selects one backend or "all" to cross-check every backend.
	Backend string
	// Timeout bounds the whole run.
	Timeout time.Duration

	Verbose     bool   // print the full result instead of a truncated one
	Details     bool   // print digit counts, memory and host details
	Quiet       bool   // print only the result
	JSONOutput  bool   // print the result as a JSON document
	OutputFile  string // also write the result to this file
	Interactive bool   // start the REPL
	TUI         bool   // start the dashboard
	ServerMode  bool   // start the HTTP server
	Port        string
	NoColor     bool
	LogLevel    string
	Completion  string // print a shell completion script and exit
}

// Request parses the operation and operands.
func (c AppConfig) Request() (calc.Request, error) {
	op, err := calc.ParseOp(c.Op)
	if err != nil {
		return calc.Request{}, err
	}
	a, err := wideint.Parse(c.A)
	if err != nil {
		return calc.Request{}, fmt.Errorf("operand a: %w", err)
	}
	b, err := wideint.Parse(c.B)
	if err != nil {
		return calc.Request{}, fmt.Errorf("operand b: %w", err)
	}
	return calc.Request{Op: op, A: a, B: b}, nil
}

// Validate checks the semantic consistency of the configuration.
//
// Parameters:
//   - availableBackends: The registered backend names.
//
// Returns:
//   - error: A ConfigError describing the first problem found.
func (c AppConfig) Validate(availableBackends []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("the timeout value must be strictly positive")
	}
	if c.Backend != DefaultBackend && !slices.Contains(availableBackends, c.Backend) {
		return apperrors.NewConfigError("unrecognized backend: '%s'. Valid backends: %s, %s",
			c.Backend, DefaultBackend, strings.Join(availableBackends, ", "))
	}
	if c.Interactive && c.ServerMode {
		return apperrors.NewConfigError("--interactive and --server cannot be combined")
	}
	if c.TUI && (c.Interactive || c.ServerMode || c.Quiet || c.JSONOutput) {
		return apperrors.NewConfigError("--tui cannot be combined with --interactive, --server, --quiet or --json")
	}
	if c.Quiet && c.JSONOutput {
		return apperrors.NewConfigError("--quiet and --json cannot be combined")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return apperrors.NewConfigError("invalid port: '%s'", c.Port)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("invalid log level: '%s'", c.LogLevel)
	}
	if c.Interactive || c.ServerMode || c.Completion != "" {
		return nil
	}
	if _, err := c.Request(); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	return nil
}

// ParseConfig parses args into an AppConfig.
//
// Flags take precedence over WIDECALC_* environment variables, which take
// precedence over the defaults. Three positional arguments "op a b" replace
// the -op, -a and -b flags.
//
// Parameters:
//   - programName: The name shown in usage messages.
//   - args: The arguments without the program name.
//   - errorWriter: Receives usage and validation messages.
//   - availableBackends: The registered backend names.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, or an error for invalid input.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableBackends []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", DefaultOp, "Operation: add, sub, mul, div, mod, pow, cmp (or + - * / % ^ <=>).")
	fs.StringVar(&config.A, "a", DefaultA, "First operand (decimal, optional sign).")
	fs.StringVar(&config.B, "b", DefaultB, "Second operand (decimal, optional sign).")
	fs.StringVar(&config.Backend, "backend", DefaultBackend, fmt.Sprintf("Backend to use: 'all' or one of [%s].", strings.Join(availableBackends, ", ")))
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.Verbose, "v", false, "Display the full result value.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Display the full result value.")
	fs.BoolVar(&config.Details, "d", false, "Display digit counts, memory and host details.")
	fs.BoolVar(&config.Details, "details", false, "Display digit counts, memory and host details.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: print only the result.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode: print only the result.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Print the result as JSON.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the result to a file.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to a file.")
	fs.BoolVar(&config.Interactive, "i", false, "Start the interactive REPL.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive REPL.")
	fs.BoolVar(&config.TUI, "tui", false, "Run the request in the terminal dashboard.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start the HTTP server.")
	fs.StringVar(&config.Port, "port", DefaultPort, "HTTP server port.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script: bash, zsh, fish.")
	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 3:
		config.Op, config.A, config.B = rest[0], rest[1], rest[2]
	default:
		fmt.Fprintf(errorWriter, "Configuration error: expected 'op a b', got %d positional arguments\n", len(rest))
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}

	if err := config.Validate(availableBackends); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// setCustomUsage prints the usage line, the flags and a few examples.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] [op a b]\n\n", fs.Name())
		fmt.Fprintln(out, "Arbitrary-precision integer calculator with FFT multiplication.")
		fmt.Fprintln(out, "\nFlags:")
		fs.PrintDefaults()
		fmt.Fprintln(out, "\nExamples:")
		fmt.Fprintf(out, "  %s mul 123456789 987654321\n", fs.Name())
		fmt.Fprintf(out, "  %s -backend fft pow 3 1000\n", fs.Name())
		fmt.Fprintf(out, "  %s -q div -17 5\n", fs.Name())
		fmt.Fprintf(out, "\nEnvironment variables use the %s prefix (e.g. %sBACKEND=fft).\n", EnvPrefix, EnvPrefix)
	}
}
