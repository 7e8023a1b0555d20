package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/cli"
	"github.com/agbru/widecalc/internal/config"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/logging"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/server"
	"github.com/agbru/widecalc/internal/tui"
	"github.com/agbru/widecalc/internal/ui"
)

// Application is one configured run of widecalc.
type Application struct {
	Config    config.AppConfig
	Factory   calc.CalculatorFactory
	ErrWriter io.Writer
	// Input feeds the interactive mode. Nil means standard input.
	Input io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets the backends the application runs on.
func WithFactory(f calc.CalculatorFactory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithInput sets the reader of the interactive mode.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.Input = r }
}

// New parses the command line into an Application. args[0] is the program
// name. The error wraps flag.ErrHelp when -h was requested.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = calc.GlobalFactory()
	}

	programName := "widecalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	if err := logging.SetGlobalLevel(a.Config.LogLevel); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	ui.InitTheme(a.Config.NoColor)

	switch {
	case a.Config.ServerMode:
		return a.runServer(ctx)
	case a.Config.Interactive:
		return a.runREPL(out)
	case a.Config.TUI:
		return a.runTUI(ctx)
	default:
		return a.runCalculate(ctx, out)
	}
}

func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, a.Factory.List()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServer serves HTTP until SIGINT or SIGTERM. The configured timeout
// applies to each request, not to the server's lifetime.
func (a *Application) runServer(ctx context.Context) int {
	ctx, stop := setupLifecycle(ctx, 0)
	defer stop()

	srv := server.NewServer(a.Factory, a.Config.Backend, a.Config.Port, a.Config.Timeout)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.Factory, cli.REPLConfig{
		DefaultBackend: a.Config.Backend,
		Timeout:        a.Config.Timeout,
		Verbose:        a.Config.Verbose,
	})
	if a.Input != nil {
		repl.SetInput(a.Input)
	}
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI runs the request inside the terminal dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	req, err := a.Config.Request()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	ctx, stop := setupLifecycle(ctx, a.Config.Timeout)
	defer stop()

	calculators, err := orchestration.GetCalculatorsToRun(a.Config.Backend, a.Factory)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Configuration error: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return tui.Run(ctx, calculators, req, Version)
}

// IsHelpError reports whether err comes from -h or --help.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
