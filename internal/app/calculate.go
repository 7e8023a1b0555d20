package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/widecalc/internal/cli"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/metrics"
	"github.com/agbru/widecalc/internal/orchestration"
)

// runCalculate runs one request on the selected backends and reports it.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
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

	machineOutput := a.Config.Quiet || a.Config.JSONOutput
	if !machineOutput {
		cli.PrintExecutionConfig(a.Config, req, out)
		cli.PrintExecutionMode(calculators, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if machineOutput {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteCalculations(ctx, calculators, req, reporter, progressOut)
	delta := metrics.Diff(before, collector.Snapshot())

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		JSON:       a.Config.JSONOutput,
	}

	if machineOutput {
		best, consistent, err := orchestration.FirstSuccess(results)
		if err != nil {
			return cli.CLIResultPresenter{}.HandleError(err, 0, a.ErrWriter)
		}
		if !consistent {
			fmt.Fprintln(a.ErrWriter, "Error: the backends produced different results")
			return apperrors.ExitErrorMismatch
		}
		if err := cli.DisplayResultWithConfig(out, req, best, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	opts := orchestration.PresentationOptions{
		Request: req,
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
	}
	exitCode := orchestration.AnalyzeComparisonResults(results, opts, cli.CLIResultPresenter{}, out)
	if a.Config.Details {
		cli.DisplayMemoryStats(delta, out)
	}
	if exitCode != apperrors.ExitSuccess || a.Config.OutputFile == "" {
		return exitCode
	}

	best, _, _ := orchestration.FirstSuccess(results)
	if err := cli.WriteResultToFile(req, best, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(out, "\nResult saved to: %s\n", a.Config.OutputFile)
	return apperrors.ExitSuccess
}
