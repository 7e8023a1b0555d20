package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/widecalc/internal/calc"
	apperrors "github.com/agbru/widecalc/internal/errors"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking calculation
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs req on every calculator concurrently and collects
// one result per calculator, in the order of calculators.
//
// Failures are recorded in the results rather than aborting the group, so
// every backend reports its own outcome.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: The calculators to execute.
//   - req: The operation and operands.
//   - progressReporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for displaying progress updates.
//
// Returns:
//   - []CalculationResult: A slice containing the results of each calculation.
func ExecuteCalculations(ctx context.Context, calculators []calc.Calculator, req calc.Request, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan calc.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calculator := range calculators {
		g.Go(func() error {
			startTime := time.Now()
			res, err := calculator.Calculate(ctx, progressChan, i, req)
			results[i] = CalculationResult{
				Name: calculator.Name(), Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// ErrNoResult is returned by FirstSuccess when every calculation failed.
var ErrNoResult = errors.New("no backend produced a result")

// FirstSuccess returns the fastest successful result and whether all the
// successful results agree. When nothing succeeded it returns the first
// error, or ErrNoResult for an empty slice.
func FirstSuccess(results []CalculationResult) (CalculationResult, bool, error) {
	var best *CalculationResult
	var firstErr error
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
			}
			continue
		}
		if best == nil || r.Duration < best.Duration {
			best = r
		}
	}
	if best == nil {
		if firstErr == nil {
			firstErr = ErrNoResult
		}
		return CalculationResult{}, false, firstErr
	}
	for _, r := range results {
		if r.Err == nil && !r.Result.Equal(best.Result) {
			return *best, false, nil
		}
	}
	return *best, true, nil
}

// AnalyzeComparisonResults processes the results from multiple backends and
// generates a summary report.
//
// It sorts the results (successes first, then by execution time), checks
// that every successful backend produced the same value, and displays a
// comparative table.
//
// Parameters:
//   - results: The slice of calculation results to analyze.
//   - opts: The request and display options.
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	presenter.PresentComparisonTable(results, out)

	best, consistent, err := FirstSuccess(results)
	if err != nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No backend could complete the operation.\n")
		return presenter.HandleError(err, 0, out)
	}
	if !consistent {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the backends.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(best, opts, out)
	return apperrors.ExitSuccess
}
