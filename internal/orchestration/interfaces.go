package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/wideint"
)

// CalculationResult encapsulates the outcome of running a request on one
// backend. It is the shared domain type between orchestration and
// presentation layers.
type CalculationResult struct {
	// Name is the backend that produced the result (e.g. "fft").
	Name string
	// Result is the computed value. It is meaningless if Err is set.
	Result wideint.Int
	// Duration is the time taken to complete the operation.
	Duration time.Duration
	// Err contains any error that occurred during the operation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Request calc.Request
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying calculation progress.
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer coordinates the
// calculators.
type ProgressReporter interface {
	// DisplayProgress consumes progress updates until progressChan is closed
	// and then calls wg.Done.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from calculators.
	//   - numCalculators: The number of concurrent calculators being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. It is used in quiet mode, by the server and in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan calc.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting calculation results,
// allowing different output formats without modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the per-backend summary table.
	PresentComparisonTable(results []CalculationResult, out io.Writer)

	// PresentResult displays the agreed result.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)

	ErrorHandler
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles calculation errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
