package orchestration

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/wideint"
)

// chattyCalculator sends far more updates than the progress buffer holds.
type chattyCalculator struct{ updates int }

func (c chattyCalculator) Name() string { return "chatty" }

func (c chattyCalculator) Calculate(ctx context.Context, ch chan<- calc.ProgressUpdate, idx int, _ calc.Request) (wideint.Int, error) {
	for i := 0; i < c.updates; i++ {
		select {
		case ch <- calc.ProgressUpdate{CalculatorIndex: idx, Value: float64(i) / float64(c.updates)}:
		case <-ctx.Done():
			return wideint.Int{}, ctx.Err()
		}
	}
	return wideint.One(), nil
}

// TestExecuteCalculations_SlowReporterNoDeadlock checks that a reporter that
// consumes slowly only slows the calculators down.
func TestExecuteCalculations_SlowReporterNoDeadlock(t *testing.T) {
	t.Parallel()
	calculators := []calc.Calculator{chattyCalculator{200}, chattyCalculator{200}, chattyCalculator{200}}
	slow := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan calc.ProgressUpdate, _ int, _ io.Writer) {
		defer wg.Done()
		for range ch {
			time.Sleep(10 * time.Microsecond)
		}
	})

	done := make(chan []CalculationResult, 1)
	go func() {
		done <- ExecuteCalculations(context.Background(), calculators, calc.Request{}, slow, io.Discard)
	}()

	select {
	case results := <-done:
		for _, r := range results {
			if r.Err != nil {
				t.Errorf("%s: %v", r.Name, r.Err)
			}
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteCalculations deadlocked")
	}
}

// TestExecuteCalculations_NullReporterDrains checks that quiet mode never
// leaves a calculator blocked on a full progress channel.
func TestExecuteCalculations_NullReporterDrains(t *testing.T) {
	t.Parallel()
	calculators := []calc.Calculator{chattyCalculator{1000}}
	done := make(chan struct{})
	go func() {
		ExecuteCalculations(context.Background(), calculators, calc.Request{}, NullProgressReporter{}, io.Discard)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteCalculations blocked with NullProgressReporter")
	}
}
