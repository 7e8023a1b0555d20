package orchestration

import (
	"sync"

	"github.com/agbru/widecalc/internal/calc"
)

// ProgressAggregator tracks the latest progress of several calculators and
// averages them. It is safe for concurrent use.
type ProgressAggregator struct {
	mu     sync.Mutex
	values []float64
}

// NewProgressAggregator creates a new aggregator for the given number
// of calculators. Returns nil if numCalculators <= 0.
func NewProgressAggregator(numCalculators int) *ProgressAggregator {
	if numCalculators <= 0 {
		return nil
	}
	return &ProgressAggregator{values: make([]float64, numCalculators)}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// CalculatorIndex is the index of the calculator that sent the update.
	CalculatorIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all calculators.
	AverageProgress float64
}

// Update records a progress update and returns the new average. Updates with
// an out-of-range index only affect the returned Value.
func (a *ProgressAggregator) Update(update calc.ProgressUpdate) AggregatedProgress {
	a.mu.Lock()
	defer a.mu.Unlock()
	if update.CalculatorIndex >= 0 && update.CalculatorIndex < len(a.values) {
		a.values[update.CalculatorIndex] = min(max(update.Value, 0), 1)
	}
	return AggregatedProgress{
		CalculatorIndex: update.CalculatorIndex,
		Value:           update.Value,
		AverageProgress: a.averageLocked(),
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.averageLocked()
}

func (a *ProgressAggregator) averageLocked() float64 {
	var sum float64
	for _, v := range a.values {
		sum += v
	}
	return sum / float64(len(a.values))
}

// NumCalculators returns the number of calculators being tracked.
func (a *ProgressAggregator) NumCalculators() int {
	return len(a.values)
}

// IsMultiCalculator returns true if tracking more than one calculator.
func (a *ProgressAggregator) IsMultiCalculator() bool {
	return len(a.values) > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan calc.ProgressUpdate) {
	for range progressChan {
	}
}
