package tui

import (
	"time"

	"github.com/agbru/widecalc/internal/orchestration"
)

// ProgressMsg carries one backend's progress and the running average.
type ProgressMsg struct {
	CalculatorIndex int
	Value           float64
	AverageProgress float64
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries every backend's outcome, sorted.
type ComparisonResultsMsg struct {
	Results []orchestration.CalculationResult
}

// FinalResultMsg carries the result that agreed across backends.
type FinalResultMsg struct {
	Result orchestration.CalculationResult
}

// ErrorMsg reports that no backend completed the request.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a sample of the process heap.
type MemStatsMsg struct {
	HeapAlloc    uint64
	Sys          uint64
	NumGC        uint32
	NumGoroutine int
}

// SysStatsMsg is a sample of system-wide load in percent.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// CalculationCompleteMsg ends a run. Generation discards messages from a
// run that was restarted.
type CalculationCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg reports that the run's context ended.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
