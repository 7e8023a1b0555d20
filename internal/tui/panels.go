package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/widecalc/internal/format"
	"github.com/agbru/widecalc/internal/orchestration"
)

const (
	// sparklineCapacity is the number of load samples kept per series.
	sparklineCapacity = 60
	// resultDigitLimit is the longest result shown without truncation.
	resultDigitLimit = 200
	// resultEdgeDigits is the number of digits kept at each end when truncated.
	resultEdgeDigits = 40
	minBarWidth      = 10
)

// BackendsModel shows one row per backend with its progress and outcome.
type BackendsModel struct {
	names    []string
	progress []float64
	outcomes map[string]orchestration.CalculationResult
	width    int
}

// NewBackendsModel creates a panel for the named backends.
func NewBackendsModel(names []string) BackendsModel {
	return BackendsModel{
		names:    names,
		progress: make([]float64, len(names)),
		outcomes: map[string]orchestration.CalculationResult{},
	}
}

// SetWidth sets the panel width.
func (b *BackendsModel) SetWidth(w int) { b.width = w }

// UpdateProgress records the progress of backend i.
func (b *BackendsModel) UpdateProgress(i int, value float64) {
	if i >= 0 && i < len(b.progress) {
		b.progress[i] = min(max(value, 0), 1)
	}
}

// SetResults records each backend's outcome.
func (b *BackendsModel) SetResults(results []orchestration.CalculationResult) {
	for _, r := range results {
		b.outcomes[r.Name] = r
	}
}

// Reset clears progress and outcomes.
func (b *BackendsModel) Reset() {
	clear(b.progress)
	clear(b.outcomes)
}

// View renders the panel.
func (b BackendsModel) View() string {
	nameWidth := 0
	for _, n := range b.names {
		nameWidth = max(nameWidth, len(n))
	}
	barWidth := max(b.width-nameWidth-30, minBarWidth)

	var sb strings.Builder
	sb.WriteString(styles.title.Render("Backends"))
	for i, name := range b.names {
		sb.WriteString("\n")
		sb.WriteString(styles.label.Render(fmt.Sprintf("%-*s", nameWidth, name)))
		sb.WriteString(" ")
		sb.WriteString(styles.accent.Render(format.FormatProgressBar(b.progress[i], barWidth)))
		sb.WriteString(fmt.Sprintf(" %5.1f%% ", b.progress[i]*100))

		res, finished := b.outcomes[name]
		switch {
		case !finished:
			sb.WriteString(styles.muted.Render("running"))
		case res.Err != nil:
			sb.WriteString(styles.err.Render("failed: " + res.Err.Error()))
		default:
			sb.WriteString(styles.value.Render(format.FormatExecutionDuration(res.Duration)))
		}
	}
	return styles.panel.Render(sb.String())
}

// SystemModel shows process memory and system-wide load.
type SystemModel struct {
	mem        MemStatsMsg
	cpuHistory *RingBuffer
	memHistory *RingBuffer
}

// NewSystemModel creates an empty panel.
func NewSystemModel() SystemModel {
	return SystemModel{
		cpuHistory: NewRingBuffer(sparklineCapacity),
		memHistory: NewRingBuffer(sparklineCapacity),
	}
}

// UpdateMemStats records a heap sample.
func (s *SystemModel) UpdateMemStats(msg MemStatsMsg) { s.mem = msg }

// UpdateSysStats records a load sample.
func (s *SystemModel) UpdateSysStats(msg SysStatsMsg) {
	s.cpuHistory.Push(msg.CPUPercent)
	s.memHistory.Push(msg.MemPercent)
}

// Reset clears the load history.
func (s *SystemModel) Reset() {
	s.cpuHistory.Reset()
	s.memHistory.Reset()
}

// View renders the panel.
func (s SystemModel) View() string {
	var sb strings.Builder
	sb.WriteString(styles.title.Render("System"))
	fmt.Fprintf(&sb, "\n%s %s / %s   %s %d   %s %d",
		styles.label.Render("Heap:"), styles.value.Render(format.FormatBytes(s.mem.HeapAlloc)), format.FormatBytes(s.mem.Sys),
		styles.label.Render("GC:"), s.mem.NumGC,
		styles.label.Render("Goroutines:"), s.mem.NumGoroutine)
	fmt.Fprintf(&sb, "\n%s %5.1f%% %s",
		styles.label.Render("CPU:"), s.cpuHistory.Last(), styles.accent.Render(RenderSparkline(s.cpuHistory.Slice())))
	fmt.Fprintf(&sb, "\n%s %5.1f%% %s",
		styles.label.Render("MEM:"), s.memHistory.Last(), styles.warning.Render(RenderSparkline(s.memHistory.Slice())))
	return styles.panel.Render(sb.String())
}

// ResultModel shows the agreed result or the failure.
type ResultModel struct {
	result   *orchestration.CalculationResult
	err      error
	mismatch bool
	full     bool
}

// SetResult records the agreed result.
func (r *ResultModel) SetResult(res orchestration.CalculationResult) { r.result = &res }

// SetError records a failure.
func (r *ResultModel) SetError(err error) { r.err = err }

// SetMismatch records that the backends disagreed.
func (r *ResultModel) SetMismatch() { r.mismatch = true }

// ToggleDigits switches between truncated and full display.
func (r *ResultModel) ToggleDigits() { r.full = !r.full }

// Reset clears the outcome, keeping the display mode.
func (r *ResultModel) Reset() {
	r.result, r.err, r.mismatch = nil, nil, false
}

// View renders the panel.
func (r ResultModel) View() string {
	var sb strings.Builder
	sb.WriteString(styles.title.Render("Result"))
	switch {
	case r.mismatch:
		sb.WriteString("\n" + styles.err.Render("The backends produced different results."))
	case r.err != nil:
		sb.WriteString("\n" + styles.err.Render(r.err.Error()))
	case r.result == nil:
		sb.WriteString("\n" + styles.muted.Render("waiting..."))
	default:
		value := r.result.Result.String()
		if !r.full {
			value = format.TruncateDigits(value, resultDigitLimit, resultEdgeDigits)
		}
		fmt.Fprintf(&sb, "\n%s %s   %s %s",
			styles.label.Render("Digits:"), styles.value.Render(format.GroupThousands(r.result.Result.Len())),
			styles.label.Render("Fastest:"), styles.value.Render(r.result.Name))
		sb.WriteString("\n" + styles.accent.Render(value))
	}
	return styles.panel.Render(sb.String())
}
