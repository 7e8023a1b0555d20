package tui

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/widecalc/internal/calc"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/sysmon"
)

// SampleInterval is the period of the heap and load samples.
const SampleInterval = 500 * time.Millisecond

// ExecutionState holds the run-related fields of a session.
type ExecutionState struct {
	ctx         context.Context
	cancel      context.CancelFunc
	calculators []calc.Calculator
	generation  uint64
	done        bool
	exitCode    int
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	header   HeaderModel
	backends BackendsModel
	system   SystemModel
	result   ResultModel
	footer   FooterModel
	keymap   KeyMap

	ExecutionState

	parentCtx context.Context
	request   calc.Request
	ref       sender
	paused    bool
	width     int
}

// NewModel creates a dashboard that runs req on calculators.
func NewModel(parentCtx context.Context, calculators []calc.Calculator, req calc.Request, version string) Model {
	names := make([]string, len(calculators))
	for i, c := range calculators {
		names[i] = c.Name()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	keys := DefaultKeyMap()
	return Model{
		header:   NewHeaderModel(req, version),
		backends: NewBackendsModel(names),
		system:   NewSystemModel(),
		footer:   NewFooterModel(keys),
		keymap:   keys,
		ExecutionState: ExecutionState{
			ctx:         ctx,
			cancel:      cancel,
			calculators: calculators,
			exitCode:    apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		request:   req,
		ref:       &programRef{},
	}
}

// ExitCode returns the exit code of the last finished run.
func (m Model) ExitCode() int { return m.exitCode }

// Init starts the first run and the samplers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startCalculationCmd(m.ref, m.ctx, m.calculators, m.request, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// Update handles every incoming message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.header.SetWidth(msg.Width)
		m.footer.SetWidth(msg.Width)
		m.backends.SetWidth(msg.Width)
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.backends.UpdateProgress(msg.CalculatorIndex, msg.Value)
		}
		return m, nil

	case ComparisonResultsMsg:
		m.backends.SetResults(msg.Results)
		return m, nil

	case FinalResultMsg:
		m.result.SetResult(msg.Result)
		return m, nil

	case ErrorMsg:
		m.result.SetError(msg.Err)
		m.footer.SetError(true)
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if m.paused {
			return m, tickCmd()
		}
		return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.system.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.system.UpdateSysStats(msg)
		return m, nil

	case CalculationCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		m.done = true
		m.exitCode = msg.ExitCode
		if msg.ExitCode == apperrors.ExitErrorMismatch {
			m.result.SetMismatch()
			m.footer.SetError(true)
		}
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, nil

	case ContextCancelledMsg:
		if msg.Generation != m.generation {
			return m, nil
		}
		if m.done {
			return m, nil
		}
		m.done = true
		m.exitCode = apperrors.HandleCalculationError(msg.Err, 0, io.Discard, nil)
		m.header.SetDone()
		m.footer.SetDone(true)
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Digits):
		m.result.ToggleDigits()
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		m.cancel()
		m.generation++
		m.ctx, m.cancel = context.WithCancel(m.parentCtx)
		m.header.Reset()
		m.backends.Reset()
		m.system.Reset()
		m.result.Reset()
		m.footer.SetDone(false)
		m.footer.SetError(false)
		m.footer.SetPaused(false)
		m.done, m.paused = false, false
		m.exitCode = apperrors.ExitSuccess
		return m, tea.Batch(
			tickCmd(),
			startCalculationCmd(m.ref, m.ctx, m.calculators, m.request, m.generation),
			watchContextCmd(m.ctx, m.generation),
		)
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		m.backends.View(),
		m.system.View(),
		m.result.View(),
		m.footer.View(),
	)
}

// Run shows the dashboard until the user quits and returns the exit code
// of the last run.
func Run(ctx context.Context, calculators []calc.Calculator, req calc.Request, version string) int {
	// The theme is set after package init.
	initStyles()

	model := NewModel(ctx, calculators, req, version)
	defer model.cancel()

	ref := model.ref.(*programRef)
	p := tea.NewProgram(model, tea.WithAltScreen())
	ref.SetProgram(p)

	final, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := final.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startCalculationCmd runs the request and reports through the bridges.
func startCalculationCmd(ref sender, ctx context.Context, calculators []calc.Calculator, req calc.Request, gen uint64) tea.Cmd {
	return func() tea.Msg {
		presenter := &TUIResultPresenter{ref: ref}
		results := orchestration.ExecuteCalculations(ctx, calculators, req, &TUIProgressReporter{ref: ref}, io.Discard)
		opts := orchestration.PresentationOptions{Request: req}
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, io.Discard)
		return CalculationCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(SampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			HeapAlloc:    ms.HeapAlloc,
			Sys:          ms.Sys,
			NumGC:        ms.NumGC,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		s := sysmon.Sample()
		return SysStatsMsg{CPUPercent: s.CPUPercent, MemPercent: s.MemPercent}
	}
}

// watchContextCmd reports the end of the run's context.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
