package cli

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/widecalc/internal/calc"
)

// MockSpinner records how DisplayProgress drives the spinner.
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

// withMockSpinner swaps newSpinner for the duration of the test. Tests using
// it must not run in parallel.
func withMockSpinner(t *testing.T) *MockSpinner {
	t.Helper()
	original := newSpinner
	t.Cleanup(func() { newSpinner = original })
	mockS := &MockSpinner{}
	newSpinner = func(options ...spinner.Option) Spinner { return mockS }
	return mockS
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(io.Discard))
	rs := &realSpinner{s}

	rs.Start()
	rs.UpdateSuffix(" test")
	rs.Stop()
	if s.Suffix != " test" {
		t.Errorf("suffix = %q", s.Suffix)
	}
}

func TestDisplayProgress(t *testing.T) {
	mockS := withMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan calc.ProgressUpdate)
	var out bytes.Buffer

	go func() {
		progressChan <- calc.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
		progressChan <- calc.ProgressUpdate{CalculatorIndex: 0, Value: 1}
		close(progressChan)
	}()

	DisplayProgress(&wg, progressChan, 1, &out)
	wg.Wait()

	if !mockS.started || !mockS.stopped {
		t.Errorf("spinner started=%v stopped=%v", mockS.started, mockS.stopped)
	}
	if len(mockS.suffixes) == 0 || !strings.Contains(mockS.suffixes[0], "Computing...") {
		t.Errorf("initial suffix = %v", mockS.suffixes)
	}
	if !strings.Contains(out.String(), "Done.") || !strings.Contains(out.String(), "100.0%") {
		t.Errorf("final line = %q", out.String())
	}
}

func TestDisplayProgress_MultipleBackendsLabel(t *testing.T) {
	mockS := withMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan calc.ProgressUpdate)
	close(progressChan)

	DisplayProgress(&wg, progressChan, 2, io.Discard)
	wg.Wait()
	if !strings.Contains(mockS.suffixes[0], "Computing on 2 backends...") {
		t.Errorf("suffix = %q", mockS.suffixes[0])
	}
}

func TestDisplayProgress_ZeroCalculators(t *testing.T) {
	mockS := withMockSpinner(t)

	var wg sync.WaitGroup
	wg.Add(1)
	progressChan := make(chan calc.ProgressUpdate, 1)
	progressChan <- calc.ProgressUpdate{}
	close(progressChan)

	DisplayProgress(&wg, progressChan, 0, io.Discard)
	wg.Wait()
	if mockS.started {
		t.Error("spinner should not start without calculators")
	}
}

func TestProgressSuffix(t *testing.T) {
	t.Parallel()
	got := progressSuffix("Computing...", 0.25)
	if !strings.HasPrefix(got, " Computing... ") || !strings.HasSuffix(got, " 25.0%") {
		t.Errorf("progressSuffix = %q", got)
	}
}
