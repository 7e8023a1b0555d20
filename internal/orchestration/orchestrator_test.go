package orchestration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/widecalc/internal/calc"
	"github.com/agbru/widecalc/internal/calc/mocks"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/wideint"
)

// recordingPresenter captures what AnalyzeComparisonResults hands over.
type recordingPresenter struct {
	table     []CalculationResult
	presented *CalculationResult
	handled   error
}

func (p *recordingPresenter) PresentComparisonTable(results []CalculationResult, _ io.Writer) {
	p.table = results
}

func (p *recordingPresenter) PresentResult(result CalculationResult, _ PresentationOptions, _ io.Writer) {
	p.presented = &result
}

func (p *recordingPresenter) HandleError(err error, _ time.Duration, _ io.Writer) int {
	p.handled = err
	return apperrors.ExitErrorGeneric
}

func newMockCalculator(ctrl *gomock.Controller, name string, result wideint.Int, err error) *mocks.MockCalculator {
	m := mocks.NewMockCalculator(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	m.EXPECT().Calculate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(result, err)
	return m
}

func TestExecuteCalculations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		results     []wideint.Int
		errs        []error
		expectError []bool
	}{
		{"single success", []wideint.Int{wideint.New(1)}, []error{nil}, []bool{false}},
		{"single failure", []wideint.Int{{}}, []error{errors.New("mock error")}, []bool{true}},
		{
			"mixed",
			[]wideint.Int{wideint.New(5), {}},
			[]error{nil, wideint.ErrDivisionByZero},
			[]bool{false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			var calculators []calc.Calculator
			for i := range tt.results {
				calculators = append(calculators, newMockCalculator(ctrl, "m", tt.results[i], tt.errs[i]))
			}

			results := ExecuteCalculations(context.Background(), calculators, calc.Request{}, NullProgressReporter{}, io.Discard)
			if len(results) != len(calculators) {
				t.Fatalf("expected %d results, got %d", len(calculators), len(results))
			}
			for i, r := range results {
				if (r.Err != nil) != tt.expectError[i] {
					t.Errorf("result %d: err = %v, expectError %v", i, r.Err, tt.expectError[i])
				}
			}
		})
	}
}

func TestExecuteCalculations_RealBackendsAgree(t *testing.T) {
	t.Parallel()
	factory := calc.NewDefaultFactory()
	calculators, err := GetCalculatorsToRun(AllBackends, factory)
	if err != nil {
		t.Fatal(err)
	}
	req := calc.Request{
		Op: calc.OpMul,
		A:  wideint.MustParse("-123456789012345678901234567890"),
		B:  wideint.MustParse("987654321098765432109876543210"),
	}
	results := ExecuteCalculations(context.Background(), calculators, req, NullProgressReporter{}, io.Discard)

	best, consistent, err := FirstSuccess(results)
	if err != nil || !consistent {
		t.Fatalf("FirstSuccess: consistent=%v err=%v", consistent, err)
	}
	want := "-121932631137021795226185032733622923332237463801111263526900"
	if best.Result.String() != want {
		t.Errorf("product = %s, want %s", best.Result, want)
	}
}

func TestExecuteCalculations_ProgressReachesReporter(t *testing.T) {
	t.Parallel()
	factory := calc.NewDefaultFactory()
	calculators, _ := GetCalculatorsToRun(AllBackends, factory)

	collected := make(chan []calc.ProgressUpdate, 1)
	r := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan calc.ProgressUpdate, _ int, _ io.Writer) {
		defer wg.Done()
		var got []calc.ProgressUpdate
		for u := range ch {
			got = append(got, u)
		}
		collected <- got
	})

	req := calc.Request{Op: calc.OpAdd, A: wideint.New(2), B: wideint.New(3)}
	ExecuteCalculations(context.Background(), calculators, req, r, io.Discard)
	got := <-collected
	if len(got) != 2*len(calculators) {
		t.Errorf("got %d progress updates, want %d", len(got), 2*len(calculators))
	}
}

func TestExecuteCalculations_Canceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calculators, _ := GetCalculatorsToRun(AllBackends, calc.NewDefaultFactory())
	results := ExecuteCalculations(ctx, calculators, calc.Request{Op: calc.OpAdd}, NullProgressReporter{}, io.Discard)
	for _, r := range results {
		if !errors.Is(r.Err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", r.Name, r.Err)
		}
	}
}

func TestFirstSuccess(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	tests := []struct {
		name       string
		results    []CalculationResult
		wantName   string
		consistent bool
		wantErr    error
	}{
		{"empty", nil, "", false, ErrNoResult},
		{"all failed", []CalculationResult{{Name: "a", Err: boom}}, "", false, boom},
		{
			"fastest wins",
			[]CalculationResult{
				{Name: "slow", Result: wideint.New(4), Duration: 2 * time.Second},
				{Name: "fast", Result: wideint.New(4), Duration: time.Second},
			},
			"fast", true, nil,
		},
		{
			"mismatch",
			[]CalculationResult{
				{Name: "a", Result: wideint.New(4)},
				{Name: "b", Result: wideint.New(5)},
			},
			"a", false, nil,
		},
		{
			"failure ignored",
			[]CalculationResult{
				{Name: "a", Err: boom},
				{Name: "b", Result: wideint.New(5)},
			},
			"b", true, nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			best, consistent, err := FirstSuccess(tt.results)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if best.Name != tt.wantName || consistent != tt.consistent {
				t.Errorf("got (%s, %v), want (%s, %v)", best.Name, consistent, tt.wantName, tt.consistent)
			}
		})
	}
}

func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		results        []CalculationResult
		expectedStatus int
		expectedOutput string
		presented      bool
	}{
		{
			name: "all success and consistent",
			results: []CalculationResult{
				{Name: "big", Result: wideint.New(42), Duration: 2 * time.Millisecond},
				{Name: "fft", Result: wideint.New(42), Duration: time.Millisecond},
			},
			expectedStatus: apperrors.ExitSuccess,
			expectedOutput: "Global Status: Success",
			presented:      true,
		},
		{
			name: "mismatch",
			results: []CalculationResult{
				{Name: "big", Result: wideint.New(42)},
				{Name: "fft", Result: wideint.New(43)},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
			expectedOutput: "CRITICAL ERROR",
		},
		{
			name: "all failed",
			results: []CalculationResult{
				{Name: "big", Err: wideint.ErrDivisionByZero},
				{Name: "fft", Err: wideint.ErrDivisionByZero},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
			expectedOutput: "Global Status: Failure",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			p := &recordingPresenter{}
			status := AnalyzeComparisonResults(tt.results, PresentationOptions{}, p, &buf)
			if status != tt.expectedStatus {
				t.Errorf("status = %d, want %d", status, tt.expectedStatus)
			}
			if !strings.Contains(buf.String(), tt.expectedOutput) {
				t.Errorf("output %q does not contain %q", buf.String(), tt.expectedOutput)
			}
			if (p.presented != nil) != tt.presented {
				t.Errorf("presented = %v, want %v", p.presented != nil, tt.presented)
			}
			if len(p.table) != len(tt.results) {
				t.Errorf("table has %d rows, want %d", len(p.table), len(tt.results))
			}
		})
	}
}

func TestAnalyzeComparisonResults_SortsSuccessesByDuration(t *testing.T) {
	t.Parallel()
	results := []CalculationResult{
		{Name: "failed", Err: errors.New("x")},
		{Name: "slow", Result: wideint.One(), Duration: time.Second},
		{Name: "fast", Result: wideint.One(), Duration: time.Millisecond},
	}
	p := &recordingPresenter{}
	AnalyzeComparisonResults(results, PresentationOptions{}, p, io.Discard)

	var order []string
	for _, r := range p.table {
		order = append(order, r.Name)
	}
	if strings.Join(order, ",") != "fast,slow,failed" {
		t.Errorf("order = %v, want [fast slow failed]", order)
	}
	if p.presented == nil || p.presented.Name != "fast" {
		t.Errorf("presented %+v, want fast", p.presented)
	}
}
