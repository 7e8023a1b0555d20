package calc

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/agbru/widecalc/internal/wideint"
)

// namedBackend is FFTBackend under a name used by no other test, so the
// global counters can be read without interference.
type namedBackend struct {
	FFTBackend
	name string
}

func (b namedBackend) Name() string { return b.name }

func TestCalculator_RecordsMetrics(t *testing.T) {
	t.Parallel()
	c := NewCalculator(namedBackend{name: "metrics-test"})
	ctx := context.Background()

	if _, err := c.Calculate(ctx, nil, 0, Request{Op: OpMul, A: wideint.New(3), B: wideint.New(4)}); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Calculate(ctx, nil, 0, Request{Op: OpDiv, A: wideint.New(3), B: wideint.Zero()}); err == nil {
		t.Fatal("division by zero succeeded")
	}

	if got := testutil.ToFloat64(operationsTotal.WithLabelValues("metrics-test", "mul", "success")); got != 1 {
		t.Errorf("mul success count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(operationsTotal.WithLabelValues("metrics-test", "div", "error")); got != 1 {
		t.Errorf("div error count = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(operationDuration, "widecalc_operation_duration_seconds"); n < 2 {
		t.Errorf("duration histogram has %d series, want at least 2", n)
	}
}
