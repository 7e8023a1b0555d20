package calc

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/wideint"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "widecalc_operations_total",
			Help: "The total number of arithmetic operations processed",
		},
		[]string{"backend", "op", "status"},
	)
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "widecalc_operation_duration_seconds",
			Help:    "The duration of arithmetic operations in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"backend", "op"},
	)
)

// ProgressUpdate carries the progress of one calculator, from 0.0 to 1.0,
// to the user interface.
type ProgressUpdate struct {
	// CalculatorIndex distinguishes concurrent calculators.
	CalculatorIndex int
	// Value is the normalized progress.
	Value float64
}

// Backend is one implementation of the arithmetic operations.
type Backend interface {
	// Name returns the registry key of the backend (e.g. "fft").
	Name() string

	// Apply computes a op b. Implementations return the engine's sentinel
	// errors (wideint.ErrDivisionByZero, wideint.ErrNegativeExponent, ...)
	// so that results and failures compare across backends.
	Apply(ctx context.Context, op Op, a, b wideint.Int) (wideint.Int, error)
}

// Calculator is the interface the orchestration layer uses to run an
// operation on a backend.
type Calculator interface {
	// Calculate runs req and reports progress on progressChan (which may be
	// nil) under calcIndex.
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, req Request) (wideint.Int, error)

	// Name returns the name of the wrapped backend.
	Name() string
}

// OpCalculator decorates a Backend with context checks, an OpenTelemetry
// span, Prometheus metrics and a debug log entry per operation.
type OpCalculator struct {
	backend Backend
}

// NewCalculator wraps backend. It panics if backend is nil.
func NewCalculator(backend Backend) Calculator {
	if backend == nil {
		panic("calc: the Backend implementation cannot be nil")
	}
	return &OpCalculator{backend: backend}
}

// Name returns the backend name.
func (c *OpCalculator) Name() string {
	return c.backend.Name()
}

// Calculate runs the request on the wrapped backend.
//
// The context is checked before the backend starts and again when it
// returns: the engine itself is not interruptible, so a deadline that passes
// during a long multiplication is reported once the multiplication ends.
//
// Parameters:
//   - ctx: The context for cancellation and deadlines.
//   - progressChan: Receives 0.0 when the operation starts and 1.0 when it
//     succeeds. May be nil.
//   - calcIndex: The index reported with every progress update.
//   - req: The operation and its operands.
//
// Returns:
//   - wideint.Int: The result.
//   - error: A context error or the backend's error.
func (c *OpCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, req Request) (result wideint.Int, err error) {
	name := c.backend.Name()
	ctx, span := otel.Tracer("widecalc/calc").Start(ctx, "Calculate")
	span.SetAttributes(
		attribute.String("backend", name),
		attribute.String("op", req.Op.String()),
		attribute.Int("a.digits", req.A.Len()),
		attribute.Int("b.digits", req.B.Len()),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		operationsTotal.WithLabelValues(name, req.Op.String(), status).Inc()
		operationDuration.WithLabelValues(name, req.Op.String()).Observe(duration)

		log.Debug().
			Str("backend", name).
			Str("op", req.Op.String()).
			Int("a_digits", req.A.Len()).
			Int("b_digits", req.B.Len()).
			Float64("duration", duration).
			Str("status", status).
			Msg("operation completed")
	}()

	report := func(v float64) {
		if progressChan != nil {
			progressChan <- ProgressUpdate{CalculatorIndex: calcIndex, Value: v}
		}
	}

	if err := ctx.Err(); err != nil {
		return wideint.Int{}, err
	}
	report(0)

	result, err = c.backend.Apply(ctx, req.Op, req.A, req.B)
	if err != nil {
		return wideint.Int{}, apperrors.CalculationError{Backend: name, Op: req.Op.String(), Cause: err}
	}
	if err := ctx.Err(); err != nil {
		return wideint.Int{}, err
	}
	report(1)
	return result, nil
}
