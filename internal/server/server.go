package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/agbru/widecalc/internal/calc"
	apperrors "github.com/agbru/widecalc/internal/errors"
	"github.com/agbru/widecalc/internal/logging"
	"github.com/agbru/widecalc/internal/orchestration"
	"github.com/agbru/widecalc/internal/wideint"
)

// Server timeouts.
const (
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 10 * time.Minute
	IdleTimeout     = 2 * time.Minute
	ShutdownTimeout = 30 * time.Second
)

// CalculationResponse is the body of a successful /calc request.
type CalculationResponse struct {
	Op       string `json:"op"`
	A        string `json:"a"`
	B        string `json:"b"`
	Result   string `json:"result"`
	Digits   int    `json:"digits"`
	Backend  string `json:"backend"`
	Duration string `json:"duration"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	// Field names the rejected query parameter for invalid_request.
	Field string `json:"field,omitempty"`
}

// Server serves calculations over HTTP.
type Server struct {
	factory        calc.CalculatorFactory
	defaultBackend string
	timeout        time.Duration
	httpServer     *http.Server
	logger         logging.Logger
	metrics        *Metrics
	security       SecurityConfig
}

// Option configures a Server.
type Option func(*Server)

// WithLogger replaces the default zerolog logger.
func WithLogger(l logging.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithSecurityConfig replaces DefaultSecurityConfig.
func WithSecurityConfig(c SecurityConfig) Option {
	return func(s *Server) { s.security = c }
}

// NewServer builds a server listening on port.
//
// Parameters:
//   - factory: The backends served.
//   - defaultBackend: Used when a request names no backend ("all" cross-checks).
//   - port: The TCP port.
//   - timeout: The per-request calculation timeout.
func NewServer(factory calc.CalculatorFactory, defaultBackend, port string, timeout time.Duration, opts ...Option) *Server {
	s := &Server{
		factory:        factory,
		defaultBackend: defaultBackend,
		timeout:        timeout,
		logger:         logging.NewDefaultLogger(),
		metrics:        NewMetrics(),
		security:       DefaultSecurityConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort("", port),
		Handler:      s.Handler(),
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}
	return s
}

// Handler returns the routed handler with security and metrics middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	route := func(path string, h http.HandlerFunc) {
		mux.HandleFunc(path, SecurityMiddleware(s.security, s.metricsMiddleware(h)))
	}
	route("/calc", s.handleCalculate)
	route("/backends", s.handleBackends)
	route("/health", s.handleHealth)
	route("/metrics", s.handleMetrics)
	return mux
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only GET is supported")
		return
	}

	q := r.URL.Query()
	req, err := s.parseRequest(q.Get("op"), q.Get("a"), q.Get("b"))
	if err != nil {
		var ve apperrors.ValidationError
		errors.As(err, &ve)
		s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid_request", Message: err.Error(), Field: ve.Field})
		return
	}
	backend := q.Get("backend")
	if backend == "" {
		backend = s.defaultBackend
	}
	calculators, err := orchestration.GetCalculatorsToRun(backend, s.factory)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid_backend", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()
	results := orchestration.ExecuteCalculations(ctx, calculators, req, orchestration.NullProgressReporter{}, nil)
	best, consistent, err := orchestration.FirstSuccess(results)
	switch {
	case err != nil:
		s.logger.Error("calculation failed", err,
			logging.String("op", req.Op.String()), logging.Operand("a", req.A), logging.Operand("b", req.B))
		status, code := errorStatus(err)
		s.writeError(w, status, code, err.Error())
		return
	case !consistent:
		s.logger.Error("backends disagree", errors.New("result mismatch"), logging.String("op", req.Op.String()))
		s.writeError(w, http.StatusInternalServerError, "result_mismatch", "backends produced different results")
		return
	}

	s.logger.Debug("calculation served",
		logging.String("op", req.Op.String()), logging.String("backend", best.Name), logging.Duration("duration", best.Duration))
	s.writeJSON(w, http.StatusOK, CalculationResponse{
		Op:       req.Op.String(),
		A:        req.A.String(),
		B:        req.B.String(),
		Result:   best.Result.String(),
		Digits:   best.Result.Len(),
		Backend:  best.Name,
		Duration: best.Duration.String(),
	})
}

// parseRequest validates the query parameters of /calc.
func (s *Server) parseRequest(opName, a, b string) (calc.Request, error) {
	if opName == "" {
		return calc.Request{}, apperrors.ValidationError{Field: "op", Message: "missing"}
	}
	op, err := calc.ParseOp(opName)
	if err != nil {
		return calc.Request{}, apperrors.ValidationError{Field: "op", Message: "unknown operation", Cause: err}
	}
	operands := [2]wideint.Int{}
	for i, raw := range []string{a, b} {
		name := string(rune('a' + i))
		if raw == "" {
			return calc.Request{}, apperrors.ValidationError{Field: name, Message: "missing"}
		}
		if limit := s.security.MaxOperandDigits; limit > 0 && len(raw) > limit+1 {
			return calc.Request{}, apperrors.ValidationError{Field: name, Message: fmt.Sprintf("exceeds %d digits", limit)}
		}
		x, err := wideint.Parse(raw)
		if err != nil {
			return calc.Request{}, apperrors.ValidationError{Field: name, Message: "not an integer", Cause: err}
		}
		operands[i] = x
	}
	return calc.Request{Op: op, A: operands[0], B: operands[1]}, nil
}

// errorStatus maps a calculation error to an HTTP status and error code.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "canceled"
	case apperrors.IsArithmeticError(err):
		return http.StatusUnprocessableEntity, "arithmetic_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func (s *Server) handleBackends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only GET is supported")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"backends": s.factory.List()})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only GET is supported")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "only GET is supported")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && s.logger != nil {
		s.logger.Error("failed to encode response", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}
