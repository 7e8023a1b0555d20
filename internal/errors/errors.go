package apperrors

import (
	"errors"
	"fmt"

	"github.com/agbru/widecalc/internal/wideint"
)

// Application exit codes returned to the OS.
const (
	ExitSuccess         = 0   // Successful execution.
	ExitErrorGeneric    = 1   // Unclassified failure.
	ExitErrorTimeout    = 2   // The operation timed out.
	ExitErrorMismatch   = 3   // Backends disagreed on a result.
	ExitErrorConfig     = 4   // Invalid flags, environment or operands.
	ExitErrorArithmetic = 5   // Division by zero, negative exponent or an operand beyond the transform limit.
	ExitErrorCanceled   = 130 // Canceled by the user (e.g., SIGINT).
)

// ConfigError is a user configuration mistake, such as an invalid flag
// value or an unparsable operand.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError is the failure of one backend on one operation.
type CalculationError struct {
	// Backend is the registry name of the backend, e.g. "fft".
	Backend string
	// Op is the operation name, e.g. "div". May be empty.
	Op    string
	Cause error
}

// Error prefixes the cause with the backend and operation.
func (e CalculationError) Error() string {
	prefix := e.Backend
	if e.Op != "" {
		prefix += " " + e.Op
	}
	if prefix == "" {
		return e.Cause.Error()
	}
	return prefix + ": " + e.Cause.Error()
}

// Unwrap returns the cause.
func (e CalculationError) Unwrap() error { return e.Cause }

// ValidationError rejects one request parameter.
type ValidationError struct {
	Field   string
	Message string
	// Cause is the parse error behind the rejection, if any.
	Cause error
}

func (e ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parameter '%s': %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("parameter '%s': %s", e.Field, e.Message)
}

// Unwrap returns the cause.
func (e ValidationError) Unwrap() error { return e.Cause }

// arithmeticErrors are the engine failures caused by the operands rather than
// by the environment.
var arithmeticErrors = []error{
	wideint.ErrDivisionByZero,
	wideint.ErrNegativeExponent,
	wideint.ErrOperandTooLarge,
	wideint.ErrPrecisionLoss,
}

// IsArithmeticError reports whether err is, or wraps, one of the engine's
// arithmetic domain errors.
func IsArithmeticError(err error) bool {
	for _, target := range arithmeticErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
