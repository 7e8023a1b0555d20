// Package apperrors defines the application's structured error types and
// exit codes. It separates configuration mistakes from arithmetic failures
// and from cancellations so that each can be reported and mapped to its own
// exit status.
//
// All error types that carry a cause implement Unwrap, so errors.Is and
// errors.As reach the engine's sentinel errors through them.
package apperrors
