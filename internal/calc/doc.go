// Package calc runs single arithmetic operations on wide integers through
// interchangeable backends. The "fft" backend is the wideint engine, "big" is
// a math/big reference used for cross-checking, and "gmp" (build tag gmp)
// binds libgmp.
//
// Every backend is wrapped by a Calculator decorator that adds context
// checks, tracing, Prometheus metrics and debug logging.
package calc
