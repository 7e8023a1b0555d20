package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// setupLifecycle returns a context canceled when the timeout expires or the
// process receives SIGINT or SIGTERM, whichever happens first. A zero
// timeout disables the deadline. The returned function releases both.
func setupLifecycle(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	cancelTimeout := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
	}
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}
