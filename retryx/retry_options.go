package retryx

import (
	"context"
	"time"
)

type retryOptions struct {
	retryCount      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	retryIf         func(error) bool
	ctx             context.Context
}

type RetryOption func(*retryOptions)

// WithRetryCount sets the total number of attempts, the first one included.
func WithRetryCount(count int) RetryOption {
	return func(ro *retryOptions) {
		ro.retryCount = count
	}
}

func WithInterval(interval time.Duration) RetryOption {
	return func(ro *retryOptions) {
		ro.initialInterval = interval
	}
}

func WithMaxInterval(interval time.Duration) RetryOption {
	return func(ro *retryOptions) {
		ro.maxInterval = interval
	}
}

func WithMaxElapsedTime(d time.Duration) RetryOption {
	return func(ro *retryOptions) {
		ro.maxElapsedTime = d
	}
}

// WithRetryIf restricts retries to errors for which fn returns true.
// Any other error stops the loop and is returned as is.
func WithRetryIf(fn func(error) bool) RetryOption {
	return func(ro *retryOptions) {
		ro.retryIf = fn
	}
}

// WithContext stops waiting between attempts once ctx is done.
func WithContext(ctx context.Context) RetryOption {
	return func(ro *retryOptions) {
		ro.ctx = ctx
	}
}
