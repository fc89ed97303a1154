package retryx

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/stretchr/testify/require"
)

var errTemporary = errors.New("temporary error")

func TestRetry(t *testing.T) {
	tests := []struct {
		name          string
		fn            func() error
		opts          []RetryOption
		expectedCalls int
		expectedError error
	}{
		{
			name: "successful retry",
			fn: func() error {
				return nil
			},
			expectedCalls: 1,
			opts:          nil,
			expectedError: nil,
		},
		{
			name: "retry with permanent error",
			fn: func() error {
				return backoff.Permanent(errors.New("permanent error"))
			},
			expectedCalls: 1,
			opts:          nil,
			expectedError: errors.New("permanent error"),
		},
		{
			name: "retry with temporary error",
			fn: func() error {
				return errTemporary
			},
			opts: []RetryOption{
				WithInterval(time.Millisecond),
				WithRetryCount(2),
			},
			expectedCalls: 2,
			expectedError: errTemporary,
		},
		{
			name: "retry only matching errors",
			fn: func() error {
				return errors.New("not retryable")
			},
			opts: []RetryOption{
				WithInterval(time.Millisecond),
				WithRetryCount(5),
				WithRetryIf(func(err error) bool { return errors.Is(err, errTemporary) }),
			},
			expectedCalls: 1,
			expectedError: errors.New("not retryable"),
		},
		{
			name: "retry matching errors up to the count",
			fn: func() error {
				return errTemporary
			},
			opts: []RetryOption{
				WithInterval(time.Millisecond),
				WithRetryCount(3),
				WithRetryIf(func(err error) bool { return errors.Is(err, errTemporary) }),
			},
			expectedCalls: 3,
			expectedError: errTemporary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualCalls := 0
			fn := func() error {
				actualCalls++
				return tt.fn()
			}
			err := ConstantRetry(fn, tt.opts...)
			if tt.expectedError != nil {
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}

			require.Equal(t, tt.expectedCalls, actualCalls)
		})
	}
}

func TestExponentialRetry(t *testing.T) {
	t.Run("should succeed after a temporary failure", func(t *testing.T) {
		calls := 0
		err := ExponentialRetry(func() error {
			calls++
			if calls < 2 {
				return errTemporary
			}
			return nil
		}, WithInterval(time.Millisecond), WithMaxInterval(5*time.Millisecond))

		require.NoError(t, err)
		require.Equal(t, 2, calls)
	})

	t.Run("should stop at the retry count", func(t *testing.T) {
		calls := 0
		err := ExponentialRetry(func() error {
			calls++
			return errTemporary
		}, WithInterval(time.Millisecond), WithRetryCount(2))

		require.ErrorIs(t, err, errTemporary)
		require.Equal(t, 2, calls)
	})
}

func TestRetryWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := ConstantRetry(func() error {
		calls++
		cancel()
		return errTemporary
	}, WithContext(ctx), WithInterval(time.Hour), WithRetryCount(10))

	require.ErrorIs(t, err, errTemporary)
	require.Equal(t, 1, calls)
}
