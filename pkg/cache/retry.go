package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNetwork marks backend connection failures (timeouts, refused
// connections, closed pools). Only these are retried.
var ErrNetwork = errors.New("network error")

const maxAttempts = 3

// backoffBase is the delay before the second attempt. Tests shorten it.
var backoffBase = time.Second

// withRetry runs fn until it succeeds, fails with an error that is not
// ErrNetwork, or maxAttempts is reached. The delay doubles after each
// attempt.
func withRetry(ctx context.Context, fn func() error) error {
	delay := backoffBase
	for attempt := 1; ; attempt++ {
		err := fn()
		if err == nil || !errors.Is(err, ErrNetwork) || attempt == maxAttempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
			delay *= 2
		}
	}
}
