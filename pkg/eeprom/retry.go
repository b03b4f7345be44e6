package eeprom

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
)

// Default retry policy. An EEPROM does not acknowledge its address while
// an internal write cycle is in progress, which takes up to 10ms on
// common parts.
const (
	DefaultTimeout = 25 * time.Millisecond
	DefaultBackoff = time.Millisecond
)

// Retrier runs an attempt until it moves the expected count or the
// deadline passes.
type Retrier struct {
	Timeout time.Duration
	Backoff time.Duration
	// Now is the clock, time.Now when nil.
	Now func() time.Time
}

// NewRetrier creates a Retrier with the default policy.
func NewRetrier() *Retrier {
	return &Retrier{Timeout: DefaultTimeout, Backoff: DefaultBackoff}
}

func (r *Retrier) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Do invokes attempt until it returns want bytes without error.
// The first attempt always runs. The deadline is computed once on entry;
// after each failure the backoff is slept, and another attempt is made
// only if it starts before the deadline. When the budget is exhausted
// the error matches ErrTimedOut.
func (r *Retrier) Do(attempt func() (int, error), want int) (int, error) {
	start := r.now()
	deadline := start.Add(r.Timeout)
	backoff := r.Backoff
	if backoff <= 0 {
		backoff = DefaultBackoff
	}

	var attempts, n int
	var last error
	b := retry.NewConstant(backoff)
	err := retry.Do(context.Background(), b, func(context.Context) error {
		if attempts > 0 && !r.now().Before(deadline) {
			return errDeadline
		}
		attempts++
		cnt, err := attempt()
		if err == nil && cnt != want {
			err = fmt.Errorf("moved %d of %d bytes: %w", cnt, want, ErrShortTransfer)
		}
		if err != nil {
			last = err
			return retry.RetryableError(err)
		}
		n = cnt
		return nil
	})
	if err != nil {
		return 0, &TimeoutError{Attempts: attempts, Elapsed: r.now().Sub(start), Last: last}
	}
	return n, nil
}

var errDeadline = errors.New("deadline exceeded")
