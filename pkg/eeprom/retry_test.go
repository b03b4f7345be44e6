package eeprom

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestRetrier(t *testing.T) {
	errBus := errors.New("nack")
	testCases := []struct {
		name       string
		timeout    time.Duration
		attemptDur time.Duration
		succeedAt  int // 0 never succeeds
		short      bool
		attempts   int
		timedOut   bool
	}{
		{
			name:       "first attempt succeeds",
			timeout:    25 * time.Millisecond,
			attemptDur: time.Millisecond,
			succeedAt:  1,
			attempts:   1,
		},
		{
			name:       "succeeds after retries",
			timeout:    25 * time.Millisecond,
			attemptDur: time.Millisecond,
			succeedAt:  3,
			attempts:   3,
		},
		{
			name:       "deadline never extended",
			timeout:    25 * time.Millisecond,
			attemptDur: 5 * time.Millisecond,
			attempts:   5,
			timedOut:   true,
		},
		{
			name:       "success after deadline is not attempted",
			timeout:    25 * time.Millisecond,
			attemptDur: 5 * time.Millisecond,
			succeedAt:  6,
			attempts:   5,
			timedOut:   true,
		},
		{
			name:       "first attempt is unconditional",
			timeout:    0,
			attemptDur: time.Millisecond,
			attempts:   1,
			timedOut:   true,
		},
		{
			name:       "zero timeout success",
			timeout:    0,
			attemptDur: time.Millisecond,
			succeedAt:  1,
			attempts:   1,
		},
		{
			name:       "count mismatch is failure",
			timeout:    10 * time.Millisecond,
			attemptDur: 3 * time.Millisecond,
			short:      true,
			attempts:   4,
			timedOut:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock := &fakeClock{now: time.Unix(1000, 0)}
			start := clock.now
			r := &Retrier{Timeout: tc.timeout, Backoff: time.Millisecond, Now: clock.Now}
			var attempts int
			n, err := r.Do(func() (int, error) {
				attempts++
				clock.advance(tc.attemptDur)
				if tc.short {
					return 2, nil
				}
				if attempts == tc.succeedAt {
					return 4, nil
				}
				return 0, errBus
			}, 4)
			require.Equal(t, tc.attempts, attempts)
			if !tc.timedOut {
				require.NoError(t, err)
				require.Equal(t, 4, n)
				return
			}
			require.True(t, errors.Is(err, ErrTimedOut))
			var te *TimeoutError
			require.True(t, errors.As(err, &te))
			require.Equal(t, tc.attempts, te.Attempts)
			require.Equal(t, clock.now.Sub(start), te.Elapsed)
			if tc.short {
				require.True(t, errors.Is(err, ErrShortTransfer))
			} else {
				require.True(t, errors.Is(err, errBus))
			}
		})
	}
}

func TestRetrierRealClock(t *testing.T) {
	testCases := []struct {
		name    string
		timeout time.Duration
		backoff time.Duration
	}{
		{"default policy", DefaultTimeout, DefaultBackoff},
		{"backoff longer than remaining budget", 25 * time.Millisecond, 10 * time.Millisecond},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Retrier{Timeout: tc.timeout, Backoff: tc.backoff}
			var attempts int
			start := time.Now()
			_, err := r.Do(func() (int, error) {
				attempts++
				return 2, nil
			}, 4)
			elapsed := time.Since(start)
			require.True(t, errors.Is(err, ErrTimedOut))
			require.True(t, errors.Is(err, ErrShortTransfer))
			require.True(t, elapsed >= tc.timeout, "elapsed %v", elapsed)
			require.True(t, attempts > 1)
			var te *TimeoutError
			require.True(t, errors.As(err, &te))
			require.True(t, te.Elapsed >= tc.timeout)
		})
	}
}
