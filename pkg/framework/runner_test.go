package framework

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunnerCancelsOnError(t *testing.T) {
	boom := errors.New("boom")
	r := NewRunner()
	err := r.Run(
		NamedRun("failing", RunnableFunc(func(ctx context.Context) error {
			return boom
		})),
		NamedRun("waiting", RunnableFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		})),
	)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failing: boom")
	agg, ok := err.(*AggregatedError)
	require.True(t, ok)
	require.Len(t, agg.Errors, 1)
	require.True(t, errors.Is(agg.Errors[0], boom))
}

func TestRunnerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunnerWith(ctx)
	r.Go(RunnableFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))
	cancel()
	require.NoError(t, r.Wait())
}

func TestRunWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	var canceled bool
	go func() {
		time.Sleep(time.Millisecond)
		cancel()
	}()
	err := RunWithContextCancel(ctx, func() {
		canceled = true
		close(release)
	}, func() error {
		<-release
		return nil
	})
	require.True(t, errors.Is(err, context.Canceled))
	require.True(t, canceled)

	err = RunWithContext(context.Background(), func() error { return nil })
	require.NoError(t, err)
}

func TestAggregatedError(t *testing.T) {
	var errs AggregatedError
	require.NoError(t, errs.Add(nil).Aggregate())
	errs.Add(errors.New("a"), nil, errors.New("b"))
	require.Len(t, errs.Errors, 2)
	require.Equal(t, "Multiple errors:\na\nb", errs.Aggregate().Error())
}
