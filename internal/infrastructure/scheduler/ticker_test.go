package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickerRunsImmediatelyAndStops(t *testing.T) {
	t.Parallel()

	runs := make(chan struct{}, 64)
	s := NewTickerScheduler(5 * time.Millisecond)

	require.NoError(t, s.Start(context.Background(), func() { runs <- struct{}{} }))

	select {
	case <-runs:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}

	require.NoError(t, s.Stop(context.Background()))

	// Let the goroutine notice the stop, then drain anything that was
	// already in flight. Nothing further may arrive.
	time.Sleep(50 * time.Millisecond)
	for len(runs) > 0 {
		<-runs
	}
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, runs)
}

func TestTickerStartTwiceIsNoOp(t *testing.T) {
	t.Parallel()

	s := NewTickerScheduler(time.Hour)
	defer s.Stop(context.Background())

	require.NoError(t, s.Start(context.Background(), func() {}))
	require.NoError(t, s.Start(context.Background(), func() {}))
	require.NoError(t, s.Stop(context.Background()))
	require.NoError(t, s.Stop(context.Background()))
}
