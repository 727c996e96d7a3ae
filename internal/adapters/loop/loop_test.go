package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopFiresTasksInDueOrder(t *testing.T) {
	t.Parallel()

	l := New()
	var order []string
	l.After(2*time.Second, func() { order = append(order, "late") })
	l.After(time.Second, func() { order = append(order, "early") })
	l.After(time.Second, func() { order = append(order, "early-second") })

	l.Advance(500 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 3, l.Pending())

	l.Advance(500 * time.Millisecond)
	assert.Equal(t, []string{"early", "early-second"}, order)

	l.Advance(time.Second)
	assert.Equal(t, []string{"early", "early-second", "late"}, order)
	assert.Zero(t, l.Pending())
}

func TestLoopRunsTasksScheduledWhileFiring(t *testing.T) {
	t.Parallel()

	l := New()
	var order []string
	l.After(0, func() {
		order = append(order, "outer")
		l.After(0, func() { order = append(order, "inner") })
		l.After(time.Second, func() { order = append(order, "later") })
	})

	l.Advance(0)

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, l.Pending())
}

func TestLoopCancelSkipsTask(t *testing.T) {
	t.Parallel()

	l := New()
	fired := false
	cancel := l.After(time.Second, func() { fired = true })
	cancel()

	l.Advance(time.Hour)

	assert.False(t, fired)
	assert.Zero(t, l.Pending())
	assert.NotPanics(t, cancel)
}

func TestLoopTickersRunBeforeTasks(t *testing.T) {
	t.Parallel()

	l := New()
	var order []string
	var total time.Duration
	l.OnTick(func(elapsed time.Duration) {
		total += elapsed
		order = append(order, "tick")
	})
	l.After(0, func() { order = append(order, "task") })

	l.Advance(16 * time.Millisecond)
	l.Advance(-time.Second)

	assert.Equal(t, []string{"tick", "task", "tick"}, order)
	assert.Equal(t, 16*time.Millisecond, total)
}

func TestLoopRunStopsWhenDone(t *testing.T) {
	t.Parallel()

	l := New()
	fired := false
	l.After(5*time.Millisecond, func() { fired = true })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := l.Run(ctx, time.Millisecond, func() bool { return fired })
	require.NoError(t, err)
	assert.True(t, fired)
}

func TestLoopRunReturnsContextError(t *testing.T) {
	t.Parallel()

	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Run(ctx, time.Millisecond, func() bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
}
